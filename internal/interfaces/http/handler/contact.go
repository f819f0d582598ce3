package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// ContactHandler formats contact-form submissions into a WhatsApp hand-off.
// Stateless: no session, nothing stored server-side.
type ContactHandler struct {
	BaseHandler
	recipient string
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(recipient string) *ContactHandler {
	return &ContactHandler{recipient: recipient}
}

// RegisterRoutes registers contact routes
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.Submit)
}

// ContactRequest is a contact-form submission.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// Submit formats the submission and returns the wa.me URI to open.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "name, phone and message are required")
		return
	}

	message := fmt.Sprintf("Nom: %s\nTéléphone: %s\nMessage: %s", req.Name, req.Phone, req.Message)
	h.Success(c, HandOffResponse{
		Message:     message,
		WhatsAppURL: whatsAppURL(h.recipient, message),
	})
}
