package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appstorefront "github.com/smk/storefront/internal/application/storefront"
)

// StorefrontHandler exposes the per-session storefront API: session
// lifecycle, the reconciled view, category selection, cart operations and
// the WhatsApp order hand-off.
type StorefrontHandler struct {
	BaseHandler
	sessions  *appstorefront.SessionManager
	recipient string
}

// NewStorefrontHandler creates a new StorefrontHandler. recipient is the
// WhatsApp number orders are handed off to.
func NewStorefrontHandler(sessions *appstorefront.SessionManager, recipient string) *StorefrontHandler {
	return &StorefrontHandler{
		sessions:  sessions,
		recipient: recipient,
	}
}

// RegisterRoutes registers storefront routes
func (h *StorefrontHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sessions := rg.Group("/storefront/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id/view", h.GetView)
		sessions.POST("/:id/reload", h.Reload)
		sessions.PUT("/:id/category", h.SelectCategory)
		sessions.POST("/:id/cart/items", h.AddCartItem)
		sessions.DELETE("/:id/cart/items/:productId", h.DecreaseCartItem)
		sessions.DELETE("/:id/cart", h.ClearCart)
		sessions.POST("/:id/checkout", h.Checkout)
		sessions.POST("/:id/order-product", h.OrderProduct)
		sessions.DELETE("/:id", h.DeleteSession)
	}
}

// CreateSession opens a browsing session and starts the catalog load.
func (h *StorefrontHandler) CreateSession(c *gin.Context) {
	id, err := h.sessions.Create()
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, SessionResponse{SessionID: id})
}

// GetView returns the session's reconciled read model.
func (h *StorefrontHandler) GetView(c *gin.Context) {
	controller, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, controller.View())
}

// Reload restarts the session from scratch: fresh snapshot, empty cart,
// fetches re-run.
func (h *StorefrontHandler) Reload(c *gin.Context) {
	controller, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if err := controller.Reload(); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, controller.View())
}

// SelectCategory switches the active category filter.
func (h *StorefrontHandler) SelectCategory(c *gin.Context) {
	var req SelectCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "category is required")
		return
	}

	controller, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if err := controller.SelectCategory(req.Category); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, controller.View())
}

// AddCartItem adds one unit of a product to the cart.
func (h *StorefrontHandler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "product_id is required")
		return
	}

	controller, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if err := controller.AddToCart(req.ProductID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, controller.View())
}

// DecreaseCartItem removes one unit of a product from the cart. An id that
// is not in the cart is a no-op, matching the cart contract.
func (h *StorefrontHandler) DecreaseCartItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		h.BadRequest(c, "productId must be an integer")
		return
	}

	controller, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if err := controller.DecreaseQuantity(productID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, controller.View())
}

// ClearCart empties the cart.
func (h *StorefrontHandler) ClearCart(c *gin.Context) {
	controller, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if err := controller.ClearCart(); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, controller.View())
}

// Checkout formats the cart as an order message and returns the wa.me URI.
// An empty cart is a conflict, not a success with an empty message.
func (h *StorefrontHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	// Body is optional; a missing or empty body means clear=false.
	_ = c.ShouldBindJSON(&req)

	controller, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	message, err := controller.Checkout(req.Clear)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, HandOffResponse{
		Message:     message,
		WhatsAppURL: whatsAppURL(h.recipient, message),
	})
}

// OrderProduct hands a single product off without touching the cart.
func (h *StorefrontHandler) OrderProduct(c *gin.Context) {
	var req OrderProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "product_id is required")
		return
	}

	controller, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	message, err := controller.OrderProduct(req.ProductID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, HandOffResponse{
		Message:     message,
		WhatsAppURL: whatsAppURL(h.recipient, message),
	})
}

// DeleteSession tears the session down. In-flight catalog fetches for the
// session are discarded.
func (h *StorefrontHandler) DeleteSession(c *gin.Context) {
	if err := h.sessions.Delete(c.Param("id")); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
