package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	appstorefront "github.com/smk/storefront/internal/application/storefront"
	"github.com/smk/storefront/internal/domain/storefront"
)

// AdminHandler proxies catalog product mutations to the remote catalog
// service. The bearer token is taken from the Authorization header and
// passed through verbatim; the upstream decides whether it is valid. When
// the caller sends X-Session-ID, their session's snapshot is refreshed
// after a successful mutation.
type AdminHandler struct {
	BaseHandler
	admin *appstorefront.AdminService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(admin *appstorefront.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// RegisterRoutes registers admin routes
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	products := rg.Group("/admin/products")
	{
		products.POST("", h.CreateProduct)
		products.PUT("/:productId", h.UpdateProduct)
		products.DELETE("/:productId", h.DeleteProduct)
	}
}

// ProductDraftRequest carries the writable product fields.
type ProductDraftRequest struct {
	Name     string `json:"name" binding:"required"`
	Price    string `json:"price" binding:"required"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

func (r ProductDraftRequest) toDraft() storefront.ProductDraft {
	return storefront.ProductDraft{
		Name:     r.Name,
		Price:    r.Price,
		Category: r.Category,
		Image:    r.Image,
	}
}

// CreateProduct creates a product in the remote catalog.
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		h.Unauthorized(c, "Bearer token required")
		return
	}

	var req ProductDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "name and price are required")
		return
	}

	product, err := h.admin.CreateProduct(c.Request.Context(), token, c.GetHeader("X-Session-ID"), req.toDraft())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, product)
}

// UpdateProduct replaces a product in the remote catalog.
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		h.Unauthorized(c, "Bearer token required")
		return
	}

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		h.BadRequest(c, "productId must be an integer")
		return
	}

	var req ProductDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "name and price are required")
		return
	}

	product, err := h.admin.UpdateProduct(c.Request.Context(), token, c.GetHeader("X-Session-ID"), productID, req.toDraft())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, product)
}

// DeleteProduct removes a product from the remote catalog.
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		h.Unauthorized(c, "Bearer token required")
		return
	}

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		h.BadRequest(c, "productId must be an integer")
		return
	}

	if err := h.admin.DeleteProduct(c.Request.Context(), token, c.GetHeader("X-Session-ID"), productID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// bearerToken extracts the bearer token from the Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	auth := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) || len(auth) == len(prefix) {
		return "", false
	}
	return auth[len(prefix):], true
}
