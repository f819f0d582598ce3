package handler

// SelectCategoryRequest switches a session's active category filter.
type SelectCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

// AddCartItemRequest puts one unit of a product into the cart.
type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

// CheckoutRequest controls checkout behavior. The body is optional; Clear
// defaults to false, leaving the cart intact after hand-off.
type CheckoutRequest struct {
	Clear bool `json:"clear"`
}

// OrderProductRequest is the single-product "order now" shortcut.
type OrderProductRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

// SessionResponse is returned when a session is created.
type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// HandOffResponse carries a formatted order or contact message together with
// the click-to-chat URI the client should open.
type HandOffResponse struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}
