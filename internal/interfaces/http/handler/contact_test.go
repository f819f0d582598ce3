package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContactEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewContactHandler("221778775858").RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func TestContactHandler_Submit(t *testing.T) {
	engine := newContactEngine()

	body, _ := json.Marshal(ContactRequest{
		Name:    "Awa Diop",
		Phone:   "+221770000000",
		Message: "Je voudrais plus d'informations",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data HandOffResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Nom: Awa Diop\nTéléphone: +221770000000\nMessage: Je voudrais plus d'informations", resp.Data.Message)
	assert.Contains(t, resp.Data.WhatsAppURL, "https://wa.me/221778775858?text=Nom%3A%20Awa%20Diop")
}

func TestContactHandler_Submit_MissingFields(t *testing.T) {
	engine := newContactEngine()

	body, _ := json.Marshal(map[string]string{"name": "Awa"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
