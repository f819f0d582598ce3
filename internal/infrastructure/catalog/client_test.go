package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smk/storefront/internal/domain/storefront"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr error
	}{
		{
			name:    "valid config",
			config:  &Config{BaseURL: "http://127.0.0.1:8000", TimeoutSeconds: 5},
			wantErr: nil,
		},
		{
			name:    "missing base URL",
			config:  &Config{TimeoutSeconds: 5},
			wantErr: ErrConfigMissingBaseURL,
		},
		{
			name:    "zero timeout gets a default",
			config:  &Config{BaseURL: "http://127.0.0.1:8000"},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tt.config.TimeoutSeconds > 0)
		})
	}
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(NewConfig(server.URL))
	require.NoError(t, err)
	return client
}

func TestClient_ListCategories(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/categories/", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":1,"name":"Téléphone"},{"id":2,"name":"Électroménager"}]`))
	}))

	categories, err := client.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, storefront.Category{ID: "1", Name: "Téléphone"}, categories[0])
	assert.Equal(t, storefront.Category{ID: "2", Name: "Électroménager"}, categories[1])
}

func TestClient_ListProducts_NormalizesCategoryShapes(t *testing.T) {
	// One listing carrying every historical category shape: embedded
	// object, bare label, numeric id, and null.
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"id":1,"name":"Téléphone X","price":100000,"category":{"id":1,"name":"Téléphone"},"image":"https://img/1.jpg"},
			{"id":2,"name":"Mixeur","price":25000,"category":"Électroménager","image_url":"https://img/2.jpg"},
			{"id":3,"name":"Casque","price":15000,"category":3},
			{"id":4,"name":"Divers","price":5000,"category":null}
		]`))
	}))

	products, err := client.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 4)

	assert.Equal(t, "1", products[0].Category)
	assert.Equal(t, "Téléphone", products[0].CategoryLabel)
	assert.Equal(t, "https://img/1.jpg", products[0].Image)
	assert.True(t, products[0].Price.Equal(decimal.NewFromInt(100000)))

	assert.Equal(t, "Électroménager", products[1].Category)
	assert.Equal(t, "Électroménager", products[1].CategoryLabel)
	assert.Equal(t, "https://img/2.jpg", products[1].Image, "image_url fallback")

	assert.Equal(t, "3", products[2].Category)
	assert.Empty(t, products[2].CategoryLabel)

	assert.Empty(t, products[3].Category)
}

func TestClient_ListProducts_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.ListProducts(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestClient_ListProducts_MalformedBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))

	_, err := client.ListProducts(context.Background())
	assert.Error(t, err)
}

func TestClient_CreateProduct_ForwardsBearerToken(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Casserole", payload["name"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":10,"name":"Casserole","price":15000,"category":{"id":2,"name":"Électroménager"}}`))
	}))

	product, err := client.CreateProduct(context.Background(), "admin-token", storefront.ProductDraft{
		Name:     "Casserole",
		Price:    "15000",
		Category: "2",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), product.ID)
	assert.Equal(t, "2", product.Category)
}

func TestClient_UpdateProduct_UsesResourcePath(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/products/7/", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":7,"name":"Casserole XL","price":20000,"category":"Électroménager"}`))
	}))

	product, err := client.UpdateProduct(context.Background(), "admin-token", 7, storefront.ProductDraft{
		Name:  "Casserole XL",
		Price: "20000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Casserole XL", product.Name)
}

func TestClient_DeleteProduct(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/products/7/", r.URL.Path)
		assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))

	err := client.DeleteProduct(context.Background(), "admin-token", 7)
	assert.NoError(t, err)
}

func TestClient_DeleteProduct_Unauthorized(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	err := client.DeleteProduct(context.Background(), "bad-token", 7)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}
