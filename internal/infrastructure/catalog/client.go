package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/smk/storefront/internal/domain/storefront"
)

const (
	// maxResponseSize limits the response body size to prevent memory exhaustion
	maxResponseSize = 10 * 1024 * 1024 // 10MB max response

	categoriesPath = "/api/categories/"
	productsPath   = "/api/products/"
)

// ErrUnexpectedStatus wraps every non-success response. The storefront
// treats a non-2xx status identically to a network failure.
var ErrUnexpectedStatus = errors.New("catalog: unexpected response status")

// Client consumes the remote catalog service over HTTP. Listing calls are
// unauthenticated; admin mutations forward the caller's bearer token.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates a catalog client with the given configuration.
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// ListCategories fetches the category listing.
func (c *Client) ListCategories(ctx context.Context) ([]storefront.Category, error) {
	body, err := c.doRequest(ctx, http.MethodGet, categoriesPath, "", nil)
	if err != nil {
		return nil, err
	}

	var records []categoryRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("catalog: failed to parse categories response: %w", err)
	}

	categories := make([]storefront.Category, 0, len(records))
	for _, r := range records {
		categories = append(categories, r.toDomain())
	}
	return categories, nil
}

// ListProducts fetches the product listing, normalizing every record into
// the canonical Product shape at this boundary.
func (c *Client) ListProducts(ctx context.Context) ([]storefront.Product, error) {
	body, err := c.doRequest(ctx, http.MethodGet, productsPath, "", nil)
	if err != nil {
		return nil, err
	}

	var records []productRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("catalog: failed to parse products response: %w", err)
	}

	products := make([]storefront.Product, 0, len(records))
	for _, r := range records {
		p, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// CreateProduct creates a product through the admin mutation endpoint.
func (c *Client) CreateProduct(ctx context.Context, token string, draft storefront.ProductDraft) (storefront.Product, error) {
	body, err := c.doRequest(ctx, http.MethodPost, productsPath, token, draftToPayload(draft))
	if err != nil {
		return storefront.Product{}, err
	}
	return parseProduct(body)
}

// UpdateProduct replaces a product through the admin mutation endpoint.
func (c *Client) UpdateProduct(ctx context.Context, token string, id int64, draft storefront.ProductDraft) (storefront.Product, error) {
	body, err := c.doRequest(ctx, http.MethodPut, productPath(id), token, draftToPayload(draft))
	if err != nil {
		return storefront.Product{}, err
	}
	return parseProduct(body)
}

// DeleteProduct removes a product through the admin mutation endpoint.
func (c *Client) DeleteProduct(ctx context.Context, token string, id int64) error {
	_, err := c.doRequest(ctx, http.MethodDelete, productPath(id), token, nil)
	return err
}

// doRequest performs an HTTP call against the catalog service and returns
// the response body. Any transport error or non-2xx status is a fetch
// failure; callers never distinguish the two.
func (c *Client) doRequest(ctx context.Context, method, path, token string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("catalog: failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s %s returned %d", ErrUnexpectedStatus, method, path, resp.StatusCode)
	}

	return body, nil
}

func parseProduct(body []byte) (storefront.Product, error) {
	if len(body) == 0 {
		return storefront.Product{}, nil
	}
	var record productRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return storefront.Product{}, fmt.Errorf("catalog: failed to parse product response: %w", err)
	}
	return record.toDomain()
}

// Ensure Client satisfies both catalog contracts
var (
	_ storefront.CatalogReader = (*Client)(nil)
	_ storefront.CatalogWriter = (*Client)(nil)
)
