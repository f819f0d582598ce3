package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smk/storefront/internal/domain/storefront"
)

// categoryRecord is the wire shape of a category listing entry. The upstream
// service serves numeric ids; older records carry string ids.
type categoryRecord struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
}

func (r categoryRecord) toDomain() storefront.Category {
	return storefront.Category{
		ID:   r.ID.String(),
		Name: r.Name,
	}
}

// productRecord is the wire shape of a product. The category field has
// historical shape variance: mutation responses embed `{id, name}` objects
// while some listing records carry a bare label or a numeric id. Image
// appears as either `image` or `image_url` depending on the endpoint.
type productRecord struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category json.RawMessage `json:"category"`
	Image    string          `json:"image"`
	ImageURL string          `json:"image_url"`
}

// categoryObject is the embedded-object category shape.
type categoryObject struct {
	ID   json.Number `json:"id"`
	Name string      `json:"name"`
}

// toDomain normalizes the record into the canonical Product shape. The
// canonical category key is the category id when the record carries one;
// a bare label is its own key (the category listing uses the same value in
// that case), so filtering downstream compares a single key either way.
func (r productRecord) toDomain() (storefront.Product, error) {
	p := storefront.Product{
		ID:    r.ID,
		Name:  r.Name,
		Price: r.Price,
		Image: r.Image,
	}
	if p.Image == "" {
		p.Image = r.ImageURL
	}

	if len(r.Category) == 0 {
		return p, nil
	}

	trimmed := strings.TrimSpace(string(r.Category))
	switch {
	case trimmed == "null":
		return p, nil
	case strings.HasPrefix(trimmed, "{"):
		var obj categoryObject
		if err := json.Unmarshal(r.Category, &obj); err != nil {
			return storefront.Product{}, fmt.Errorf("catalog: product %d has malformed category: %w", r.ID, err)
		}
		p.Category = obj.ID.String()
		p.CategoryLabel = obj.Name
	case strings.HasPrefix(trimmed, `"`):
		var label string
		if err := json.Unmarshal(r.Category, &label); err != nil {
			return storefront.Product{}, fmt.Errorf("catalog: product %d has malformed category: %w", r.ID, err)
		}
		p.Category = label
		p.CategoryLabel = label
	default:
		var id json.Number
		if err := json.Unmarshal(r.Category, &id); err != nil {
			return storefront.Product{}, fmt.Errorf("catalog: product %d has malformed category: %w", r.ID, err)
		}
		p.Category = id.String()
	}

	return p, nil
}

// productPayload is the request body for admin product mutations.
type productPayload struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
	Image    string `json:"image,omitempty"`
}

func draftToPayload(draft storefront.ProductDraft) productPayload {
	return productPayload{
		Name:     draft.Name,
		Price:    draft.Price,
		Category: draft.Category,
		Image:    draft.Image,
	}
}

// productPath builds the resource path for a single product.
func productPath(id int64) string {
	return "/api/products/" + strconv.FormatInt(id, 10) + "/"
}
