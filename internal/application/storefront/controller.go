package storefront

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/smk/storefront/internal/domain/shared"
	"github.com/smk/storefront/internal/domain/storefront"
	"github.com/smk/storefront/internal/infrastructure/telemetry"
)

// ProductsLoadErrorMessage is shown to shoppers when the product fetch fails.
const ProductsLoadErrorMessage = "Impossible de charger les produits. Veuillez réessayer."

// Controller owns the storefront state of one browsing session: the catalog
// snapshot, the per-source load states, the active category and the cart.
// A mutex serializes every state transition, so fetch completions and user
// operations interleave safely regardless of arrival order.
//
// Catalog fetches run in the background. Each generation of fetches carries
// the epoch current when it started; results arriving with a stale epoch
// (after Reload or Close) are discarded without touching state.
type Controller struct {
	reader storefront.CatalogReader
	logger *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu              sync.Mutex
	snapshot        storefront.Snapshot
	cart            *storefront.Cart
	activeCategory  string
	categoriesState storefront.LoadState
	productsState   storefront.LoadState
	errorMessage    string
	epoch           uint64
	closed          bool
}

// NewController creates a controller in its initial state: empty cart, the
// synthetic "Tous" category selected, both fetches idle. Load must be called
// to start fetching.
func NewController(reader storefront.CatalogReader, logger *zap.Logger) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		reader:         reader,
		logger:         logger,
		ctx:            ctx,
		cancel:         cancel,
		snapshot:       storefront.NewSnapshot(),
		cart:           storefront.NewCart(),
		activeCategory: storefront.AllCategoryID,
	}
}

// Load starts the categories and products fetches concurrently. Each source
// transitions Idle -> Loading -> Ready|Failed independently; completion order
// does not matter. Calling Load on a closed controller is an error.
func (c *Controller) Load() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return shared.ErrSessionClosed
	}
	c.categoriesState = storefront.LoadStateLoading
	c.productsState = storefront.LoadStateLoading
	epoch := c.epoch
	c.mu.Unlock()

	go c.fetchCategories(epoch)
	go c.fetchProducts(epoch)
	return nil
}

func (c *Controller) fetchCategories(epoch uint64) {
	ctx, span := telemetry.StartServiceSpan(c.ctx, "catalog", "list_categories")
	defer span.End()

	categories, err := c.reader.ListCategories(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.epoch != epoch {
		return
	}

	if err != nil {
		telemetry.RecordError(span, err)
		// A failed categories fetch degrades silently: the filter bar
		// keeps only the synthetic "Tous" entry and the shopper sees
		// no error.
		c.logger.Warn("categories fetch failed", zap.Error(err))
		c.categoriesState = storefront.LoadStateFailed
		return
	}

	c.snapshot = c.snapshot.WithCategories(categories)
	c.categoriesState = storefront.LoadStateReady
}

func (c *Controller) fetchProducts(epoch uint64) {
	ctx, span := telemetry.StartServiceSpan(c.ctx, "catalog", "list_products")
	defer span.End()

	products, err := c.reader.ListProducts(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.epoch != epoch {
		return
	}

	if err != nil {
		telemetry.RecordError(span, err)
		c.logger.Error("products fetch failed", zap.Error(err))
		c.productsState = storefront.LoadStateFailed
		c.errorMessage = ProductsLoadErrorMessage
		return
	}

	c.snapshot = c.snapshot.WithProducts(products)
	c.productsState = storefront.LoadStateReady
	c.errorMessage = ""
}

// View returns the reconciled read model under the lock. The product list is
// filtered by the active category at read time; an empty filtered list is a
// valid state, not an error.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return newView(c.snapshot, c.cart, c.activeCategory, c.categoriesState, c.productsState, c.errorMessage)
}

// SelectCategory switches the active filter. Purely local and synchronous;
// no fetch is triggered. Selectors are not validated against the snapshot
// because the category list can lag or fail independently of products.
func (c *Controller) SelectCategory(selector string) error {
	if selector == "" {
		return shared.ErrInvalidInput
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return shared.ErrSessionClosed
	}
	c.activeCategory = selector
	return nil
}

// AddToCart puts one unit of the identified product into the cart, resolving
// the product from the current snapshot. Unknown ids are rejected; the cart
// only ever holds products the session has actually seen.
func (c *Controller) AddToCart(productID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return shared.ErrSessionClosed
	}

	product, ok := c.snapshot.ProductByID(productID)
	if !ok {
		return shared.ErrNotFound
	}
	c.cart.Add(product)
	return nil
}

// DecreaseQuantity removes one unit of the identified product. An absent id
// is a no-op, mirroring the cart contract.
func (c *Controller) DecreaseQuantity(productID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return shared.ErrSessionClosed
	}
	c.cart.DecreaseQuantity(productID)
	return nil
}

// ClearCart empties the cart.
func (c *Controller) ClearCart() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return shared.ErrSessionClosed
	}
	c.cart.Clear()
	return nil
}

// Checkout renders the cart as the plain-text order message. An empty cart
// cannot be checked out. When clear is true the cart is emptied after the
// message is built, in the same critical section.
func (c *Controller) Checkout(clear bool) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return "", shared.ErrSessionClosed
	}
	if c.cart.TotalItems() == 0 {
		return "", shared.ErrEmptyCart
	}

	message := storefront.FormatOrder(c.cart)
	if clear {
		c.cart.Clear()
	}
	return message, nil
}

// OrderProduct renders the single-product order message for the "order now"
// shortcut, bypassing the cart entirely.
func (c *Controller) OrderProduct(productID int64) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return "", shared.ErrSessionClosed
	}

	product, ok := c.snapshot.ProductByID(productID)
	if !ok {
		return "", shared.ErrNotFound
	}
	return storefront.FormatProductOrder(product), nil
}

// Reload restarts the session from its initial state: fresh snapshot, empty
// cart, "Tous" selected, both fetches re-run. Bumping the epoch makes any
// in-flight fetch from the previous generation discard its result.
func (c *Controller) Reload() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return shared.ErrSessionClosed
	}
	c.epoch++
	c.snapshot = storefront.NewSnapshot()
	c.cart = storefront.NewCart()
	c.activeCategory = storefront.AllCategoryID
	c.categoriesState = storefront.LoadStateIdle
	c.productsState = storefront.LoadStateIdle
	c.errorMessage = ""
	c.mu.Unlock()

	return c.Load()
}

// RefreshCatalog re-fetches both sources synchronously. Used after admin
// mutations so the session sees the catalog it just changed. The products
// fetch failing is an upstream error; a categories failure stays silent as
// in the background path.
func (c *Controller) RefreshCatalog(ctx context.Context) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "session", "refresh_catalog")
	defer span.End()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return shared.ErrSessionClosed
	}
	epoch := c.epoch
	c.mu.Unlock()

	categories, catErr := c.reader.ListCategories(ctx)
	products, prodErr := c.reader.ListProducts(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.epoch != epoch {
		return shared.ErrSessionClosed
	}

	if catErr != nil {
		c.logger.Warn("categories refresh failed", zap.Error(catErr))
		c.categoriesState = storefront.LoadStateFailed
	} else {
		c.snapshot = c.snapshot.WithCategories(categories)
		c.categoriesState = storefront.LoadStateReady
	}

	if prodErr != nil {
		telemetry.RecordError(span, prodErr)
		c.logger.Error("products refresh failed", zap.Error(prodErr))
		c.productsState = storefront.LoadStateFailed
		c.errorMessage = ProductsLoadErrorMessage
		return shared.ErrUpstreamUnavailable
	}
	c.snapshot = c.snapshot.WithProducts(products)
	c.productsState = storefront.LoadStateReady
	c.errorMessage = ""
	return nil
}

// Close tears the controller down. In-flight fetch results arriving after
// Close are discarded; every subsequent operation fails with a session
// closed error. Safe to call more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.epoch++
	c.mu.Unlock()
	c.cancel()
}
