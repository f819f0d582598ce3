package storefront

import (
	"context"

	"go.uber.org/zap"

	"github.com/smk/storefront/internal/domain/shared"
	"github.com/smk/storefront/internal/domain/storefront"
)

// AdminService proxies catalog mutations to the remote catalog service. The
// bearer token comes from the caller and is passed through verbatim; this
// service never mints or verifies credentials. After a successful mutation
// the caller's session, when supplied, gets a wholesale catalog refresh so
// it immediately sees the change.
type AdminService struct {
	writer   storefront.CatalogWriter
	sessions *SessionManager
	logger   *zap.Logger
}

// NewAdminService creates the admin mutation proxy.
func NewAdminService(writer storefront.CatalogWriter, sessions *SessionManager, logger *zap.Logger) *AdminService {
	return &AdminService{
		writer:   writer,
		sessions: sessions,
		logger:   logger,
	}
}

// CreateProduct creates a product upstream.
func (s *AdminService) CreateProduct(ctx context.Context, token, sessionID string, draft storefront.ProductDraft) (storefront.Product, error) {
	if err := validateDraft(draft); err != nil {
		return storefront.Product{}, err
	}

	product, err := s.writer.CreateProduct(ctx, token, draft)
	if err != nil {
		return storefront.Product{}, err
	}

	s.logger.Info("product created", zap.Int64("product_id", product.ID))
	s.refreshSession(ctx, sessionID)
	return product, nil
}

// UpdateProduct replaces a product upstream.
func (s *AdminService) UpdateProduct(ctx context.Context, token, sessionID string, id int64, draft storefront.ProductDraft) (storefront.Product, error) {
	if err := validateDraft(draft); err != nil {
		return storefront.Product{}, err
	}

	product, err := s.writer.UpdateProduct(ctx, token, id, draft)
	if err != nil {
		return storefront.Product{}, err
	}

	s.logger.Info("product updated", zap.Int64("product_id", id))
	s.refreshSession(ctx, sessionID)
	return product, nil
}

// DeleteProduct removes a product upstream.
func (s *AdminService) DeleteProduct(ctx context.Context, token, sessionID string, id int64) error {
	if err := s.writer.DeleteProduct(ctx, token, id); err != nil {
		return err
	}

	s.logger.Info("product deleted", zap.Int64("product_id", id))
	s.refreshSession(ctx, sessionID)
	return nil
}

// refreshSession re-fetches the catalog for the caller's session. A missing
// or unknown session id is fine; the mutation already succeeded and other
// sessions pick the change up on their next reload.
func (s *AdminService) refreshSession(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	controller, err := s.sessions.Get(sessionID)
	if err != nil {
		return
	}
	if err := controller.RefreshCatalog(ctx); err != nil {
		s.logger.Warn("post-mutation catalog refresh failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}
}

func validateDraft(draft storefront.ProductDraft) error {
	if draft.Name == "" || draft.Price == "" {
		return shared.ErrInvalidInput
	}
	return nil
}
