package usecase

import (
	"context"

	"lookchat/internal/domain/entity"
	"lookchat/internal/domain/render"

	"github.com/google/uuid"
)

// CartUsecase manages the session cart and the checkout flow.
type CartUsecase interface {
	// Add puts the product in the cart. Adding a product that is already
	// carted is a no-op surfaced as an informational system message.
	Add(ctx context.Context, sessionID uuid.UUID, product entity.Product) (*render.Frame, error)

	// Remove drops the product by ID and re-renders the remaining cart as
	// a removable carousel.
	Remove(ctx context.Context, sessionID uuid.UUID, productID int64) (*render.Frame, error)

	// Checkout snapshots the cart and submits it. Concurrent invocations
	// collapse to a single submission; the losing call returns an empty
	// frame. A backend rejection is recoverable and never surfaces as an
	// error.
	Checkout(ctx context.Context, sessionID uuid.UUID) (*render.Frame, error)
}
