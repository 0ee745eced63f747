package usecase

import (
	"context"

	"lookchat/internal/domain/entity"
	"lookchat/internal/domain/render"

	"github.com/google/uuid"
)

// CompareUsecase manages the two-slot comparison tray.
type CompareUsecase interface {
	// Offer buffers the product for comparison. A duplicate offer is a
	// silent no-op; filling the tray renders the comparison and resets it.
	Offer(ctx context.Context, sessionID uuid.UUID, product entity.Product) (*render.Frame, error)
}
