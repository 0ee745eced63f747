package impl

import (
	"context"
	"fmt"

	"lookchat/internal/domain/entity"
	"lookchat/internal/domain/render"
	"lookchat/internal/domain/repository"
	"lookchat/internal/usecase"

	"github.com/google/uuid"
)

type compareService struct {
	sessions repository.SessionRepository
}

// NewCompareService creates the comparison tray use case.
func NewCompareService(sessions repository.SessionRepository) usecase.CompareUsecase {
	return &compareService{sessions: sessions}
}

// Offer buffers the product for comparison. Only a fresh add produces the
// count-update system message; filling the tray renders the side-by-side
// comparison and starts the next offer from an empty tray.
func (s *compareService) Offer(ctx context.Context, sessionID uuid.UUID, product entity.Product) (*render.Frame, error) {
	sess, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	frame := render.NewFrame()

	res := sess.OfferCompare(product)
	if !res.Added {
		return frame, nil
	}

	text := fmt.Sprintf("%s added for comparison (%d/%d).", product.Name, res.Size, res.Slots)
	sess.Append(entity.RoleSystem, text)
	frame.Message(entity.RoleSystem, text)

	if res.Ready != nil {
		frame.Comparison(res.Ready)
	}

	return frame, nil
}
