package impl

import (
	"context"
	"fmt"
	"log/slog"

	"lookchat/internal/domain/entity"
	"lookchat/internal/domain/render"
	"lookchat/internal/domain/repository"
	"lookchat/internal/domain/service"
	"lookchat/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	cartEmptyNotice        = "Your cart is empty."
	checkoutFailedFallback = "Checkout failed."
	checkoutFailurePrefix  = "⚠️ "
)

type cartService struct {
	sessions  repository.SessionRepository
	assistant service.AssistantService
	logger    *slog.Logger
}

// NewCartService creates the cart and checkout use case.
func NewCartService(
	sessions repository.SessionRepository,
	assistant service.AssistantService,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		sessions:  sessions,
		assistant: assistant,
		logger:    logger,
	}
}

// Add puts the product in the cart. A duplicate add keeps the cart
// unchanged and surfaces an informational system message instead of
// silently dropping the tap.
func (s *cartService) Add(ctx context.Context, sessionID uuid.UUID, product entity.Product) (*render.Frame, error) {
	sess, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	frame := render.NewFrame()

	if !sess.AddToCart(product) {
		text := fmt.Sprintf("%s is already in your cart.", product.Name)
		sess.Append(entity.RoleSystem, text)
		frame.Message(entity.RoleSystem, text)

		return frame, nil
	}

	text := fmt.Sprintf("%s added to cart. Would you like to checkout or keep shopping?", product.Name)
	sess.Append(entity.RoleBot, text)
	frame.Message(entity.RoleBot, text)

	labels := []string{quickReplyCheckout, quickReplyShowMore}
	sess.SetQuickReplies(labels)
	frame.QuickReplies(labels)

	return frame, nil
}

// Remove drops the product by ID and re-renders the remaining cart as a
// carousel whose per-card action removes instead of adding.
func (s *cartService) Remove(ctx context.Context, sessionID uuid.UUID, productID int64) (*render.Frame, error) {
	sess, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	frame := render.NewFrame()

	removed, ok := sess.RemoveFromCart(productID)
	if ok {
		text := fmt.Sprintf("%s removed from your cart.", removed.Name)
		sess.Append(entity.RoleSystem, text)
		frame.Message(entity.RoleSystem, text)
	} else {
		text := "That item is no longer in your cart."
		sess.Append(entity.RoleSystem, text)
		frame.Message(entity.RoleSystem, text)
	}

	frame.Carousel(sess.CartSnapshot(), render.CardActionRemove)

	return frame, nil
}

// Checkout snapshots the cart and submits it. The checkout guard makes a
// second invocation while one is in flight a silent no-op, and it is
// released on all three exit paths: empty cart, success, and recoverable
// failure.
func (s *cartService) Checkout(ctx context.Context, sessionID uuid.UUID) (*render.Frame, error) {
	sess, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !sess.BeginCheckout() {
		return render.NewFrame(), nil
	}
	defer sess.EndCheckout()

	frame := render.NewFrame()
	frame.Input(true)

	if sess.CartLen() == 0 {
		sess.Append(entity.RoleBot, cartEmptyNotice)
		frame.Message(entity.RoleBot, cartEmptyNotice)
		s.restoreQuickReplies(sess, frame, quickReplyShowMore)
		frame.Input(false)

		return frame, nil
	}

	confirmation, err := s.assistant.Checkout(ctx, sess.CartSnapshot())
	if err != nil {
		var rejected *service.CheckoutRejectedError
		if !errors.As(err, &rejected) {
			// Transport failure: surface it like any other recoverable
			// checkout failure so the user can retry.
			s.logger.Error("checkout submission failed",
				slog.String("session_id", sessionID.String()),
				slog.Any("error", err),
			)
			rejected = &service.CheckoutRejectedError{}
		}

		detail := rejected.Detail
		if detail == "" {
			detail = checkoutFailedFallback
		}
		text := checkoutFailurePrefix + detail
		sess.Append(entity.RoleBot, text)
		frame.Message(entity.RoleBot, text)
		s.restoreQuickReplies(sess, frame, quickReplyCheckout, quickReplyShowMore)
		frame.Input(false)

		return frame, nil
	}

	text := fmt.Sprintf("✅ Order %s placed successfully!", confirmation.OrderID)
	sess.Append(entity.RoleBot, text)
	frame.Message(entity.RoleBot, text)

	sess.ClearCart()
	s.restoreQuickReplies(sess, frame, quickReplyShowMore)
	frame.Input(false)

	return frame, nil
}

func (s *cartService) restoreQuickReplies(sess *entity.ChatSession, frame *render.Frame, labels ...string) {
	sess.SetQuickReplies(labels)
	frame.QuickReplies(labels)
}

func (s *cartService) findSession(ctx context.Context, sessionID uuid.UUID) (*entity.ChatSession, error) {
	sess, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	return sess, nil
}
