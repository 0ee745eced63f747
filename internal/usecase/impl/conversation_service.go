// Package impl contains the use case implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"lookchat/config"
	"lookchat/internal/domain/entity"
	"lookchat/internal/domain/render"
	"lookchat/internal/domain/repository"
	"lookchat/internal/domain/service"
	"lookchat/internal/infra/geo"
	"lookchat/internal/usecase"

	"github.com/google/uuid"
)

// Quick-reply labels the orchestrator produces itself. Labels are matched by
// exact string equality, no fuzzy matching.
const (
	quickReplyCheckout = "Checkout"
	quickReplyShowMore = "Show more"
)

// storeQuickReplies is the fixed follow-up set forced after a map render,
// regardless of any quick_replies field the response also carried.
var storeQuickReplies = []string{"Show 5 closest stores", "Only jackets", "Under $100"}

const (
	defaultGreeting = "Hi! I can help you find products, compare them, and check out. What are you looking for?"

	transportFailureNotice = "I couldn't reach the assistant. Please try again."
	mapUnavailableNotice   = "Map view isn't available for this result."
	noLocationNotice       = "I don't have your location to give you directions."
)

type conversationService struct {
	sessions  repository.SessionRepository
	assistant service.AssistantService
	cart      usecase.CartUsecase
	cfg       *config.Config
	logger    *slog.Logger

	// actions maps quick-reply labels to named actions; unmapped labels
	// fall back to the generic send path.
	actions map[string]func(ctx context.Context, sessionID uuid.UUID) (*render.Frame, error)
}

// NewConversationService creates the turn orchestrator.
func NewConversationService(
	sessions repository.SessionRepository,
	assistant service.AssistantService,
	cart usecase.CartUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ConversationUsecase {
	s := &conversationService{
		sessions:  sessions,
		assistant: assistant,
		cart:      cart,
		cfg:       cfg,
		logger:    logger,
	}
	s.actions = map[string]func(ctx context.Context, sessionID uuid.UUID) (*render.Frame, error){
		quickReplyCheckout: s.cart.Checkout,
	}

	return s
}

// StartSession opens a new session with the configured greeting and default
// quick replies.
func (s *conversationService) StartSession(ctx context.Context) (*usecase.StartSessionOutput, error) {
	sess := entity.NewChatSession(s.cfg.Chat.CompareSlots)
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	greeting := s.cfg.Chat.Greeting
	if greeting == "" {
		greeting = defaultGreeting
	}

	frame := render.NewFrame()
	sess.Append(entity.RoleBot, greeting)
	frame.Message(entity.RoleBot, greeting)

	if len(s.cfg.Chat.DefaultQuickReplies) > 0 {
		sess.SetQuickReplies(s.cfg.Chat.DefaultQuickReplies)
		frame.QuickReplies(sess.QuickReplies())
	}

	return &usecase.StartSessionOutput{SessionID: sess.ID, Frame: frame}, nil
}

// Submit runs one full turn: clear quick replies, append the user message,
// lock input, show typing, call the assistant with a minimum thinking-delay
// floor, then dispatch the response envelope in fixed order. The input lock
// is released on every exit path.
func (s *conversationService) Submit(ctx context.Context, sessionID uuid.UUID, text string) (*render.Frame, error) {
	frame := render.NewFrame()

	text = strings.TrimSpace(text)
	if text == "" {
		// Empty input: no message, no request.
		return frame, nil
	}

	sess, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := sess.BeginTurn(); err != nil {
		return nil, err
	}
	defer sess.EndTurn()

	sess.ClearQuickReplies()
	frame.QuickReplies(nil)

	sess.Append(entity.RoleUser, text)
	frame.Message(entity.RoleUser, text)

	frame.Input(true)
	frame.Typing(true)

	started := time.Now()
	reply, err := s.assistant.Chat(ctx, text)
	s.holdTypingFloor(ctx, started)
	frame.Typing(false)

	if err != nil {
		// The widget must never be left stuck with input disabled, so a
		// transport failure surfaces as a system message and releases the
		// lock.
		s.logger.Error("assistant chat call failed",
			slog.String("session_id", sessionID.String()),
			slog.Any("error", err),
		)
		sess.Append(entity.RoleSystem, transportFailureNotice)
		frame.Message(entity.RoleSystem, transportFailureNotice)
		frame.Input(false)

		return frame, nil
	}

	if reply.Action == service.ActionShowCart {
		return s.showCart(ctx, sess, frame)
	}

	if reply.Reply != "" {
		sess.Append(entity.RoleBot, reply.Reply)
		frame.Message(entity.RoleBot, reply.Reply)
	}

	if reply.UserLocation != nil {
		sess.SetLocation(*reply.UserLocation)
	}

	storesForced := false
	if len(reply.Stores) > 0 {
		origin := sess.Location()
		frame.Map(geo.FillDistances(origin, reply.Stores), origin)
		sess.SetQuickReplies(storeQuickReplies)
		frame.QuickReplies(storeQuickReplies)
		storesForced = true
	} else if strings.Contains(reply.Reply, "store") {
		sess.Append(entity.RoleSystem, mapUnavailableNotice)
		frame.Message(entity.RoleSystem, mapUnavailableNotice)
	}

	if len(reply.Products) > 0 {
		frame.Carousel(reply.Products, render.CardActionCompare, render.CardActionAddToCart)
	}

	if !storesForced && reply.QuickReplies != nil {
		sess.SetQuickReplies(reply.QuickReplies)
		frame.QuickReplies(reply.QuickReplies)
	}

	frame.Input(false)

	return frame, nil
}

// showCart is the early-return branch for a server-signaled show_cart
// action: it submits the cart snapshot for a summary, renders the cart as a
// removable carousel and terminates the turn without processing any further
// response fields.
func (s *conversationService) showCart(ctx context.Context, sess *entity.ChatSession, frame *render.Frame) (*render.Frame, error) {
	summary, err := s.assistant.CartSummary(ctx, sess.CartSnapshot())
	if err != nil {
		s.logger.Error("cart summary call failed",
			slog.String("session_id", sess.ID.String()),
			slog.Any("error", err),
		)
		sess.Append(entity.RoleSystem, transportFailureNotice)
		frame.Message(entity.RoleSystem, transportFailureNotice)
		frame.Input(false)

		return frame, nil
	}

	if summary.Reply != "" {
		sess.Append(entity.RoleBot, summary.Reply)
		frame.Message(entity.RoleBot, summary.Reply)
	}
	frame.Carousel(summary.Cart, render.CardActionRemove)

	sess.ClearQuickReplies()
	frame.QuickReplies(nil)
	frame.Input(false)

	return frame, nil
}

// TapQuickReply clears the displayed quick replies first, so a repeated tap
// on a vanished button is a no-op, then dispatches by exact label match.
func (s *conversationService) TapQuickReply(ctx context.Context, sessionID uuid.UUID, label string) (*render.Frame, error) {
	sess, err := s.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !sess.TakeQuickReply(label) {
		return render.NewFrame(), nil
	}

	if action, ok := s.actions[label]; ok {
		return action(ctx, sessionID)
	}

	// Unregistered labels are treated as typed user text.
	return s.Submit(ctx, sessionID, label)
}

// StoreAction handles map-popup actions. Search and details are routed
// through the generic send path as the command strings the backend
// understands; directions require a known user location.
func (s *conversationService) StoreAction(ctx context.Context, sessionID uuid.UUID, input *usecase.StoreActionInput) (*render.Frame, error) {
	switch input.Kind {
	case usecase.StoreActionSearch:
		return s.Submit(ctx, sessionID, fmt.Sprintf("search store %d", input.Store.ID))

	case usecase.StoreActionDetails:
		return s.Submit(ctx, sessionID, fmt.Sprintf("store details %d", input.Store.ID))

	case usecase.StoreActionDirections:
		sess, err := s.findSession(ctx, sessionID)
		if err != nil {
			return nil, err
		}

		frame := render.NewFrame()
		origin := sess.Location()
		if origin == nil {
			frame.Alert(noLocationNotice)

			return frame, nil
		}
		frame.Directions(geo.DirectionsURL(*origin, input.Store))

		return frame, nil

	default:
		return nil, fmt.Errorf("unknown store action kind: %q", input.Kind)
	}
}

// holdTypingFloor sleeps out the remainder of the configured minimum typing
// delay. The floor is a pacing device, not a timeout: it is never retried
// and only context cancellation cuts it short.
func (s *conversationService) holdTypingFloor(ctx context.Context, started time.Time) {
	remaining := s.cfg.Chat.MinTypingDelay - time.Since(started)
	if remaining <= 0 {
		return
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

func (s *conversationService) findSession(ctx context.Context, sessionID uuid.UUID) (*entity.ChatSession, error) {
	sess, err := s.sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	return sess, nil
}
