// Package usecase defines the application's use case interfaces and their
// input/output types.
package usecase

import (
	"context"

	"lookchat/internal/domain/entity"
	"lookchat/internal/domain/render"

	"github.com/google/uuid"
)

// StoreActionKind identifies a map-popup action on a store marker.
type StoreActionKind string

const (
	// StoreActionSearch lists the products carried by the store.
	StoreActionSearch StoreActionKind = "search"
	// StoreActionDetails shows the store's detail card.
	StoreActionDetails StoreActionKind = "details"
	// StoreActionDirections opens a directions link; it requires a known
	// user location.
	StoreActionDirections StoreActionKind = "directions"
)

// StoreActionInput carries a map-popup action.
type StoreActionInput struct {
	Kind  StoreActionKind
	Store entity.Store
}

// StartSessionOutput is the result of opening a widget session.
type StartSessionOutput struct {
	SessionID uuid.UUID     `json:"session_id"`
	Frame     *render.Frame `json:"frame"`
}

// ConversationUsecase is the turn orchestrator: the single entry point for
// everything the user can do in the chat surface. Each call returns the
// ordered render frame the widget must apply.
type ConversationUsecase interface {
	// StartSession opens a new widget session with the configured greeting
	// and default quick replies.
	StartSession(ctx context.Context) (*StartSessionOutput, error)

	// Submit runs one full turn for typed user text. Text that is empty
	// after trimming is silently ignored. A submit while another turn is
	// pending is rejected with entity.ErrTurnInFlight.
	Submit(ctx context.Context, sessionID uuid.UUID, text string) (*render.Frame, error)

	// TapQuickReply dispatches a quick-reply tap: registered labels invoke
	// their named action, everything else goes through the generic send
	// path. A label that is no longer displayed is a silent no-op.
	TapQuickReply(ctx context.Context, sessionID uuid.UUID, label string) (*render.Frame, error)

	// StoreAction handles map-popup actions.
	StoreAction(ctx context.Context, sessionID uuid.UUID, input *StoreActionInput) (*render.Frame, error)
}
