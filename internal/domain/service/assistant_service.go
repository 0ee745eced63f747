// Package service defines interfaces for external collaborators consumed by
// the usecase layer.
package service

import (
	"context"
	"fmt"

	"lookchat/internal/domain/entity"
)

// ActionShowCart is the server-signaled action asking the widget to render
// the current cart.
const ActionShowCart = "show_cart"

// ChatReply is the response envelope of the assistant's chat endpoint.
// Every field is optional; the orchestrator dispatches on what is present.
type ChatReply struct {
	Reply        string              `json:"reply,omitempty"`
	Products     []entity.Product    `json:"products,omitempty"`
	Stores       []entity.Store      `json:"stores,omitempty"`
	QuickReplies []string            `json:"quick_replies,omitempty"`
	UserLocation *entity.Coordinates `json:"user_location,omitempty"`
	Action       string              `json:"action,omitempty"`
}

// CartSummary is the response of the cart summary endpoint.
type CartSummary struct {
	Reply string           `json:"reply,omitempty"`
	Cart  []entity.Product `json:"cart"`
}

// OrderConfirmation is the success response of the checkout endpoint.
type OrderConfirmation struct {
	OrderID string `json:"order_id"`
}

// CheckoutRejectedError is a recoverable checkout failure: the backend
// rejected the submission with a human-readable detail. The orchestrator
// converts it to a chat message and restores the retry quick replies.
type CheckoutRejectedError struct {
	StatusCode int
	Detail     string
}

// Error implements the error interface.
func (e *CheckoutRejectedError) Error() string {
	return fmt.Sprintf("checkout rejected (status %d): %s", e.StatusCode, e.Detail)
}

// AssistantService is the backend assistant collaborator: a black-box
// request/response endpoint keyed by free-text or structured command strings.
type AssistantService interface {
	// Chat sends one user turn and returns the response envelope.
	Chat(ctx context.Context, message string) (*ChatReply, error)

	// CartSummary submits the current cart snapshot and returns the
	// summary reply plus the cart as the backend sees it.
	CartSummary(ctx context.Context, items []entity.Product) (*CartSummary, error)

	// Checkout submits the cart snapshot. A backend rejection surfaces as
	// *CheckoutRejectedError; other errors are transport failures.
	Checkout(ctx context.Context, items []entity.Product) (*OrderConfirmation, error)
}
