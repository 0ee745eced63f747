package entity

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrTurnInFlight is returned by BeginTurn while a previous turn is still
// pending. The caller must treat it as a rejection, not queue the submit.
var ErrTurnInFlight = errors.New("a turn is already in flight")

// TurnPhase is the state of the session's turn machine. Only two states
// exist and only Idle→Pending→Idle transitions are legal.
type TurnPhase string

const (
	// PhaseIdle means the session accepts a new submit.
	PhaseIdle TurnPhase = "idle"
	// PhasePending means a submit is being processed and input is locked.
	PhasePending TurnPhase = "pending"
)

// ChatSession owns all mutable state of one widget instance: the message
// timeline, the cart, the comparison tray, the known user location, the
// currently displayed quick replies, and the two guards (turn phase and
// checkout flag). All state is guarded by a single lock so handler
// goroutines observe the same cooperative, serialized behavior a
// single-threaded widget would have. Guard flips happen under the lock;
// network calls never do.
type ChatSession struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu               sync.Mutex
	phase            TurnPhase
	checkoutInFlight bool
	timeline         []Message
	cart             Cart
	compare          *CompareTray
	location         *Coordinates
	quickReplies     []string
}

// NewChatSession creates a session in the Idle phase with an empty cart and
// a comparison tray of the given capacity.
func NewChatSession(compareSlots int) *ChatSession {
	return &ChatSession{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		phase:     PhaseIdle,
		compare:   NewCompareTray(compareSlots),
	}
}

// BeginTurn moves the session from Idle to Pending. A second submit while
// Pending is rejected with ErrTurnInFlight so concurrent submits collapse to
// exactly one in-flight turn.
func (s *ChatSession) BeginTurn() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhasePending {
		return ErrTurnInFlight
	}
	s.phase = PhasePending

	return nil
}

// EndTurn returns the session to Idle. Safe to call from a deferred release
// on every exit path.
func (s *ChatSession) EndTurn() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = PhaseIdle
}

// Phase returns the current turn phase.
func (s *ChatSession) Phase() TurnPhase {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.phase
}

// BeginCheckout sets the checkout guard and reports whether it was acquired.
// A checkout attempt while one is in flight must be a silent no-op, so the
// caller simply returns when this yields false.
func (s *ChatSession) BeginCheckout() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.checkoutInFlight {
		return false
	}
	s.checkoutInFlight = true

	return true
}

// EndCheckout releases the checkout guard.
func (s *ChatSession) EndCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.checkoutInFlight = false
}

// Append adds a message at the end of the timeline and returns it. The
// timeline is append-only; Seq is the creation order.
func (s *ChatSession) Append(role Role, text string) Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := Message{
		ID:        uuid.New(),
		Role:      role,
		Text:      text,
		Seq:       len(s.timeline),
		CreatedAt: time.Now().UTC(),
	}
	s.timeline = append(s.timeline, msg)

	return msg
}

// Timeline returns a copy of the message log in creation order.
func (s *ChatSession) Timeline() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Message, len(s.timeline))
	copy(out, s.timeline)

	return out
}

// SetLocation stores the user location supplied by the backend. Later
// values overwrite earlier ones.
func (s *ChatSession) SetLocation(loc Coordinates) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.location = &loc
}

// Location returns the known user location, or nil when the backend has not
// supplied one yet.
func (s *ChatSession) Location() *Coordinates {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.location == nil {
		return nil
	}
	loc := *s.location

	return &loc
}

// SetQuickReplies replaces the currently displayed quick replies.
func (s *ChatSession) SetQuickReplies(labels []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.quickReplies = append([]string(nil), labels...)
}

// ClearQuickReplies removes all displayed quick replies.
func (s *ChatSession) ClearQuickReplies() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.quickReplies = nil
}

// QuickReplies returns a copy of the currently displayed labels.
func (s *ChatSession) QuickReplies() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.quickReplies...)
}

// TakeQuickReply atomically checks that the label is currently displayed and
// clears the whole set. A tap on a button that has already vanished (for
// example a double tap racing the first dispatch) yields false and must be
// ignored by the caller.
func (s *ChatSession) TakeQuickReply(label string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for _, l := range s.quickReplies {
		if l == label {
			found = true

			break
		}
	}
	if !found {
		return false
	}
	s.quickReplies = nil

	return true
}

// AddToCart adds the product to the cart, deduplicated by ID. It reports
// whether the cart changed.
func (s *ChatSession) AddToCart(p Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Add(p)
}

// RemoveFromCart removes the product with the given ID, returning the
// removed product when one was found.
func (s *ChatSession) RemoveFromCart(productID int64) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, ok := s.cart.Find(productID)
	if !ok {
		return Product{}, false
	}
	s.cart.Remove(productID)

	return removed, true
}

// CartSnapshot returns the ordered cart contents for submission without
// mutating the cart.
func (s *ChatSession) CartSnapshot() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Snapshot()
}

// CartLen returns the number of carted items.
func (s *ChatSession) CartLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Len()
}

// ClearCart empties the cart, as after a successful checkout.
func (s *ChatSession) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
}

// OfferCompare buffers the product for comparison. The reset on reaching
// capacity happens under the session lock, so a racing third offer always
// lands in a fresh tray.
func (s *ChatSession) OfferCompare(p Product) OfferResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.compare.Offer(p)
}

// CompareSize returns the number of products currently buffered for
// comparison.
func (s *ChatSession) CompareSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.compare.Size()
}
