// Package render defines the command list the orchestrator hands back to the
// widget after each user event. The widget applies the ops to the DOM in
// order; tests drive the orchestrator and assert on frames without any
// rendering surface.
package render

import (
	"lookchat/internal/domain/entity"
)

// Kind discriminates render ops.
type Kind string

const (
	// KindMessage appends a chat message and scrolls to the bottom.
	KindMessage Kind = "message"
	// KindTyping shows or hides the typing indicator.
	KindTyping Kind = "typing"
	// KindInput locks or unlocks the text input and quick-reply buttons.
	// Unlocking also returns focus to the text entry.
	KindInput Kind = "input"
	// KindQuickReplies replaces the displayed quick replies; an empty label
	// set clears them.
	KindQuickReplies Kind = "quick_replies"
	// KindCarousel renders a product carousel with the given per-card actions.
	KindCarousel Kind = "carousel"
	// KindComparison renders a side-by-side comparison, in buffer order.
	KindComparison Kind = "comparison"
	// KindMap renders the store map with one marker per store.
	KindMap Kind = "map"
	// KindAlert raises a blocking alert-style notice.
	KindAlert Kind = "alert"
	// KindDirections opens a directions link for a store.
	KindDirections Kind = "directions"
)

// CardAction is an action button on a carousel card.
type CardAction string

const (
	CardActionCompare   CardAction = "compare"
	CardActionAddToCart CardAction = "add_to_cart"
	CardActionRemove    CardAction = "remove"
)

// Op is one render command. Which fields are set depends on Kind.
type Op struct {
	Kind     Kind                `json:"kind"`
	Role     entity.Role         `json:"role,omitempty"`
	Text     string              `json:"text,omitempty"`
	On       bool                `json:"on,omitempty"`
	Labels   []string            `json:"labels,omitempty"`
	Products []entity.Product    `json:"products,omitempty"`
	Actions  []CardAction        `json:"actions,omitempty"`
	Stores   []entity.Store      `json:"stores,omitempty"`
	Origin   *entity.Coordinates `json:"origin,omitempty"`
	URL      string              `json:"url,omitempty"`
}

// Frame is the ordered op list produced by one user event.
type Frame struct {
	Ops []Op `json:"ops"`
}

// NewFrame returns an empty frame.
func NewFrame() *Frame {
	return &Frame{}
}

// Message appends a chat message op.
func (f *Frame) Message(role entity.Role, text string) {
	f.Ops = append(f.Ops, Op{Kind: KindMessage, Role: role, Text: text})
}

// Typing toggles the typing indicator.
func (f *Frame) Typing(on bool) {
	f.Ops = append(f.Ops, Op{Kind: KindTyping, On: on})
}

// Input toggles the input lock.
func (f *Frame) Input(locked bool) {
	f.Ops = append(f.Ops, Op{Kind: KindInput, On: locked})
}

// QuickReplies replaces the displayed quick replies. Passing no labels
// clears them.
func (f *Frame) QuickReplies(labels []string) {
	f.Ops = append(f.Ops, Op{Kind: KindQuickReplies, Labels: labels})
}

// Carousel renders products with the given per-card actions.
func (f *Frame) Carousel(products []entity.Product, actions ...CardAction) {
	f.Ops = append(f.Ops, Op{Kind: KindCarousel, Products: products, Actions: actions})
}

// Comparison renders a side-by-side comparison.
func (f *Frame) Comparison(products []entity.Product) {
	f.Ops = append(f.Ops, Op{Kind: KindComparison, Products: products})
}

// Map renders the store map. Origin carries the user location when known so
// the viewport can include it in the fitted bounds.
func (f *Frame) Map(stores []entity.Store, origin *entity.Coordinates) {
	f.Ops = append(f.Ops, Op{Kind: KindMap, Stores: stores, Origin: origin})
}

// Alert raises a blocking notice.
func (f *Frame) Alert(text string) {
	f.Ops = append(f.Ops, Op{Kind: KindAlert, Text: text})
}

// Directions opens a directions link.
func (f *Frame) Directions(url string) {
	f.Ops = append(f.Ops, Op{Kind: KindDirections, URL: url})
}

// Empty reports whether the frame carries no ops, i.e. the event was a
// silent no-op.
func (f *Frame) Empty() bool {
	return len(f.Ops) == 0
}
