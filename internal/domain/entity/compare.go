package entity

// DefaultCompareSlots is the number of products a comparison holds.
const DefaultCompareSlots = 2

// CompareTray is the transient holding area for a side-by-side product
// comparison. It keeps at most `slots` products, unique by ID. Filling the
// last slot yields the buffered pair and resets the tray in the same call,
// so a subsequent offer always starts a fresh comparison.
type CompareTray struct {
	slots    int
	buffered []Product
}

// NewCompareTray creates a tray with the given capacity. Non-positive
// capacities fall back to DefaultCompareSlots.
func NewCompareTray(slots int) *CompareTray {
	if slots <= 0 {
		slots = DefaultCompareSlots
	}

	return &CompareTray{slots: slots}
}

// OfferResult describes what an Offer call did.
type OfferResult struct {
	Added bool      // false when the product was already buffered
	Size  int       // tray size right after the add, before any reset
	Slots int       // tray capacity
	Ready []Product // the full comparison set, in buffer order; nil until the tray fills
}

// Offer buffers the product. Offering an already-buffered ID is a no-op.
// When the tray reaches capacity the buffered products are returned in
// OfferResult.Ready and the tray is cleared atomically with respect to the
// caller.
func (t *CompareTray) Offer(p Product) OfferResult {
	for _, buffered := range t.buffered {
		if buffered.ID == p.ID {
			return OfferResult{Added: false, Size: len(t.buffered), Slots: t.slots}
		}
	}

	t.buffered = append(t.buffered, p)
	res := OfferResult{Added: true, Size: len(t.buffered), Slots: t.slots}

	if len(t.buffered) >= t.slots {
		res.Ready = t.buffered
		t.buffered = nil
	}

	return res
}

// Size returns the number of buffered products.
func (t *CompareTray) Size() int {
	return len(t.buffered)
}
