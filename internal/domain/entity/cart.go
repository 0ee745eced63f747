package entity

// Cart is an ordered collection of products, deduplicated by product ID.
// It is not safe for concurrent use on its own; ChatSession serializes
// access through its lock.
type Cart struct {
	items []Product
}

// Add appends the product unless one with the same ID is already present.
// It reports whether the cart changed; a duplicate add is a no-op, not an
// error.
func (c *Cart) Add(p Product) bool {
	if c.Contains(p.ID) {
		return false
	}
	c.items = append(c.items, p)

	return true
}

// Remove filters out the product with the given ID, preserving the order of
// the remaining items. It reports whether anything was removed.
func (c *Cart) Remove(productID int64) bool {
	for i, item := range c.items {
		if item.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)

			return true
		}
	}

	return false
}

// Contains reports whether a product with the given ID is in the cart.
func (c *Cart) Contains(productID int64) bool {
	for _, item := range c.items {
		if item.ID == productID {
			return true
		}
	}

	return false
}

// Find returns the carted product with the given ID, if present.
func (c *Cart) Find(productID int64) (Product, bool) {
	for _, item := range c.items {
		if item.ID == productID {
			return item, true
		}
	}

	return Product{}, false
}

// Snapshot returns a copy of the current ordered contents, suitable for
// submission. It does not mutate the cart.
func (c *Cart) Snapshot() []Product {
	out := make([]Product, len(c.items))
	copy(out, c.items)

	return out
}

// Len returns the number of items in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// Empty reports whether the cart holds no items.
func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Clear drops all items.
func (c *Cart) Clear() {
	c.items = nil
}
