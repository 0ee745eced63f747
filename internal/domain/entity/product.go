// Package entity contains the core business objects of the project.
package entity

// Product is a catalog item as returned by the assistant backend.
// Products are immutable on the client side: session state only ever
// references them, keyed by ID.
type Product struct {
	ID               int64   `json:"id"`                          // Stable catalog identifier.
	Name             string  `json:"name"`                        // Display name.
	Brand            string  `json:"brand,omitempty"`             // Brand label.
	Category         string  `json:"category,omitempty"`          // Catalog category, e.g. "Outerwear & Coats".
	Department       string  `json:"department,omitempty"`        // "Men" or "Women".
	SKU              string  `json:"sku,omitempty"`               // Stock keeping unit.
	RetailPrice      float64 `json:"retail_price"`                // Non-negative retail price in USD.
	DistributionName string  `json:"distribution_name,omitempty"` // Fulfilling store / distribution center name.
}

// Store is a physical store surfaced on the map view. Stores are ephemeral:
// they live only for the map render they arrived with.
type Store struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km,omitempty"` // Distance from the user, kilometers.
}

// Coordinates is a latitude/longitude pair, used for the session's known
// user location.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
