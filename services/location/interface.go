package location

import "context"

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Resolved is the outcome of a detection attempt: a human-usable place name
// plus the coordinates it was derived from. Fallback results carry zero
// coordinates.
type Resolved struct {
	Name        string      `json:"name"`
	Coordinates Coordinates `json:"coordinates"`
	Fallback    bool        `json:"fallback"`
}

// Geocoder turns coordinates into a place name.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

// Resolver produces a display location for a session.
type Resolver interface {
	// Detect resolves a place name from the coordinates the client supplied.
	// A nil coords means the client could not provide a position (permission
	// denied or geolocation failure); every failure path resolves to the
	// configured default location with a nil error.
	Detect(ctx context.Context, coords *Coordinates) Resolved
}
