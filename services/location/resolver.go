// File: services/location/resolver.go
package location

import (
	"context"
	"sync/atomic"
	"time"

	"hobyhub/utils"

	"go.uber.org/zap"
)

// detectTimeout bounds a single reverse-geocoding attempt.
const detectTimeout = 5 * time.Second

// DefaultResolver resolves place names through a Geocoder, substituting the
// default location on any failure. A detection already in flight makes
// concurrent Detect calls return the last known result immediately; they are
// dropped, not queued.
type DefaultResolver struct {
	Geocoder        Geocoder
	DefaultLocation string

	detecting atomic.Bool
	last      atomic.Value // Resolved
	logger    *zap.Logger
}

// NewDefaultResolver builds a resolver with the given geocoder and fallback
// location name.
func NewDefaultResolver(geocoder Geocoder, defaultLocation string) *DefaultResolver {
	r := &DefaultResolver{
		Geocoder:        geocoder,
		DefaultLocation: defaultLocation,
		logger:          utils.GetLogger(),
	}
	r.last.Store(r.fallback())
	return r
}

func (r *DefaultResolver) fallback() Resolved {
	return Resolved{Name: r.DefaultLocation, Fallback: true}
}

// Current returns the most recently resolved location.
func (r *DefaultResolver) Current() Resolved {
	return r.last.Load().(Resolved)
}

// Detect implements Resolver. It never returns an error: permission denial,
// geocoder failure and timeout all collapse to the default location, logged
// but not propagated.
func (r *DefaultResolver) Detect(ctx context.Context, coords *Coordinates) Resolved {
	if !r.detecting.CompareAndSwap(false, true) {
		// A detection is already running; ignore this one.
		return r.Current()
	}
	defer r.detecting.Store(false)

	if coords == nil {
		r.logger.Warn("Geolocation unavailable; using default location",
			zap.String("default", r.DefaultLocation))
		result := r.fallback()
		r.last.Store(result)
		return result
	}

	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	name, err := r.Geocoder.ReverseGeocode(ctx, coords.Latitude, coords.Longitude)
	if err != nil || name == "" {
		r.logger.Error("Reverse geocoding failed; using default location",
			zap.Float64("lat", coords.Latitude),
			zap.Float64("lng", coords.Longitude),
			zap.Error(err))
		result := r.fallback()
		r.last.Store(result)
		return result
	}

	result := Resolved{Name: name, Coordinates: *coords}
	r.last.Store(result)
	return result
}
