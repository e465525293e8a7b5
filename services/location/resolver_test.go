// File: services/location/resolver_test.go
package location

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGeocoder struct {
	name string
	err  error

	calls   atomic.Int32
	block   chan struct{} // when non-nil, ReverseGeocode parks until closed
	started chan struct{}
}

func (g *stubGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	g.calls.Add(1)
	if g.started != nil {
		g.started <- struct{}{}
	}
	if g.block != nil {
		<-g.block
	}
	return g.name, g.err
}

func TestDetectNilCoordinatesFallsBack(t *testing.T) {
	geo := &stubGeocoder{name: "Mumbai"}
	r := NewDefaultResolver(geo, "Pune")

	got := r.Detect(context.Background(), nil)

	assert.Equal(t, "Pune", got.Name)
	assert.True(t, got.Fallback)
	assert.Equal(t, int32(0), geo.calls.Load(), "no geocode without coordinates")
}

func TestDetectGeocoderFailureFallsBack(t *testing.T) {
	geo := &stubGeocoder{err: errors.New("quota exceeded")}
	r := NewDefaultResolver(geo, "Pune")

	got := r.Detect(context.Background(), &Coordinates{Latitude: 18.52, Longitude: 73.85})

	assert.Equal(t, "Pune", got.Name)
	assert.True(t, got.Fallback)
}

func TestDetectEmptyNameFallsBack(t *testing.T) {
	geo := &stubGeocoder{name: ""}
	r := NewDefaultResolver(geo, "Pune")

	got := r.Detect(context.Background(), &Coordinates{Latitude: 18.52, Longitude: 73.85})

	assert.Equal(t, "Pune", got.Name)
	assert.True(t, got.Fallback)
}

func TestDetectSuccess(t *testing.T) {
	geo := &stubGeocoder{name: "Mumbai"}
	r := NewDefaultResolver(geo, "Pune")

	coords := Coordinates{Latitude: 19.07, Longitude: 72.87}
	got := r.Detect(context.Background(), &coords)

	assert.Equal(t, "Mumbai", got.Name)
	assert.Equal(t, coords, got.Coordinates)
	assert.False(t, got.Fallback)
	assert.Equal(t, got, r.Current())
}

func TestDetectCurrentStartsAtDefault(t *testing.T) {
	r := NewDefaultResolver(&stubGeocoder{}, "Pune")

	got := r.Current()
	assert.Equal(t, "Pune", got.Name)
	assert.True(t, got.Fallback)
}

func TestDetectInFlightCallsAreDropped(t *testing.T) {
	geo := &stubGeocoder{
		name:    "Mumbai",
		block:   make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	r := NewDefaultResolver(geo, "Pune")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.Detect(context.Background(), &Coordinates{Latitude: 19.07, Longitude: 72.87})
	}()

	select {
	case <-geo.started:
	case <-time.After(time.Second):
		t.Fatal("geocoder was never called")
	}

	// The first detection is still running; this one returns the last known
	// result without issuing a second geocode.
	got := r.Detect(context.Background(), &Coordinates{Latitude: 28.61, Longitude: 77.20})
	assert.Equal(t, "Pune", got.Name)
	assert.Equal(t, int32(1), geo.calls.Load())

	close(geo.block)
	wg.Wait()

	require.Equal(t, "Mumbai", r.Current().Name)
}
