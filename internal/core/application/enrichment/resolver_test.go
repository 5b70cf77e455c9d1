package enrichment_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"khasdash/internal/core/application/enrichment"
	"khasdash/internal/core/domain/model/kernel"
	"khasdash/internal/core/ports"
)

// fakeGeocoder counts calls and serves a canned address per coordinate pair.
type fakeGeocoder struct {
	mu        sync.Mutex
	calls     int
	address   ports.Address
	err       error
	gate      chan struct{} // when non-nil, calls block until the gate closes
	lastPoint kernel.GeoPoint
}

func (f *fakeGeocoder) ReverseGeocode(_ context.Context, point kernel.GeoPoint) (ports.Address, error) {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.lastPoint = point
	return f.address, f.err
}

func (f *fakeGeocoder) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newResolver(geocoder ports.ReverseGeocoder) *enrichment.AreaResolver {
	return enrichment.NewAreaResolver(
		geocoder,
		slog.New(slog.DiscardHandler),
		enrichment.WithStaggerDelay(time.Millisecond),
	)
}

func TestAreaResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves_suburb_from_coordinates", func(t *testing.T) {
		geocoder := &fakeGeocoder{address: ports.Address{Suburb: "Clifton", City: "Karachi"}}
		resolver := newResolver(geocoder)

		resolver.Resolve(ctx, 1043, "24.8607,67.0011")

		assert.Eventually(t, func() bool {
			return resolver.Areas()[1043] == "Clifton"
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("empty_address_resolves_to_fallback_label_not_pending", func(t *testing.T) {
		geocoder := &fakeGeocoder{address: ports.Address{}}
		resolver := newResolver(geocoder)

		resolver.Resolve(ctx, 7, "24.8607,67.0011")

		assert.Eventually(t, func() bool {
			return resolver.Areas()[7] == enrichment.FallbackAreaLabel
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("repeated_resolution_makes_exactly_one_outbound_call", func(t *testing.T) {
		geocoder := &fakeGeocoder{address: ports.Address{Suburb: "Clifton"}}
		resolver := newResolver(geocoder)

		resolver.Resolve(ctx, 1043, "24.8607,67.0011")
		resolver.Resolve(ctx, 1043, "24.8607,67.0011")
		resolver.Resolve(ctx, 1043, "24.8607,67.0011")

		require.Eventually(t, func() bool {
			return len(resolver.Areas()) == 1
		}, time.Second, 5*time.Millisecond)

		// Give duplicate schedules time to fire if they were going to.
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, 1, geocoder.callCount())
	})

	t.Run("resolve_after_resolution_is_a_noop", func(t *testing.T) {
		geocoder := &fakeGeocoder{address: ports.Address{Suburb: "Clifton"}}
		resolver := newResolver(geocoder)

		resolver.Resolve(ctx, 1043, "24.8607,67.0011")
		require.Eventually(t, func() bool {
			return resolver.Areas()[1043] == "Clifton"
		}, time.Second, 5*time.Millisecond)

		resolver.Resolve(ctx, 1043, "24.8607,67.0011")
		time.Sleep(20 * time.Millisecond)

		assert.Equal(t, 1, geocoder.callCount())
		assert.Equal(t, "Clifton", resolver.Areas()[1043], "first successful resolution is final")
	})

	t.Run("malformed_coordinates_make_no_call_and_no_entry", func(t *testing.T) {
		geocoder := &fakeGeocoder{address: ports.Address{Suburb: "Clifton"}}
		resolver := newResolver(geocoder)

		resolver.Resolve(ctx, 13, "not-a-coord")
		time.Sleep(20 * time.Millisecond)

		assert.Zero(t, geocoder.callCount())
		assert.False(t, resolver.HasEntry(13))
	})

	t.Run("absent_and_sentinel_coordinates_are_skipped", func(t *testing.T) {
		geocoder := &fakeGeocoder{}
		resolver := newResolver(geocoder)

		resolver.Resolve(ctx, 1, "")
		resolver.Resolve(ctx, 2, kernel.CoordinatesNotAvailable)
		time.Sleep(20 * time.Millisecond)

		assert.Zero(t, geocoder.callCount())
		assert.False(t, resolver.HasEntry(1))
		assert.False(t, resolver.HasEntry(2))
	})

	t.Run("geocoder_failure_leaves_entry_pending", func(t *testing.T) {
		geocoder := &fakeGeocoder{err: context.DeadlineExceeded}
		resolver := newResolver(geocoder)

		resolver.Resolve(ctx, 55, "24.8607,67.0011")

		require.Eventually(t, func() bool {
			return geocoder.callCount() == 1
		}, time.Second, 5*time.Millisecond)

		assert.True(t, resolver.HasEntry(55), "entry exists")
		assert.NotContains(t, resolver.Areas(), int64(55), "but stays unresolved")
	})
}

func TestAreaResolver_Reset(t *testing.T) {
	ctx := context.Background()

	t.Run("discards_entries_in_bulk", func(t *testing.T) {
		geocoder := &fakeGeocoder{address: ports.Address{Suburb: "Clifton"}}
		resolver := newResolver(geocoder)

		resolver.Resolve(ctx, 1043, "24.8607,67.0011")
		require.Eventually(t, func() bool {
			return len(resolver.Areas()) == 1
		}, time.Second, 5*time.Millisecond)

		resolver.Reset()

		assert.Empty(t, resolver.Areas())
		assert.False(t, resolver.HasEntry(1043))
	})

	t.Run("in_flight_resolution_from_old_generation_is_discarded", func(t *testing.T) {
		gate := make(chan struct{})
		geocoder := &fakeGeocoder{address: ports.Address{Suburb: "Clifton"}, gate: gate}
		resolver := newResolver(geocoder)

		resolver.Resolve(ctx, 1043, "24.8607,67.0011")

		// Replace the collection while the geocoding call is still blocked.
		resolver.Reset()
		close(gate)

		time.Sleep(50 * time.Millisecond)
		assert.Empty(t, resolver.Areas(), "stale write must not land in the fresh cache")
	})
}
