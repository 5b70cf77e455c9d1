// Package enrichment implements background resolution of order coordinates
// into human-readable area names.
//
// The resolver memoizes results per order identity, guarantees at most one
// in-flight resolution per order, staggers outbound geocoding calls with a
// fixed per-request delay, and discards late results belonging to a
// superseded order collection. Enrichment failures are isolated per order:
// they are logged, never surfaced, and never retried.
package enrichment

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"khasdash/internal/core/domain/model/kernel"
	"khasdash/internal/core/ports"
	"khasdash/internal/pkg/errs"
)

// FallbackAreaLabel is stored when the geocoder responds without any of the
// preferred locality fields, so the entry resolves instead of staying pending
// forever.
const FallbackAreaLabel = "Area unavailable"

// DefaultStaggerDelay is the fixed delay applied to each outbound geocoding
// call relative to when its order was first observed. It is per-request
// backpressure, not a shared token bucket: enriching N orders fires N delayed
// calls, not one call per delay tick.
const DefaultStaggerDelay = time.Second

type entryState int

const (
	statePending entryState = iota
	stateResolved
)

// cacheEntry is one area cache slot. Once resolved it is never overwritten;
// the first successful resolution wins for the order's lifetime in memory.
type cacheEntry struct {
	state entryState
	area  string
}

// AreaResolver resolves raw coordinate strings into area names, caching by
// order identity. Entries live only as long as the order collection they were
// created for: Reset discards them in bulk when the collection is replaced,
// and a generation tag keeps late responses from a discarded collection out
// of the fresh cache.
type AreaResolver struct {
	geocoder ports.ReverseGeocoder
	logger   *slog.Logger
	delay    time.Duration

	mu         sync.Mutex
	entries    map[int64]*cacheEntry
	generation uint64
}

// Option configures an AreaResolver.
type Option func(*AreaResolver)

// WithStaggerDelay overrides the fixed per-request stagger delay.
func WithStaggerDelay(delay time.Duration) Option {
	return func(r *AreaResolver) {
		r.delay = delay
	}
}

// NewAreaResolver creates a resolver backed by the given geocoder.
func NewAreaResolver(geocoder ports.ReverseGeocoder, logger *slog.Logger, opts ...Option) *AreaResolver {
	r := &AreaResolver{
		geocoder: geocoder,
		logger:   logger.With("component", "area_resolver"),
		delay:    DefaultStaggerDelay,
		entries:  make(map[int64]*cacheEntry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve schedules background resolution of the order's coordinates.
// It returns immediately; the result lands in the cache and becomes visible
// through Areas.
//
// The call is a no-op when the order carries no usable coordinates, when an
// entry for the order already exists (pending or resolved), or when the raw
// string is malformed. Malformed input never creates a cache entry and never
// reaches the network.
func (r *AreaResolver) Resolve(ctx context.Context, orderID int64, rawCoordinates string) {
	if rawCoordinates == "" || rawCoordinates == kernel.CoordinatesNotAvailable {
		return
	}

	point, err := kernel.ParseGeoPoint(rawCoordinates)
	if err != nil {
		r.logger.WarnContext(ctx, "Skipping enrichment for malformed coordinates",
			"order_id", orderID,
			"error", errs.NewEnrichmentErrorWithCause("coordinates", err),
		)
		return
	}

	r.mu.Lock()
	if _, exists := r.entries[orderID]; exists {
		r.mu.Unlock()
		return
	}
	r.entries[orderID] = &cacheEntry{state: statePending}
	generation := r.generation
	r.mu.Unlock()

	go r.resolve(ctx, orderID, point, generation)
}

// resolve performs the delayed geocoding call and writes the result if the
// cache generation is still current.
func (r *AreaResolver) resolve(ctx context.Context, orderID int64, point kernel.GeoPoint, generation uint64) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(r.delay):
	}

	address, err := r.geocoder.ReverseGeocode(ctx, point)
	if err != nil {
		// The entry stays pending for this session; no retry.
		r.logger.WarnContext(ctx, "Area resolution failed",
			"order_id", orderID, "point", point.String(), "error", err)
		return
	}

	area, ok := address.AreaLabel()
	if !ok {
		area = FallbackAreaLabel
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.generation != generation {
		// The collection this order belonged to was replaced mid-flight.
		return
	}
	entry, exists := r.entries[orderID]
	if !exists || entry.state == stateResolved {
		return
	}
	entry.state = stateResolved
	entry.area = area
}

// Reset discards all cache entries and invalidates in-flight resolutions.
// Called whenever the order collection is replaced by a new fetch, since a
// different time window may return a disjoint order set and stale keys would
// otherwise leak indefinitely.
func (r *AreaResolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[int64]*cacheEntry)
	r.generation++
}

// Areas returns the resolved area name per order id. Pending entries are
// omitted: an order shows up here only once its resolution succeeded.
func (r *AreaResolver) Areas() map[int64]string {
	r.mu.Lock()
	defer r.mu.Unlock()

	areas := make(map[int64]string)
	for id, entry := range r.entries {
		if entry.state == stateResolved {
			areas[id] = entry.area
		}
	}
	return areas
}

// HasEntry reports whether an entry (pending or resolved) exists for the
// order id.
func (r *AreaResolver) HasEntry(orderID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, exists := r.entries[orderID]
	return exists
}
