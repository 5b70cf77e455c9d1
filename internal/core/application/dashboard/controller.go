// Package dashboard implements the application-level controller that
// orchestrates the order ingestion, classification, and enrichment pipeline
// and exposes a unified read model to the presentation boundary.
package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"khasdash/internal/core/application/enrichment"
	"khasdash/internal/core/domain/model/kernel"
	"khasdash/internal/core/domain/model/order"
	"khasdash/internal/core/domain/services"
	"khasdash/internal/core/ports"
)

// Snapshot is the read model the presentation layer consumes. It is a
// point-in-time copy; mutating it does not affect the controller.
type Snapshot struct {
	LoadState     LoadState
	ErrorMessage  string
	ActiveWindow  kernel.TimeWindow
	ActiveBucket  order.Bucket
	VisibleOrders []*order.Order
	BucketCounts  map[order.Bucket]int
	AreaByOrderID map[int64]string
}

// Controller owns the dashboard state machine over two independent axes: the
// active time window and the active workflow bucket, plus the fetch load
// state.
//
// A window change (or retry) discards the current collection and enrichment
// cache, bumps the fetch generation, and triggers an asynchronous fetch.
// A fetch result is applied only if its generation is still current, so a
// late-arriving result from a superseded window never overwrites a newer
// selection (last-window-wins). Enrichment for the fetched orders is
// scheduled fire-and-forget after a successful apply and never gates the
// Loaded transition.
//
// A bucket change is a pure read-side filter; it never triggers a refetch.
type Controller struct {
	source     ports.OrderSource
	resolver   *enrichment.AreaResolver
	classifier services.Classifier
	logger     *slog.Logger
	now        func() time.Time

	mu           sync.Mutex
	activeWindow kernel.TimeWindow
	activeBucket order.Bucket
	loadState    LoadState
	errorMessage string
	orders       []*order.Order
	generation   uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the clock used to resolve window boundaries.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController creates a dashboard controller with the default window
// (Daily) and the default bucket (created), in the Idle state. Call Start to
// trigger the initial load.
func NewController(
	source ports.OrderSource,
	resolver *enrichment.AreaResolver,
	logger *slog.Logger,
	opts ...Option,
) *Controller {
	c := &Controller{
		source:       source,
		resolver:     resolver,
		classifier:   services.NewClassifier(),
		logger:       logger.With("component", "dashboard_controller"),
		now:          time.Now,
		activeWindow: kernel.WindowDaily,
		activeBucket: order.BucketCreated,
		loadState:    Idle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start triggers the initial load for the default window, entering Loading.
func (c *Controller) Start(ctx context.Context) {
	c.reload(ctx)
}

// SelectWindow changes the active time window and reloads the collection.
// The previous collection and every enrichment cache entry tied to it are
// discarded immediately; the fetch runs asynchronously.
func (c *Controller) SelectWindow(ctx context.Context, window kernel.TimeWindow) error {
	if err := window.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	c.activeWindow = window
	c.mu.Unlock()

	c.reload(ctx)
	return nil
}

// SelectBucket changes the active workflow bucket. This is a pure read-side
// projection change; it never triggers a refetch.
func (c *Controller) SelectBucket(bucket order.Bucket) error {
	if err := bucket.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	c.activeBucket = bucket
	c.mu.Unlock()
	return nil
}

// Retry re-issues the fetch for the current window after a failure (or at
// any other time; it is also the periodic refresh entry point).
func (c *Controller) Retry(ctx context.Context) {
	c.reload(ctx)
}

// Snapshot returns the current read model: load state, error message, the
// orders of the active bucket, per-bucket counts, and the resolved areas.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Snapshot{
		LoadState:     c.loadState,
		ErrorMessage:  c.errorMessage,
		ActiveWindow:  c.activeWindow,
		ActiveBucket:  c.activeBucket,
		VisibleOrders: c.classifier.Classify(c.orders, c.activeBucket),
		BucketCounts:  c.classifier.CountByBucket(c.orders),
		AreaByOrderID: c.resolver.Areas(),
	}
}

// reload discards the current collection, enters Loading under a new fetch
// generation, and dispatches the fetch asynchronously.
func (c *Controller) reload(ctx context.Context) {
	c.mu.Lock()
	c.loadState = Loading
	c.errorMessage = ""
	c.orders = nil
	c.generation++
	generation := c.generation
	window := c.activeWindow
	// The lock orders the Reset with the generation bump, so an older
	// reload's Reset can never land after a newer fetch already applied.
	c.resolver.Reset()
	c.mu.Unlock()

	boundary, err := window.Boundary(c.now())
	if err != nil {
		// Unreachable with a validated window; fail loudly if it happens.
		c.applyFailure(ctx, generation, err)
		return
	}

	c.logger.InfoContext(ctx, "Reloading orders",
		"window", window.String(), "after", boundary, "generation", generation)

	// The fetch must outlive the caller: an HTTP request context is
	// canceled as soon as the handler returns, well before the fetch and
	// the staggered enrichment complete.
	go c.fetch(context.WithoutCancel(ctx), generation, boundary)
}

// fetch performs the bounded fetch and applies the result if its generation
// is still current.
func (c *Controller) fetch(ctx context.Context, generation uint64, boundary time.Time) {
	orders, err := c.source.FetchOrders(ctx, boundary)
	if err != nil {
		c.applyFailure(ctx, generation, err)
		return
	}

	c.mu.Lock()
	if c.generation != generation {
		c.mu.Unlock()
		c.logger.InfoContext(ctx, "Discarding superseded fetch result", "generation", generation)
		return
	}
	c.loadState = Loaded
	c.orders = orders

	// Enrichment is fire-and-forget and never gates Loaded. Scheduling
	// happens under the lock so a reload cannot slip in between the apply
	// and the Resolve calls and have this collection seed its fresh cache.
	for _, o := range orders {
		if raw, ok := o.RawCoordinates(); ok {
			c.resolver.Resolve(ctx, o.ID(), raw)
		}
	}
	c.mu.Unlock()
}

func (c *Controller) applyFailure(ctx context.Context, generation uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != generation {
		c.logger.InfoContext(ctx, "Discarding superseded fetch failure", "generation", generation)
		return
	}
	c.loadState = Failed
	c.errorMessage = err.Error()
	c.logger.ErrorContext(ctx, "Order fetch failed", "generation", generation, "error", err)
}
