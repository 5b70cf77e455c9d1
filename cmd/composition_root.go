package cmd

import (
	"log/slog"
	"net/http"
	"time"

	khttp "khasdash/internal/adapters/in/http"
	"khasdash/internal/adapters/out/commerce"
	"khasdash/internal/adapters/out/nominatim"
	"khasdash/internal/core/application/dashboard"
	"khasdash/internal/core/application/enrichment"
	"khasdash/internal/core/application/usecases/commands"
	"khasdash/internal/core/application/usecases/queries"
	"khasdash/internal/jobs"
)

const httpClientTimeout = 15 * time.Second

// CompositionRoot wires adapters, use cases and the dashboard state machine.
type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	controller *dashboard.Controller
}

// NewCompositionRoot builds the object graph from the given configuration.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	httpClient := &http.Client{Timeout: httpClientTimeout}

	source, err := commerce.NewClient(commerce.Config{
		BaseURL:     config.OrdersBaseURL,
		BearerToken: config.OrdersToken,
		PageSize:    config.OrdersPageSize,
	}, httpClient, logger)
	if err != nil {
		return nil, err
	}

	geocoder := nominatim.NewClient(config.GeocodeBaseURL, httpClient)

	var resolverOpts []enrichment.Option
	if config.EnrichmentStagger > 0 {
		resolverOpts = append(resolverOpts, enrichment.WithStaggerDelay(config.EnrichmentStagger))
	}
	resolver := enrichment.NewAreaResolver(geocoder, logger, resolverOpts...)

	controller := dashboard.NewController(source, resolver, logger)

	return &CompositionRoot{
		config:     config,
		logger:     logger,
		controller: controller,
	}, nil
}

// Controller returns the dashboard state machine.
func (c *CompositionRoot) Controller() *dashboard.Controller {
	return c.controller
}

func (c *CompositionRoot) CreateSelectWindowCommandHandler() commands.SelectWindowCommandHandler {
	return commands.NewSelectWindowCommandHandler(c.controller)
}

func (c *CompositionRoot) CreateSelectBucketCommandHandler() commands.SelectBucketCommandHandler {
	return commands.NewSelectBucketCommandHandler(c.controller)
}

func (c *CompositionRoot) CreateRefreshDashboardCommandHandler() commands.RefreshDashboardCommandHandler {
	return commands.NewRefreshDashboardCommandHandler(c.controller)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.controller)
}

// CreateHTTPServer builds the HTTP adapter with all handlers wired.
func (c *CompositionRoot) CreateHTTPServer() *khttp.Server {
	return khttp.NewServer(
		c.CreateSelectWindowCommandHandler(),
		c.CreateSelectBucketCommandHandler(),
		c.CreateRefreshDashboardCommandHandler(),
		c.CreateGetDashboardQueryHandler(),
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRefreshDashboardCommandHandler(),
		c.config.RefreshSchedule,
		c.logger,
	)
}
