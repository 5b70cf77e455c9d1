package queries

import (
	"context"

	"khasdash/internal/core/application/dashboard"
)

// GetDashboardQueryHandler reads the current dashboard snapshot.
// The snapshot is a consistent copy: concurrent fetches or enrichment
// completing after the read do not mutate it.
//
// Example:
//
//	handler := NewGetDashboardQueryHandler(controller)
//	query := NewGetDashboardQuery()
//
//	snapshot, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to read dashboard: %v", err)
//	    return err
//	}
type GetDashboardQueryHandler struct {
	provider SnapshotProvider
}

// NewGetDashboardQueryHandler creates a handler for dashboard state queries.
func NewGetDashboardQueryHandler(provider SnapshotProvider) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{provider: provider}
}

// Handle executes the query and returns the current dashboard snapshot.
func (h GetDashboardQueryHandler) Handle(
	_ context.Context,
	query GetDashboardQuery,
) (dashboard.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return dashboard.Snapshot{}, err
	}

	return h.provider.Snapshot(), nil
}
