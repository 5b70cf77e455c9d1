package queries

import (
	"errors"

	"khasdash/internal/core/application/dashboard"
	"khasdash/internal/pkg/guard"
)

var (
	ErrGetDashboardQueryIsNotConstructed = errors.New(
		"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
	)
)

// GetDashboardQuery retrieves the current dashboard state: load phase,
// active selections, visible orders, per-bucket counts and resolved areas.
//
// Example:
//
//	query := NewGetDashboardQuery()
//	handler := NewGetDashboardQueryHandler(controller)
//
//	snapshot, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to read dashboard: %w", err)
//	}
//
//	fmt.Printf("%d orders in %s\n", len(snapshot.VisibleOrders), snapshot.ActiveBucket)
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a query for the current dashboard state.
// This is a parameterless query.
func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDashboardQueryIsNotConstructed if validation fails.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// SnapshotProvider abstracts the dashboard state machine for the query
// handler. Satisfied by dashboard.Controller.
type SnapshotProvider interface {
	Snapshot() dashboard.Snapshot
}
