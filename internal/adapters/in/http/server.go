package http

import (
	"net/http"

	"khasdash/internal/core/application/usecases/commands"
	"khasdash/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// Server exposes the dashboard over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	selectWindowHandler commands.SelectWindowCommandHandler
	selectBucketHandler commands.SelectBucketCommandHandler
	refreshHandler      commands.RefreshDashboardCommandHandler

	// Query handlers
	getDashboardHandler queries.GetDashboardQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	selectWindowHandler commands.SelectWindowCommandHandler,
	selectBucketHandler commands.SelectBucketCommandHandler,
	refreshHandler commands.RefreshDashboardCommandHandler,
	getDashboardHandler queries.GetDashboardQueryHandler,
) *Server {
	return &Server{
		selectWindowHandler: selectWindowHandler,
		selectBucketHandler: selectBucketHandler,
		refreshHandler:      refreshHandler,
		getDashboardHandler: getDashboardHandler,
	}
}

// RegisterRoutes attaches the dashboard routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/dashboard", s.GetDashboard)
	api.POST("/dashboard/window", s.SelectWindow)
	api.POST("/dashboard/bucket", s.SelectBucket)
	api.POST("/dashboard/retry", s.Retry)
}

// GetDashboard handles GET /api/v1/dashboard - returns the current dashboard state.
func (s *Server) GetDashboard(ctx echo.Context) error {
	query := queries.NewGetDashboardQuery()

	snapshot, err := s.getDashboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to read dashboard",
		})
	}

	return ctx.JSON(http.StatusOK, toDashboardResponse(snapshot))
}

// SelectWindow handles POST /api/v1/dashboard/window - switches the time window.
func (s *Server) SelectWindow(ctx echo.Context) error {
	var request SelectWindowRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSelectWindowCommand(request.Name)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid window: " + err.Error(),
		})
	}

	if handleErr := s.selectWindowHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to switch window",
		})
	}

	return ctx.NoContent(http.StatusAccepted)
}

// SelectBucket handles POST /api/v1/dashboard/bucket - switches the status bucket.
func (s *Server) SelectBucket(ctx echo.Context) error {
	var request SelectBucketRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewSelectBucketCommand(request.ID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid bucket: " + err.Error(),
		})
	}

	if handleErr := s.selectBucketHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to switch bucket",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Retry handles POST /api/v1/dashboard/retry - re-fetches the current window.
func (s *Server) Retry(ctx echo.Context) error {
	cmd := commands.NewRefreshDashboardCommand()

	if err := s.refreshHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to refresh dashboard",
		})
	}

	return ctx.NoContent(http.StatusAccepted)
}
