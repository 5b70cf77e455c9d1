package commands_test

import (
	"context"
	"errors"
	"testing"

	"khasdash/internal/core/application/usecases/commands"
	"khasdash/internal/core/domain/model/kernel"
	"khasdash/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDashboard is a testify mock of the Dashboard port.
type MockDashboard struct {
	mock.Mock
}

func (m *MockDashboard) SelectWindow(ctx context.Context, window kernel.TimeWindow) error {
	args := m.Called(ctx, window)
	return args.Error(0)
}

func (m *MockDashboard) SelectBucket(bucket order.Bucket) error {
	args := m.Called(bucket)
	return args.Error(0)
}

func (m *MockDashboard) Retry(ctx context.Context) {
	m.Called(ctx)
}

func TestSelectWindowCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewSelectWindowCommand("Weekly")
	require.NoError(t, err)

	mockDashboard := new(MockDashboard)
	mockDashboard.On("SelectWindow", ctx, kernel.WindowWeekly).Return(nil)

	handler := commands.NewSelectWindowCommandHandler(mockDashboard)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockDashboard.AssertExpectations(t)
}

func TestSelectWindowCommandHandler_Handle_DashboardError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewSelectWindowCommand("Daily")
	require.NoError(t, err)

	dashboardErr := errors.New("window is invalid")
	mockDashboard := new(MockDashboard)
	mockDashboard.On("SelectWindow", ctx, kernel.WindowDaily).Return(dashboardErr)

	handler := commands.NewSelectWindowCommandHandler(mockDashboard)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, dashboardErr)
	mockDashboard.AssertExpectations(t)
}

func TestSelectWindowCommandHandler_Handle_UnconstructedCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	mockDashboard := new(MockDashboard)
	handler := commands.NewSelectWindowCommandHandler(mockDashboard)

	// Act
	err := handler.Handle(ctx, commands.SelectWindowCommand{})

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSelectWindowCommandIsNotConstructed)
	mockDashboard.AssertNotCalled(t, "SelectWindow", mock.Anything, mock.Anything)
}
