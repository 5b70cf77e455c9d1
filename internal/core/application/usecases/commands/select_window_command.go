package commands

import (
	"errors"

	"khasdash/internal/core/domain/model/kernel"
	"khasdash/internal/pkg/guard"
)

var (
	ErrSelectWindowCommandIsNotConstructed = errors.New(
		"SelectWindowCommand must be created via NewSelectWindowCommand constructor",
	)
)

// SelectWindowCommand represents a request to switch the dashboard to a
// different time window. The window name must be one of the display names
// known to kernel.TimeWindowFromName ("Daily", "3 Days", "Weekly", "Monthly").
//
// Example:
//
//	cmd, err := NewSelectWindowCommand("Weekly")
//	if err != nil {
//	    return fmt.Errorf("invalid window: %w", err)
//	}
//
//	handler := NewSelectWindowCommandHandler(controller)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to switch window: %w", err)
//	}
type SelectWindowCommand struct { //nolint:recvcheck //using for validation
	window kernel.TimeWindow

	guard guard.ConstructorGuard
}

// NewSelectWindowCommand creates a command to switch the active time window.
// Resolves the display name to a kernel.TimeWindow and rejects unknown names.
func NewSelectWindowCommand(windowName string) (SelectWindowCommand, error) {
	command := SelectWindowCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setWindow(windowName); err != nil {
		return SelectWindowCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSelectWindowCommandIsNotConstructed if validation fails.
func (c SelectWindowCommand) Validate() error {
	return c.guard.Validate(ErrSelectWindowCommandIsNotConstructed)
}

// Window returns the resolved time window from the command.
func (c SelectWindowCommand) Window() kernel.TimeWindow {
	return c.window
}

func (c *SelectWindowCommand) setWindow(windowName string) error {
	window, err := kernel.TimeWindowFromName(windowName)
	if err != nil {
		return err
	}

	c.window = window
	return nil
}
