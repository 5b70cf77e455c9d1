package commands

import (
	"errors"

	"khasdash/internal/core/domain/model/order"
	"khasdash/internal/pkg/guard"
)

var (
	ErrSelectBucketCommandIsNotConstructed = errors.New(
		"SelectBucketCommand must be created via NewSelectBucketCommand constructor",
	)
)

// SelectBucketCommand represents a request to switch the dashboard to a
// different status bucket. The bucket ID must be one of the identifiers
// known to order.BucketFromID ("created", "preparing", "completed", "closed").
//
// Example:
//
//	cmd, err := NewSelectBucketCommand("preparing")
//	if err != nil {
//	    return fmt.Errorf("invalid bucket: %w", err)
//	}
//
//	handler := NewSelectBucketCommandHandler(controller)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to switch bucket: %w", err)
//	}
type SelectBucketCommand struct { //nolint:recvcheck //using for validation
	bucket order.Bucket

	guard guard.ConstructorGuard
}

// NewSelectBucketCommand creates a command to switch the active bucket.
// Resolves the bucket ID and rejects unknown values.
func NewSelectBucketCommand(bucketID string) (SelectBucketCommand, error) {
	command := SelectBucketCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setBucket(bucketID); err != nil {
		return SelectBucketCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSelectBucketCommandIsNotConstructed if validation fails.
func (c SelectBucketCommand) Validate() error {
	return c.guard.Validate(ErrSelectBucketCommandIsNotConstructed)
}

// Bucket returns the resolved bucket from the command.
func (c SelectBucketCommand) Bucket() order.Bucket {
	return c.bucket
}

func (c *SelectBucketCommand) setBucket(bucketID string) error {
	bucket, err := order.BucketFromID(bucketID)
	if err != nil {
		return err
	}

	c.bucket = bucket
	return nil
}
