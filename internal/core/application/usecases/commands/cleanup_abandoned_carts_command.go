package commands

import (
	"errors"
	"time"

	"foodsewa/internal/pkg/errs"
	"foodsewa/internal/pkg/guard"
)

var (
	ErrCleanupAbandonedCartsCommandIsNotConstructed = errors.New(
		"CleanupAbandonedCartsCommand must be created via NewCleanupAbandonedCartsCommand constructor",
	)
	ErrTTLIsInvalid = errs.NewValueIsInvalidError("ttl")
)

// CleanupAbandonedCartsCommand represents a request to clear carts that have
// not been touched within the given TTL. Issued by the cleanup job.
type CleanupAbandonedCartsCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewCleanupAbandonedCartsCommand creates a cleanup command with a positive TTL.
func NewCleanupAbandonedCartsCommand(ttl time.Duration) (CleanupAbandonedCartsCommand, error) {
	cmd := CleanupAbandonedCartsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTTL(ttl); err != nil {
		return CleanupAbandonedCartsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CleanupAbandonedCartsCommand) Validate() error {
	return c.guard.Validate(ErrCleanupAbandonedCartsCommandIsNotConstructed)
}

// TTL returns how long a cart may stay untouched before cleanup.
func (c CleanupAbandonedCartsCommand) TTL() time.Duration {
	return c.ttl
}

func (c *CleanupAbandonedCartsCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return ErrTTLIsInvalid
	}

	c.ttl = ttl
	return nil
}
