package commands

import (
	"errors"
	"time"

	"foodsewa/internal/pkg/errs"
	"foodsewa/internal/pkg/guard"
)

var (
	ErrConfirmPendingOrdersCommandIsNotConstructed = errors.New(
		"ConfirmPendingOrdersCommand must be created via NewConfirmPendingOrdersCommand constructor",
	)
	ErrGracePeriodIsInvalid = errs.NewValueIsInvalidError("grace period")
)

// ConfirmPendingOrdersCommand represents a request to auto-confirm orders
// that stayed pending past the cancellation grace period. Issued by the
// auto-confirm job.
type ConfirmPendingOrdersCommand struct { //nolint:recvcheck //using for validation
	gracePeriod time.Duration

	guard guard.ConstructorGuard
}

// NewConfirmPendingOrdersCommand creates an auto-confirm command with a
// positive grace period.
func NewConfirmPendingOrdersCommand(gracePeriod time.Duration) (ConfirmPendingOrdersCommand, error) {
	cmd := ConfirmPendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setGracePeriod(gracePeriod); err != nil {
		return ConfirmPendingOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPendingOrdersCommandIsNotConstructed)
}

// GracePeriod returns how long an order stays pending and cancellable before
// auto-confirmation.
func (c ConfirmPendingOrdersCommand) GracePeriod() time.Duration {
	return c.gracePeriod
}

func (c *ConfirmPendingOrdersCommand) setGracePeriod(gracePeriod time.Duration) error {
	if gracePeriod <= 0 {
		return ErrGracePeriodIsInvalid
	}

	c.gracePeriod = gracePeriod
	return nil
}
