package commands

import (
	"errors"

	"shipping/internal/pkg/guard"
)

var ErrExpireQuotesCommandIsNotConstructed = errors.New(
	"ExpireQuotesCommand must be created via NewExpireQuotesCommand constructor",
)

// ExpireQuotesCommand represents one run of the quote expiry sweep.
type ExpireQuotesCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireQuotesCommand creates a command for one sweep run.
func NewExpireQuotesCommand() (ExpireQuotesCommand, error) {
	return ExpireQuotesCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireQuotesCommand) Validate() error {
	return c.guard.Validate(ErrExpireQuotesCommandIsNotConstructed)
}
