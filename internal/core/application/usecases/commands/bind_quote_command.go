package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrBindQuoteCommandIsNotConstructed = errors.New(
	"BindQuoteCommand must be created via NewBindQuoteCommand constructor",
)

// BindQuoteCommand represents a request to permanently associate one quote
// with its order, fixing the charged price.
type BindQuoteCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	quoteID kernel.UUID

	guard guard.ConstructorGuard
}

// NewBindQuoteCommand creates a command to bind a quote to an order.
func NewBindQuoteCommand(orderID, quoteID kernel.UUID) (BindQuoteCommand, error) {
	cmd := BindQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), quoteID.Validate()); err != nil {
		return BindQuoteCommand{}, err
	}

	cmd.orderID = orderID
	cmd.quoteID = quoteID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BindQuoteCommand) Validate() error {
	return c.guard.Validate(ErrBindQuoteCommandIsNotConstructed)
}

// OrderID returns the order to bind to.
func (c BindQuoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// QuoteID returns the quote to bind.
func (c BindQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}
