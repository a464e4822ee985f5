package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrRequestQuotesCommandIsNotConstructed = errors.New(
		"RequestQuotesCommand must be created via NewRequestQuotesCommand constructor",
	)
	ErrDistanceIsInvalid = errors.New("distance must not be negative")
)

// RequestQuotesCommand represents a request to collect shipping quotes for a
// pending order from every vendor in the rate catalog.
//
// The shipping distance is supplied by the caller; resolving warehouse and
// recipient coordinates to a distance happens upstream.
type RequestQuotesCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	distanceKm float64

	guard guard.ConstructorGuard
}

// NewRequestQuotesCommand creates a command to request quotes for an order.
func NewRequestQuotesCommand(orderID kernel.UUID, distanceKm float64) (RequestQuotesCommand, error) {
	cmd := RequestQuotesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDistanceKm(distanceKm),
	); err != nil {
		return RequestQuotesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestQuotesCommand) Validate() error {
	return c.guard.Validate(ErrRequestQuotesCommandIsNotConstructed)
}

// OrderID returns the order to quote.
func (c RequestQuotesCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DistanceKm returns the shipping distance in kilometres.
func (c RequestQuotesCommand) DistanceKm() float64 {
	return c.distanceKm
}

func (c *RequestQuotesCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestQuotesCommand) setDistanceKm(distanceKm float64) error {
	if distanceKm < 0 {
		return ErrDistanceIsInvalid
	}

	c.distanceKm = distanceKm
	return nil
}
