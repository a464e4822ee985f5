package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrRecipientNameIsRequired = errors.New("recipient name is required")
	ErrWeightIsInvalid         = errors.New("total weight must be greater than 0")
)

// CreateOrderCommand represents a request to register a new shipment order.
// The order starts Pending with no bound quote.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	userID        kernel.UUID
	warehouseID   kernel.UUID
	recipientName string
	totalWeightKg float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new shipment order.
// Validates identifiers, the recipient name, and that the weight is positive.
func NewCreateOrderCommand(
	orderID, userID, warehouseID kernel.UUID,
	recipientName string,
	totalWeightKg float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIDs(orderID, userID, warehouseID),
		cmd.setRecipientName(recipientName),
		cmd.setTotalWeightKg(totalWeightKg),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the pre-authorized owner of the order.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// WarehouseID returns the dispatching warehouse reference.
func (c CreateOrderCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// RecipientName returns the shipment recipient's name.
func (c CreateOrderCommand) RecipientName() string {
	return c.recipientName
}

// TotalWeightKg returns the shipment weight in kilograms.
func (c CreateOrderCommand) TotalWeightKg() float64 {
	return c.totalWeightKg
}

func (c *CreateOrderCommand) setIDs(orderID, userID, warehouseID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), userID.Validate(), warehouseID.Validate()); err != nil {
		return err
	}

	c.orderID = orderID
	c.userID = userID
	c.warehouseID = warehouseID
	return nil
}

func (c *CreateOrderCommand) setRecipientName(recipientName string) error {
	if recipientName == "" {
		return ErrRecipientNameIsRequired
	}

	c.recipientName = recipientName
	return nil
}

func (c *CreateOrderCommand) setTotalWeightKg(totalWeightKg float64) error {
	if totalWeightKg <= 0 {
		return ErrWeightIsInvalid
	}

	c.totalWeightKg = totalWeightKg
	return nil
}
