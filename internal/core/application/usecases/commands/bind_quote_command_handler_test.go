package commands_test

import (
	"testing"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/order"
	"shipping/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBindQuoteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pendingOrder := newPendingOrder(t)
	boundQuote := newValidQuote(t, pendingOrder.ID())
	cmd, err := commands.NewBindQuoteCommand(pendingOrder.ID(), boundQuote.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	quoteRepo := new(MockQuoteRepository)
	uow := new(MockUoW)
	cache := new(MockQuoteCache)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, pendingOrder.ID()).Return(pendingOrder, nil).Once(),
		uow.On("QuoteRepository").Return(quoteRepo).Once(),
		quoteRepo.On("Get", mock.Anything, boundQuote.ID()).Return(boundQuote, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", mock.Anything, pendingOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		cache.On("Invalidate", mock.Anything, pendingOrder.ID()).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBindQuoteCommandHandler(keylock.NewKeyLock(), factory, cache, discardLogger())
	price, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.InDelta(t, 29.0, price, 1e-9)
	require.NotNil(t, pendingOrder.BoundQuoteID())
	assert.True(t, pendingOrder.BoundQuoteID().IsEqual(boundQuote.ID()))
	uow.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestBindQuoteCommandHandler_Handle_SecondBindFails(t *testing.T) {
	ctx := t.Context()
	boundOrder := newPendingOrder(t)
	firstQuote := newValidQuote(t, boundOrder.ID())
	require.NoError(t, boundOrder.BindQuote(firstQuote, firstQuote.IssuedAt()))

	secondQuote := newValidQuote(t, boundOrder.ID())
	cmd, err := commands.NewBindQuoteCommand(boundOrder.ID(), secondQuote.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	quoteRepo := new(MockQuoteRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, boundOrder.ID()).Return(boundOrder, nil).Once()
	uow.On("QuoteRepository").Return(quoteRepo).Once()
	quoteRepo.On("Get", mock.Anything, secondQuote.ID()).Return(secondQuote, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	cache := new(MockQuoteCache)
	h := commands.NewBindQuoteCommandHandler(keylock.NewKeyLock(), factory, cache, discardLogger())

	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrAlreadyBound)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestBindQuoteCommandHandler_Handle_ForeignQuote(t *testing.T) {
	ctx := t.Context()
	pendingOrder := newPendingOrder(t)
	foreignQuote := newValidQuote(t, kernel.NewUUID())
	cmd, err := commands.NewBindQuoteCommand(pendingOrder.ID(), foreignQuote.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	quoteRepo := new(MockQuoteRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, pendingOrder.ID()).Return(pendingOrder, nil).Once()
	uow.On("QuoteRepository").Return(quoteRepo).Once()
	quoteRepo.On("Get", mock.Anything, foreignQuote.ID()).Return(foreignQuote, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderQuoteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewBindQuoteCommandHandler(
		keylock.NewKeyLock(), factory, new(MockQuoteCache), discardLogger())

	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrQuoteInvalid)
}

func TestNewBindQuoteCommand_Validation(t *testing.T) {
	var nilID kernel.UUID

	_, err := commands.NewBindQuoteCommand(nilID, kernel.NewUUID())
	require.Error(t, err)

	_, err = commands.NewBindQuoteCommand(kernel.NewUUID(), nilID)
	require.Error(t, err)

	cmd := commands.BindQuoteCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrBindQuoteCommandIsNotConstructed)
}
