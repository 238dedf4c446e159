package commands_test

import (
	"testing"

	"consolidation/internal/core/application/usecases/commands"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/receipt"
	"consolidation/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateReceiptCommand(t *testing.T) {
	t.Run("should fail without a consolidation", func(t *testing.T) {
		var consolidationID kernel.UUID
		_, err := commands.NewCreateReceiptCommand(
			kernel.NewUUID(), "", consolidationID, 3, nil, 100, 20, 10, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail without parcels", func(t *testing.T) {
		_, err := commands.NewCreateReceiptCommand(
			kernel.NewUUID(), "", kernel.NewUUID(), 0, nil, 100, 20, 10, nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCreateReceiptCommandHandler_Handle_GeneratesNumber(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingConsolidation(t)
	cmd, err := commands.NewCreateReceiptCommand(
		kernel.NewUUID(), "", aggregate.ID(), 3, nil, 100, 20, 10, nil)
	require.NoError(t, err)

	consolidationRepo := new(MockConsolidationRepository)
	receiptRepo := new(MockReceiptRepository)
	sequenceRepo := new(MockSequenceRepository)
	uow := new(MockReceiptUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ConsolidationRepository").Return(consolidationRepo).Once(),
		consolidationRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("SequenceRepository").Return(sequenceRepo).Once(),
		sequenceRepo.On("Next", mock.Anything, kernel.PrefixReceipt, mock.Anything).Return(int64(7), nil).Once(),
		uow.On("ReceiptRepository").Return(receiptRepo).Once(),
		receiptRepo.On("Add", mock.Anything, mock.AnythingOfType("*receipt.Receipt")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReceiptUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReceiptCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	created := receiptRepo.Calls[0].Arguments.Get(1).(*receipt.Receipt)
	require.Regexp(t, `^RCP-\d{8}-0007$`, created.ReceiptNumber())
	require.InDelta(t, 110, created.Charges().Total(), 1e-9)

	consolidationRepo.AssertExpectations(t)
	receiptRepo.AssertExpectations(t)
	sequenceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateReceiptCommandHandler_Handle_KeepsSuppliedNumber(t *testing.T) {
	ctx := t.Context()
	aggregate := pendingConsolidation(t)
	cmd, err := commands.NewCreateReceiptCommand(
		kernel.NewUUID(), "RCP-20240302-0042", aggregate.ID(), 3, nil, 50, 5, 0, nil)
	require.NoError(t, err)

	consolidationRepo := new(MockConsolidationRepository)
	receiptRepo := new(MockReceiptRepository)
	uow := new(MockReceiptUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ConsolidationRepository").Return(consolidationRepo).Once(),
		consolidationRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("ReceiptRepository").Return(receiptRepo).Once(),
		receiptRepo.On("Add", mock.Anything, mock.AnythingOfType("*receipt.Receipt")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReceiptUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReceiptCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	created := receiptRepo.Calls[0].Arguments.Get(1).(*receipt.Receipt)
	require.Equal(t, "RCP-20240302-0042", created.ReceiptNumber())
	uow.AssertExpectations(t)
}

func TestCreateReceiptCommandHandler_Handle_UnknownConsolidation(t *testing.T) {
	ctx := t.Context()
	consolidationID := kernel.NewUUID()
	cmd, err := commands.NewCreateReceiptCommand(
		kernel.NewUUID(), "", consolidationID, 3, nil, 100, 20, 10, nil)
	require.NoError(t, err)

	consolidationRepo := new(MockConsolidationRepository)
	uow := new(MockReceiptUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ConsolidationRepository").Return(consolidationRepo).Once(),
		consolidationRepo.On("Get", mock.Anything, consolidationID).
			Return(nil, errs.NewObjectNotFoundError("consolidationId", consolidationID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReceiptUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateReceiptCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
