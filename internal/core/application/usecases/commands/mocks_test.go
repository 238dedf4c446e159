package commands_test

import (
	"context"
	"time"

	"consolidation/internal/core/application/usecases/commands"
	"consolidation/internal/core/domain/model/consolidation"
	"consolidation/internal/core/domain/model/delivery"
	"consolidation/internal/core/domain/model/kernel"
	"consolidation/internal/core/domain/model/notification"
	"consolidation/internal/core/domain/model/receipt"
	"consolidation/internal/core/domain/model/request"
	"consolidation/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockConsolidationRepository struct{ mock.Mock }

func (m *MockConsolidationRepository) Add(ctx context.Context, a *consolidation.Consolidation) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockConsolidationRepository) Update(ctx context.Context, a *consolidation.Consolidation) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockConsolidationRepository) Get(ctx context.Context, id kernel.UUID) (*consolidation.Consolidation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*consolidation.Consolidation), args.Error(1)
}
func (m *MockConsolidationRepository) GetByReferenceCode(ctx context.Context, referenceCode string) (*consolidation.Consolidation, error) {
	args := m.Called(ctx, referenceCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*consolidation.Consolidation), args.Error(1)
}
func (m *MockConsolidationRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*consolidation.Consolidation, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*consolidation.Consolidation), args.Error(1)
}
func (m *MockConsolidationRepository) ExistsByReferenceCode(ctx context.Context, referenceCode string) (bool, error) {
	args := m.Called(ctx, referenceCode)
	return args.Bool(0), args.Error(1)
}
func (m *MockConsolidationRepository) ExistsByTrackingNumber(ctx context.Context, trackingNumber string) (bool, error) {
	args := m.Called(ctx, trackingNumber)
	return args.Bool(0), args.Error(1)
}
func (m *MockConsolidationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, a *delivery.Delivery) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Update(ctx context.Context, a *delivery.Delivery) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}
func (m *MockDeliveryRepository) GetLatestByConsolidation(ctx context.Context, consolidationID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, consolidationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type MockReceiptRepository struct{ mock.Mock }

func (m *MockReceiptRepository) Add(ctx context.Context, a *receipt.Receipt) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockReceiptRepository) Update(ctx context.Context, a *receipt.Receipt) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockReceiptRepository) Get(ctx context.Context, id kernel.UUID) (*receipt.Receipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receipt.Receipt), args.Error(1)
}
func (m *MockReceiptRepository) GetByNumber(ctx context.Context, receiptNumber string) (*receipt.Receipt, error) {
	args := m.Called(ctx, receiptNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*receipt.Receipt), args.Error(1)
}
func (m *MockReceiptRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Add(ctx context.Context, a *request.Request) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockRequestRepository) Update(ctx context.Context, a *request.Request) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}
func (m *MockRequestRepository) GetByNumber(ctx context.Context, requestNumber string) (*request.Request, error) {
	args := m.Called(ctx, requestNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}
func (m *MockRequestRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, notifications []notification.Notification) error {
	args := m.Called(ctx, notifications)
	return args.Error(0)
}
func (m *MockOutboxRepository) GetPending(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}
func (m *MockOutboxRepository) MarkSent(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockOutboxRepository) MarkFailed(ctx context.Context, id kernel.UUID, relayErr string, maxAttempts int) error {
	args := m.Called(ctx, id, relayErr, maxAttempts)
	return args.Error(0)
}

type MockSequenceRepository struct{ mock.Mock }

func (m *MockSequenceRepository) Next(ctx context.Context, prefix kernel.NumberPrefix, day time.Time) (int64, error) {
	args := m.Called(ctx, prefix, day)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotificationClient struct{ mock.Mock }

func (m *MockNotificationClient) Send(ctx context.Context, n notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// mockUoW implements the transaction lifecycle shared by every unit of work
// mock below.
type mockUoW struct{ mock.Mock }

func (m *mockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *mockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockConsolidationUoW struct{ mockUoW }

func (m *MockConsolidationUoW) ConsolidationRepository() ports.ConsolidationRepository {
	args := m.Called()
	return args.Get(0).(ports.ConsolidationRepository)
}
func (m *MockConsolidationUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}
func (m *MockConsolidationUoW) SequenceRepository() ports.SequenceRepository {
	args := m.Called()
	return args.Get(0).(ports.SequenceRepository)
}

type MockConsolidationUoWFactory struct{ mock.Mock }

func (m *MockConsolidationUoWFactory) Create() commands.ConsolidationUoW {
	args := m.Called()
	return args.Get(0).(commands.ConsolidationUoW)
}

type MockDeliveryUoW struct{ mockUoW }

func (m *MockDeliveryUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}
func (m *MockDeliveryUoW) ConsolidationRepository() ports.ConsolidationRepository {
	args := m.Called()
	return args.Get(0).(ports.ConsolidationRepository)
}
func (m *MockDeliveryUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockReceiptUoW struct{ mockUoW }

func (m *MockReceiptUoW) ReceiptRepository() ports.ReceiptRepository {
	args := m.Called()
	return args.Get(0).(ports.ReceiptRepository)
}
func (m *MockReceiptUoW) ConsolidationRepository() ports.ConsolidationRepository {
	args := m.Called()
	return args.Get(0).(ports.ConsolidationRepository)
}
func (m *MockReceiptUoW) SequenceRepository() ports.SequenceRepository {
	args := m.Called()
	return args.Get(0).(ports.SequenceRepository)
}

type MockReceiptUoWFactory struct{ mock.Mock }

func (m *MockReceiptUoWFactory) Create() commands.ReceiptUoW {
	args := m.Called()
	return args.Get(0).(commands.ReceiptUoW)
}

type MockRequestUoW struct{ mockUoW }

func (m *MockRequestUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}
func (m *MockRequestUoW) SequenceRepository() ports.SequenceRepository {
	args := m.Called()
	return args.Get(0).(ports.SequenceRepository)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}

type MockOutboxUoW struct{ mockUoW }

func (m *MockOutboxUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}
