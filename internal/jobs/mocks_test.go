package jobs

import (
	"context"
	"database/sql"
	"time"

	"pgstay-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type mockTenantRepo struct {
	mock.Mock
}

func (m *mockTenantRepo) GetByID(ctx context.Context, id int32) (*domain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *mockTenantRepo) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *mockTenantRepo) ListActive(ctx context.Context) ([]domain.Tenant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *mockBookingRepo) GetByID(ctx context.Context, tenantID, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *mockBookingRepo) GetForUpdate(ctx context.Context, tx *sql.Tx, tenantID, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, tx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *mockBookingRepo) UpdateStatus(ctx context.Context, tx *sql.Tx, tenantID, id int32, status domain.BookingStatus) error {
	args := m.Called(ctx, tx, tenantID, id, status)
	return args.Error(0)
}
func (m *mockBookingRepo) RejectPending(ctx context.Context, tenantID, id int32) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
func (m *mockBookingRepo) CompleteApproved(ctx context.Context, tx *sql.Tx, tenantID, id int32) error {
	args := m.Called(ctx, tx, tenantID, id)
	return args.Error(0)
}
func (m *mockBookingRepo) HasActiveForUser(ctx context.Context, tenantID, userID int32) (bool, error) {
	args := m.Called(ctx, tenantID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *mockBookingRepo) ListByUser(ctx context.Context, tenantID, userID int32) ([]domain.BookingDetail, error) {
	args := m.Called(ctx, tenantID, userID)
	return args.Get(0).([]domain.BookingDetail), args.Error(1)
}
func (m *mockBookingRepo) ListPending(ctx context.Context, tenantID int32) ([]domain.BookingDetail, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.BookingDetail), args.Error(1)
}
func (m *mockBookingRepo) ExpirePendingBefore(ctx context.Context, tenantID int32, cutoff time.Time) ([]int32, error) {
	args := m.Called(ctx, tenantID, cutoff)
	return args.Get(0).([]int32), args.Error(1)
}

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *mockPaymentRepo) ListPending(ctx context.Context, tenantID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *mockPaymentRepo) Verify(ctx context.Context, tenantID, id, verifierID int32) error {
	args := m.Called(ctx, tenantID, id, verifierID)
	return args.Error(0)
}
func (m *mockPaymentRepo) Reject(ctx context.Context, tenantID, id, verifierID int32, reason string) error {
	args := m.Called(ctx, tenantID, id, verifierID, reason)
	return args.Error(0)
}
func (m *mockPaymentRepo) SumPendingRent(ctx context.Context, tenantID, userID int32) (int64, error) {
	args := m.Called(ctx, tenantID, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockPaymentRepo) SumPendingRentTx(ctx context.Context, tx *sql.Tx, tenantID, userID int32) (int64, error) {
	args := m.Called(ctx, tx, tenantID, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockPaymentRepo) UsersWithPendingRent(ctx context.Context, tenantID int32) (map[int32]int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(map[int32]int64), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, tenantID, id int32) (*domain.User, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockNotificationRepo struct {
	mock.Mock
}

func (m *mockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *mockNotificationRepo) List(ctx context.Context, tenantID, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, tenantID, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *mockNotificationRepo) MarkAsRead(ctx context.Context, tenantID, id, userID int32) error {
	args := m.Called(ctx, tenantID, id, userID)
	return args.Error(0)
}

type mockEmailService struct {
	mock.Mock
}

func (m *mockEmailService) SendBookingApproved(ctx context.Context, email, name, roomNumber, bedNumber string) error {
	args := m.Called(ctx, email, name, roomNumber, bedNumber)
	return args.Error(0)
}
func (m *mockEmailService) SendBookingRejected(ctx context.Context, email, name string) error {
	args := m.Called(ctx, email, name)
	return args.Error(0)
}
func (m *mockEmailService) SendSettlementNotice(ctx context.Context, email, name string, finalAmountCents int64) error {
	args := m.Called(ctx, email, name, finalAmountCents)
	return args.Error(0)
}
func (m *mockEmailService) SendRentReminder(ctx context.Context, email, name string, pendingCents int64) error {
	args := m.Called(ctx, email, name, pendingCents)
	return args.Error(0)
}
