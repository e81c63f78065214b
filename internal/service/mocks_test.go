package service_test

import (
	"context"
	"database/sql"
	"time"

	"pgstay-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// FakeTxRunner runs the transactional closure directly. Repositories are
// mocked, so no real *sql.Tx is needed.
type FakeTxRunner struct{}

func (f *FakeTxRunner) Transact(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return fn(nil)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, tenantID, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) GetForUpdate(ctx context.Context, tx *sql.Tx, tenantID, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, tx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, tx *sql.Tx, tenantID, id int32, status domain.BookingStatus) error {
	args := m.Called(ctx, tx, tenantID, id, status)
	return args.Error(0)
}
func (m *MockBookingRepo) RejectPending(ctx context.Context, tenantID, id int32) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
func (m *MockBookingRepo) CompleteApproved(ctx context.Context, tx *sql.Tx, tenantID, id int32) error {
	args := m.Called(ctx, tx, tenantID, id)
	return args.Error(0)
}
func (m *MockBookingRepo) HasActiveForUser(ctx context.Context, tenantID, userID int32) (bool, error) {
	args := m.Called(ctx, tenantID, userID)
	return args.Bool(0), args.Error(1)
}
func (m *MockBookingRepo) ListByUser(ctx context.Context, tenantID, userID int32) ([]domain.BookingDetail, error) {
	args := m.Called(ctx, tenantID, userID)
	return args.Get(0).([]domain.BookingDetail), args.Error(1)
}
func (m *MockBookingRepo) ListPending(ctx context.Context, tenantID int32) ([]domain.BookingDetail, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.BookingDetail), args.Error(1)
}
func (m *MockBookingRepo) ExpirePendingBefore(ctx context.Context, tenantID int32, cutoff time.Time) ([]int32, error) {
	args := m.Called(ctx, tenantID, cutoff)
	return args.Get(0).([]int32), args.Error(1)
}

// MockBedRepo
type MockBedRepo struct {
	mock.Mock
}

func (m *MockBedRepo) Create(ctx context.Context, bed *domain.Bed) error {
	args := m.Called(ctx, bed)
	return args.Error(0)
}
func (m *MockBedRepo) GetByID(ctx context.Context, tenantID, id int32) (*domain.Bed, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bed), args.Error(1)
}
func (m *MockBedRepo) ListByRoom(ctx context.Context, tenantID, roomID int32) ([]domain.Bed, error) {
	args := m.Called(ctx, tenantID, roomID)
	return args.Get(0).([]domain.Bed), args.Error(1)
}
func (m *MockBedRepo) Update(ctx context.Context, bed *domain.Bed) error {
	args := m.Called(ctx, bed)
	return args.Error(0)
}
func (m *MockBedRepo) ClaimForOccupancy(ctx context.Context, tx *sql.Tx, tenantID, bedID int32) (*domain.Bed, error) {
	args := m.Called(ctx, tx, tenantID, bedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bed), args.Error(1)
}
func (m *MockBedRepo) Release(ctx context.Context, tx *sql.Tx, tenantID, bedID int32) error {
	args := m.Called(ctx, tx, tenantID, bedID)
	return args.Error(0)
}

// MockRoomRepo
type MockRoomRepo struct {
	mock.Mock
}

func (m *MockRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomRepo) GetByID(ctx context.Context, tenantID, id int32) (*domain.Room, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomRepo) List(ctx context.Context, tenantID int32) ([]domain.Room, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Room), args.Error(1)
}
func (m *MockRoomRepo) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

// MockResidentRepo
type MockResidentRepo struct {
	mock.Mock
}

func (m *MockResidentRepo) Create(ctx context.Context, tx *sql.Tx, res *domain.Resident) error {
	args := m.Called(ctx, tx, res)
	return args.Error(0)
}
func (m *MockResidentRepo) GetActive(ctx context.Context, tenantID, id int32) (*domain.Resident, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resident), args.Error(1)
}
func (m *MockResidentRepo) GetActiveForUpdate(ctx context.Context, tx *sql.Tx, tenantID, id int32) (*domain.Resident, error) {
	args := m.Called(ctx, tx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resident), args.Error(1)
}
func (m *MockResidentRepo) FinalizeCheckout(ctx context.Context, tx *sql.Tx, tenantID, id int32, moveOut time.Time, refundableCents int64) error {
	args := m.Called(ctx, tx, tenantID, id, moveOut, refundableCents)
	return args.Error(0)
}
func (m *MockResidentRepo) ListActive(ctx context.Context, tenantID int32) ([]domain.ResidentDetail, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.ResidentDetail), args.Error(1)
}
func (m *MockResidentRepo) LatestSettlementForUser(ctx context.Context, tenantID, userID int32) (*domain.Resident, error) {
	args := m.Called(ctx, tenantID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resident), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, tenantID, id int32) (*domain.User, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListPending(ctx context.Context, tenantID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) Verify(ctx context.Context, tenantID, id, verifierID int32) error {
	args := m.Called(ctx, tenantID, id, verifierID)
	return args.Error(0)
}
func (m *MockPaymentRepo) Reject(ctx context.Context, tenantID, id, verifierID int32, reason string) error {
	args := m.Called(ctx, tenantID, id, verifierID, reason)
	return args.Error(0)
}
func (m *MockPaymentRepo) SumPendingRent(ctx context.Context, tenantID, userID int32) (int64, error) {
	args := m.Called(ctx, tenantID, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockPaymentRepo) SumPendingRentTx(ctx context.Context, tx *sql.Tx, tenantID, userID int32) (int64, error) {
	args := m.Called(ctx, tx, tenantID, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockPaymentRepo) UsersWithPendingRent(ctx context.Context, tenantID int32) (map[int32]int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(map[int32]int64), args.Error(1)
}

// MockSettlementRepo
type MockSettlementRepo struct {
	mock.Mock
}

func (m *MockSettlementRepo) Create(ctx context.Context, tx *sql.Tx, settlement *domain.Settlement) error {
	args := m.Called(ctx, tx, settlement)
	return args.Error(0)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, tenantID, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, tenantID, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, tenantID, id, userID int32) error {
	args := m.Called(ctx, tenantID, id, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingApproved(ctx context.Context, email, name, roomNumber, bedNumber string) error {
	args := m.Called(ctx, email, name, roomNumber, bedNumber)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingRejected(ctx context.Context, email, name string) error {
	args := m.Called(ctx, email, name)
	return args.Error(0)
}
func (m *MockEmailService) SendSettlementNotice(ctx context.Context, email, name string, finalAmountCents int64) error {
	args := m.Called(ctx, email, name, finalAmountCents)
	return args.Error(0)
}
func (m *MockEmailService) SendRentReminder(ctx context.Context, email, name string, pendingCents int64) error {
	args := m.Called(ctx, email, name, pendingCents)
	return args.Error(0)
}
