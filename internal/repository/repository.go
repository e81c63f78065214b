package repository

import (
	"context"
	"database/sql"
	"time"

	"pgstay-backend/internal/domain"
)

// TxRunner runs fn inside one database transaction. The transaction is
// rolled back when fn returns an error or panics and committed otherwise,
// so row locks acquired inside fn are released on every exit path.
type TxRunner interface {
	Transact(ctx context.Context, fn func(tx *sql.Tx) error) error
}

type TenantRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	ListActive(ctx context.Context) ([]domain.Tenant, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, tenantID, id int32) (*domain.User, error)
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, tenantID, id int32) (*domain.Room, error)
	List(ctx context.Context, tenantID int32) ([]domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
}

type BedRepository interface {
	Create(ctx context.Context, bed *domain.Bed) error
	GetByID(ctx context.Context, tenantID, id int32) (*domain.Bed, error)
	ListByRoom(ctx context.Context, tenantID, roomID int32) ([]domain.Bed, error)
	Update(ctx context.Context, bed *domain.Bed) error

	// ClaimForOccupancy takes an exclusive row lock on the bed inside tx,
	// verifies it is still available and flips it to occupied. Returns the
	// locked bed on success and domain.ErrConflict when the bed is missing
	// or already occupied.
	ClaimForOccupancy(ctx context.Context, tx *sql.Tx, tenantID, bedID int32) (*domain.Bed, error)

	// Release flips the bed back to available inside tx. Not idempotent:
	// domain.ErrNotFound when the bed does not exist. Callers invoke it
	// exactly once per checkout.
	Release(ctx context.Context, tx *sql.Tx, tenantID, bedID int32) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, tenantID, id int32) (*domain.Booking, error)
	// GetForUpdate locks the booking row inside tx for the remainder of
	// the transaction.
	GetForUpdate(ctx context.Context, tx *sql.Tx, tenantID, id int32) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, tx *sql.Tx, tenantID, id int32, status domain.BookingStatus) error
	// RejectPending flips PENDING->REJECTED without a lock; conditional on
	// the current status, domain.ErrNotFound when no pending row matches.
	RejectPending(ctx context.Context, tenantID, id int32) error
	// CompleteApproved flips APPROVED->COMPLETED inside tx;
	// domain.ErrInvalidState when the booking is not approved.
	CompleteApproved(ctx context.Context, tx *sql.Tx, tenantID, id int32) error
	HasActiveForUser(ctx context.Context, tenantID, userID int32) (bool, error)
	ListByUser(ctx context.Context, tenantID, userID int32) ([]domain.BookingDetail, error)
	ListPending(ctx context.Context, tenantID int32) ([]domain.BookingDetail, error)
	// ExpirePendingBefore rejects PENDING bookings created before cutoff
	// and returns the ids it touched.
	ExpirePendingBefore(ctx context.Context, tenantID int32, cutoff time.Time) ([]int32, error)
}

type ResidentRepository interface {
	// Create inserts an ACTIVE resident row inside the approval
	// transaction.
	Create(ctx context.Context, tx *sql.Tx, resident *domain.Resident) error
	GetActive(ctx context.Context, tenantID, id int32) (*domain.Resident, error)
	// GetActiveForUpdate locks the ACTIVE resident row inside tx;
	// domain.ErrNotFound when no active resident matches.
	GetActiveForUpdate(ctx context.Context, tx *sql.Tx, tenantID, id int32) (*domain.Resident, error)
	// FinalizeCheckout flips ACTIVE->CHECKED_OUT inside tx, setting the
	// move-out date, refundable amount and settlement timestamp.
	// domain.ErrInvalidState when the resident is not ACTIVE.
	FinalizeCheckout(ctx context.Context, tx *sql.Tx, tenantID, id int32, moveOut time.Time, refundableCents int64) error
	ListActive(ctx context.Context, tenantID int32) ([]domain.ResidentDetail, error)
	// LatestSettlementForUser returns the most recent checked-out record
	// for the user, domain.ErrNotFound when there is none.
	LatestSettlementForUser(ctx context.Context, tenantID, userID int32) (*domain.Resident, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListPending(ctx context.Context, tenantID int32) ([]domain.Payment, error)
	// Verify and Reject are conditional on PENDING status;
	// domain.ErrNotFound when the payment is missing or already processed.
	Verify(ctx context.Context, tenantID, id, verifierID int32) error
	Reject(ctx context.Context, tenantID, id, verifierID int32, reason string) error
	SumPendingRent(ctx context.Context, tenantID, userID int32) (int64, error)
	// SumPendingRentTx recomputes the pending rent inside the settlement
	// transaction so a payment verified after preview is reflected.
	SumPendingRentTx(ctx context.Context, tx *sql.Tx, tenantID, userID int32) (int64, error)
	// UsersWithPendingRent returns per-user pending rent totals for
	// reminder jobs.
	UsersWithPendingRent(ctx context.Context, tenantID int32) (map[int32]int64, error)
}

type SettlementRepository interface {
	// Create appends the audit record inside the settlement transaction.
	Create(ctx context.Context, tx *sql.Tx, settlement *domain.Settlement) error
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, tenantID, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, tenantID, id, userID int32) error
}
