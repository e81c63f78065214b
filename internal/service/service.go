package service

import (
	"context"
	"time"

	"pgstay-backend/internal/domain"
)

type CreateBookingInput struct {
	BedID                int32
	CheckInDate          time.Time
	ExpectedCheckOutDate *time.Time
	SpecialRequests      string
}

type BookingService interface {
	Create(ctx context.Context, tenantID, userID int32, in CreateBookingInput) (*domain.Booking, error)
	// Approve allocates the bed and creates the residency in one atomic
	// unit. depositCents == 0 means derive the deposit from the bed's
	// monthly rent.
	Approve(ctx context.Context, tenantID, bookingID int32, depositCents int64) error
	Reject(ctx context.Context, tenantID, bookingID int32) error
	ListMine(ctx context.Context, tenantID, userID int32) ([]domain.BookingDetail, error)
	ListPending(ctx context.Context, tenantID int32) ([]domain.BookingDetail, error)
}

type ConfirmCheckoutInput struct {
	ActualMoveOutDate    time.Time
	DamageDeductionCents int64
	OtherChargesCents    int64
	Notes                string
}

type CheckoutService interface {
	// Preview is advisory: no locks, no mutation, figures may change
	// before Confirm runs.
	Preview(ctx context.Context, tenantID, residentID int32) (*domain.CheckoutPreview, error)
	// Confirm settles the residency: recomputes pending rent inside the
	// transaction, finalizes the resident, frees the bed, completes the
	// booking and appends the settlement record. Returns the final amount,
	// negative when the resident owes money.
	Confirm(ctx context.Context, tenantID, residentID int32, in ConfirmCheckoutInput) (int64, error)
	MySettlement(ctx context.Context, tenantID, userID int32) (*domain.Resident, error)
}

type ResidentService interface {
	ListActive(ctx context.Context, tenantID int32) ([]domain.ResidentDetail, error)
}

type RoomService interface {
	Create(ctx context.Context, room *domain.Room) error
	List(ctx context.Context, tenantID int32) ([]domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
}

type BedService interface {
	Create(ctx context.Context, bed *domain.Bed) error
	ListByRoom(ctx context.Context, tenantID, roomID int32) ([]domain.Bed, error)
	Update(ctx context.Context, tenantID, bedID int32, bedNumber, description string, rentCents int64) error
}

type CreatePaymentInput struct {
	BookingID        *int32
	PaymentFor       domain.PaymentFor
	AmountCents      int64
	UpiTransactionID string
	Notes            string
}

type PaymentService interface {
	Create(ctx context.Context, tenantID, userID int32, in CreatePaymentInput) (*domain.Payment, error)
	ListPending(ctx context.Context, tenantID int32) ([]domain.Payment, error)
	Verify(ctx context.Context, tenantID, paymentID, verifierID int32) error
	Reject(ctx context.Context, tenantID, paymentID, verifierID int32, reason string) error
}

type NotificationService interface {
	List(ctx context.Context, tenantID, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, tenantID, userID, notificationID int32) error
}

// EmailService is the outbound edge of the notification collaborator.
// Sends are fire-and-forget: callers ignore the error after their storage
// transaction has committed.
type EmailService interface {
	SendBookingApproved(ctx context.Context, email, name, roomNumber, bedNumber string) error
	SendBookingRejected(ctx context.Context, email, name string) error
	SendSettlementNotice(ctx context.Context, email, name string, finalAmountCents int64) error
	SendRentReminder(ctx context.Context, email, name string, pendingCents int64) error
}
