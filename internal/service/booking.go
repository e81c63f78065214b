package service

import (
	"context"
	"database/sql"
	"fmt"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/logger"
	"pgstay-backend/internal/repository"
)

type bookingService struct {
	txRunner     repository.TxRunner
	bookingRepo  repository.BookingRepository
	bedRepo      repository.BedRepository
	roomRepo     repository.RoomRepository
	residentRepo repository.ResidentRepository
	userRepo     repository.UserRepository
	noteRepo     repository.NotificationRepository
	emailSvc     EmailService
}

func NewBookingService(
	txRunner repository.TxRunner,
	bookingRepo repository.BookingRepository,
	bedRepo repository.BedRepository,
	roomRepo repository.RoomRepository,
	residentRepo repository.ResidentRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		txRunner:     txRunner,
		bookingRepo:  bookingRepo,
		bedRepo:      bedRepo,
		roomRepo:     roomRepo,
		residentRepo: residentRepo,
		userRepo:     userRepo,
		noteRepo:     noteRepo,
		emailSvc:     emailSvc,
	}
}

// Create inserts a PENDING booking. The bed read here is optimistic: the
// authoritative allocation check happens under a row lock at approval
// time, so a booking may legitimately be created against a bed that goes
// away before a staff member approves it.
func (s *bookingService) Create(ctx context.Context, tenantID, userID int32, in CreateBookingInput) (*domain.Booking, error) {
	if in.BedID == 0 || in.CheckInDate.IsZero() {
		return nil, fmt.Errorf("%w: bed id and check-in date are required", domain.ErrValidation)
	}

	hasActive, err := s.bookingRepo.HasActiveForUser(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	if hasActive {
		return nil, fmt.Errorf("%w: user %d already has an active booking", domain.ErrConflict, userID)
	}

	bed, err := s.bedRepo.GetByID(ctx, tenantID, in.BedID)
	if err != nil {
		return nil, err
	}
	if !bed.IsAvailable {
		return nil, fmt.Errorf("%w: bed %d is not available", domain.ErrConflict, in.BedID)
	}

	booking := &domain.Booking{
		TenantID:             tenantID,
		UserID:               userID,
		BedID:                in.BedID,
		CheckInDate:          in.CheckInDate,
		ExpectedCheckOutDate: in.ExpectedCheckOutDate,
		Status:               domain.BookingStatusPending,
		SpecialRequests:      in.SpecialRequests,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Approve is a single atomic unit: lock the booking, lock and claim the
// bed, flip the booking to APPROVED and insert the ACTIVE resident. Any
// failure rolls everything back, leaving the booking PENDING and the bed
// untouched so a retried approval of another booking can still win.
func (s *bookingService) Approve(ctx context.Context, tenantID, bookingID int32, depositCents int64) error {
	var booking *domain.Booking
	var bed *domain.Bed

	err := s.txRunner.Transact(ctx, func(tx *sql.Tx) error {
		var err error
		booking, err = s.bookingRepo.GetForUpdate(ctx, tx, tenantID, bookingID)
		if err != nil {
			return err
		}
		if booking.Status != domain.BookingStatusPending {
			return fmt.Errorf("%w: booking %d is not pending", domain.ErrInvalidState, bookingID)
		}

		bed, err = s.bedRepo.ClaimForOccupancy(ctx, tx, tenantID, booking.BedID)
		if err != nil {
			return err
		}

		if err := s.bookingRepo.UpdateStatus(ctx, tx, tenantID, bookingID, domain.BookingStatusApproved); err != nil {
			return err
		}

		deposit := depositCents
		if deposit == 0 {
			deposit = bed.RentPerMonthCents
		}
		resident := &domain.Resident{
			TenantID:             tenantID,
			BookingID:            bookingID,
			UserID:               booking.UserID,
			BedID:                booking.BedID,
			MoveInDate:           booking.CheckInDate,
			ExpectedMoveOutDate:  booking.ExpectedCheckOutDate,
			Status:               domain.ResidentStatusActive,
			SecurityDepositCents: deposit,
		}
		return s.residentRepo.Create(ctx, tx, resident)
	})
	if err != nil {
		return err
	}

	s.notifyDecision(ctx, tenantID, booking, bed, true)
	return nil
}

func (s *bookingService) Reject(ctx context.Context, tenantID, bookingID int32) error {
	booking, err := s.bookingRepo.GetByID(ctx, tenantID, bookingID)
	if err != nil {
		return err
	}
	if err := s.bookingRepo.RejectPending(ctx, tenantID, bookingID); err != nil {
		return err
	}
	s.notifyDecision(ctx, tenantID, booking, nil, false)
	return nil
}

func (s *bookingService) ListMine(ctx context.Context, tenantID, userID int32) ([]domain.BookingDetail, error) {
	return s.bookingRepo.ListByUser(ctx, tenantID, userID)
}

func (s *bookingService) ListPending(ctx context.Context, tenantID int32) ([]domain.BookingDetail, error) {
	return s.bookingRepo.ListPending(ctx, tenantID)
}

// notifyDecision runs after the decision committed. Failures are logged
// and dropped; notifications are not part of the lifecycle's correctness.
func (s *bookingService) notifyDecision(ctx context.Context, tenantID int32, booking *domain.Booking, bed *domain.Bed, approved bool) {
	user, err := s.userRepo.GetByID(ctx, tenantID, booking.UserID)
	if err != nil {
		logger.Warn("Skipping booking notification", "booking_id", booking.ID, "error", err)
		return
	}

	title, message := "Booking Rejected", "Your booking request was rejected"
	if approved {
		roomNumber := ""
		if bed != nil {
			if room, err := s.roomRepo.GetByID(ctx, tenantID, bed.RoomID); err == nil {
				roomNumber = room.RoomNumber
			}
			_ = s.emailSvc.SendBookingApproved(ctx, user.Email, user.Name, roomNumber, bed.BedNumber)
		}
		title, message = "Booking Approved", "Your booking request was approved"
	} else {
		_ = s.emailSvc.SendBookingRejected(ctx, user.Email, user.Name)
	}

	_ = s.noteRepo.Create(ctx, &domain.Notification{
		TenantID: tenantID,
		UserID:   booking.UserID,
		Title:    title,
		Message:  message,
		Attributes: map[string]string{
			"type":       "BOOKING_DECISION",
			"booking_id": fmt.Sprintf("%d", booking.ID),
		},
	})
}
