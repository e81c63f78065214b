package service

import (
	"context"
	"database/sql"
	"fmt"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/logger"
	"pgstay-backend/internal/repository"
	"pgstay-backend/internal/utils"
)

type checkoutService struct {
	txRunner       repository.TxRunner
	residentRepo   repository.ResidentRepository
	bedRepo        repository.BedRepository
	bookingRepo    repository.BookingRepository
	paymentRepo    repository.PaymentRepository
	settlementRepo repository.SettlementRepository
	userRepo       repository.UserRepository
	noteRepo       repository.NotificationRepository
	emailSvc       EmailService
}

func NewCheckoutService(
	txRunner repository.TxRunner,
	residentRepo repository.ResidentRepository,
	bedRepo repository.BedRepository,
	bookingRepo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
	settlementRepo repository.SettlementRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) CheckoutService {
	return &checkoutService{
		txRunner:       txRunner,
		residentRepo:   residentRepo,
		bedRepo:        bedRepo,
		bookingRepo:    bookingRepo,
		paymentRepo:    paymentRepo,
		settlementRepo: settlementRepo,
		userRepo:       userRepo,
		noteRepo:       noteRepo,
		emailSvc:       emailSvc,
	}
}

func (s *checkoutService) Preview(ctx context.Context, tenantID, residentID int32) (*domain.CheckoutPreview, error) {
	resident, err := s.residentRepo.GetActive(ctx, tenantID, residentID)
	if err != nil {
		return nil, err
	}

	pendingRent, err := s.paymentRepo.SumPendingRent(ctx, tenantID, resident.UserID)
	if err != nil {
		return nil, err
	}

	breakdown := utils.ComputeSettlement(resident.SecurityDepositCents, pendingRent, 0, 0)
	return &domain.CheckoutPreview{
		ResidentID:            resident.ID,
		SecurityDepositCents:  breakdown.DepositCents,
		PendingRentCents:      breakdown.PendingRentCents,
		RefundableAmountCents: breakdown.FinalAmountCents,
	}, nil
}

// Confirm settles the residency in one atomic unit. The pending rent is
// recomputed under the resident's row lock rather than trusted from the
// preview, so a payment verified between preview and confirm lands in the
// final number. The result may be negative: the resident owes money and
// callers interpret the sign.
func (s *checkoutService) Confirm(ctx context.Context, tenantID, residentID int32, in ConfirmCheckoutInput) (int64, error) {
	if in.ActualMoveOutDate.IsZero() {
		return 0, fmt.Errorf("%w: actual move-out date is required", domain.ErrValidation)
	}

	var resident *domain.Resident
	var finalAmount int64

	err := s.txRunner.Transact(ctx, func(tx *sql.Tx) error {
		var err error
		resident, err = s.residentRepo.GetActiveForUpdate(ctx, tx, tenantID, residentID)
		if err != nil {
			return err
		}
		if resident.BedID == 0 || resident.BookingID == 0 {
			return fmt.Errorf("%w: resident %d has no linked bed or booking", domain.ErrInvalidState, residentID)
		}

		pendingRent, err := s.paymentRepo.SumPendingRentTx(ctx, tx, tenantID, resident.UserID)
		if err != nil {
			return err
		}
		breakdown := utils.ComputeSettlement(resident.SecurityDepositCents, pendingRent, in.DamageDeductionCents, in.OtherChargesCents)
		finalAmount = breakdown.FinalAmountCents

		if err := s.residentRepo.FinalizeCheckout(ctx, tx, tenantID, residentID, in.ActualMoveOutDate, finalAmount); err != nil {
			return err
		}
		if err := s.bedRepo.Release(ctx, tx, tenantID, resident.BedID); err != nil {
			return err
		}
		if err := s.bookingRepo.CompleteApproved(ctx, tx, tenantID, resident.BookingID); err != nil {
			return err
		}

		notes := in.Notes
		if notes == "" {
			months, days := utils.StayDuration(resident.MoveInDate, in.ActualMoveOutDate)
			notes = fmt.Sprintf("Final settlement after a stay of %d months %d days", months, days)
		}
		return s.settlementRepo.Create(ctx, tx, &domain.Settlement{
			TenantID:         tenantID,
			ResidentID:       residentID,
			FinalAmountCents: finalAmount,
			Notes:            notes,
		})
	})
	if err != nil {
		return 0, err
	}

	s.notifySettlement(ctx, tenantID, resident, finalAmount)
	return finalAmount, nil
}

func (s *checkoutService) MySettlement(ctx context.Context, tenantID, userID int32) (*domain.Resident, error) {
	return s.residentRepo.LatestSettlementForUser(ctx, tenantID, userID)
}

func (s *checkoutService) notifySettlement(ctx context.Context, tenantID int32, resident *domain.Resident, finalAmount int64) {
	user, err := s.userRepo.GetByID(ctx, tenantID, resident.UserID)
	if err != nil {
		logger.Warn("Skipping settlement notification", "resident_id", resident.ID, "error", err)
		return
	}

	_ = s.emailSvc.SendSettlementNotice(ctx, user.Email, user.Name, finalAmount)
	_ = s.noteRepo.Create(ctx, &domain.Notification{
		TenantID: tenantID,
		UserID:   resident.UserID,
		Title:    "Checkout Completed",
		Message:  fmt.Sprintf("Your checkout is complete. Final settlement amount: %s", utils.FormatCents(finalAmount)),
		Attributes: map[string]string{
			"type":        "SETTLEMENT",
			"resident_id": fmt.Sprintf("%d", resident.ID),
		},
	})
}
