package service

import (
	"context"
	"fmt"
	"time"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/repository"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo}
}

func (s *paymentService) Create(ctx context.Context, tenantID, userID int32, in CreatePaymentInput) (*domain.Payment, error) {
	if in.PaymentFor == "" || in.AmountCents <= 0 {
		return nil, fmt.Errorf("%w: payment type and a positive amount are required", domain.ErrValidation)
	}

	payment := &domain.Payment{
		TenantID:         tenantID,
		UserID:           userID,
		BookingID:        in.BookingID,
		PaymentFor:       in.PaymentFor,
		AmountCents:      in.AmountCents,
		PaymentDate:      time.Now(),
		Status:           domain.PaymentStatusPending,
		UpiTransactionID: in.UpiTransactionID,
		Notes:            in.Notes,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) ListPending(ctx context.Context, tenantID int32) ([]domain.Payment, error) {
	return s.paymentRepo.ListPending(ctx, tenantID)
}

func (s *paymentService) Verify(ctx context.Context, tenantID, paymentID, verifierID int32) error {
	return s.paymentRepo.Verify(ctx, tenantID, paymentID, verifierID)
}

func (s *paymentService) Reject(ctx context.Context, tenantID, paymentID, verifierID int32, reason string) error {
	if reason == "" {
		reason = "Invalid payment"
	}
	return s.paymentRepo.Reject(ctx, tenantID, paymentID, verifierID, reason)
}
