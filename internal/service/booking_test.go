package service_test

import (
	"context"
	"testing"
	"time"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newBookingService() (service.BookingService, *MockBookingRepo, *MockBedRepo, *MockRoomRepo, *MockResidentRepo, *MockUserRepo, *MockNotificationRepo, *MockEmailService) {
	bookingRepo := new(MockBookingRepo)
	bedRepo := new(MockBedRepo)
	roomRepo := new(MockRoomRepo)
	residentRepo := new(MockResidentRepo)
	userRepo := new(MockUserRepo)
	noteRepo := new(MockNotificationRepo)
	emailSvc := new(MockEmailService)

	svc := service.NewBookingService(&FakeTxRunner{}, bookingRepo, bedRepo, roomRepo, residentRepo, userRepo, noteRepo, emailSvc)
	return svc, bookingRepo, bedRepo, roomRepo, residentRepo, userRepo, noteRepo, emailSvc
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()
	tenantID := int32(1)
	userID := int32(2)
	checkIn := time.Now().Add(24 * time.Hour)

	t.Run("Success", func(t *testing.T) {
		svc, bookingRepo, bedRepo, _, _, _, _, _ := newBookingService()
		bookingRepo.On("HasActiveForUser", ctx, tenantID, userID).Return(false, nil)
		bedRepo.On("GetByID", ctx, tenantID, int32(3)).Return(&domain.Bed{ID: 3, IsAvailable: true}, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		booking, err := svc.Create(ctx, tenantID, userID, service.CreateBookingInput{BedID: 3, CheckInDate: checkIn})
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusPending, booking.Status)
		assert.Equal(t, int32(3), booking.BedID)
	})

	t.Run("Duplicate active booking", func(t *testing.T) {
		svc, bookingRepo, _, _, _, _, _, _ := newBookingService()
		bookingRepo.On("HasActiveForUser", ctx, tenantID, userID).Return(true, nil)

		_, err := svc.Create(ctx, tenantID, userID, service.CreateBookingInput{BedID: 3, CheckInDate: checkIn})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("Bed not available", func(t *testing.T) {
		svc, bookingRepo, bedRepo, _, _, _, _, _ := newBookingService()
		bookingRepo.On("HasActiveForUser", ctx, tenantID, userID).Return(false, nil)
		bedRepo.On("GetByID", ctx, tenantID, int32(3)).Return(&domain.Bed{ID: 3, IsAvailable: false}, nil)

		_, err := svc.Create(ctx, tenantID, userID, service.CreateBookingInput{BedID: 3, CheckInDate: checkIn})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("Missing bed id", func(t *testing.T) {
		svc, _, _, _, _, _, _, _ := newBookingService()
		_, err := svc.Create(ctx, tenantID, userID, service.CreateBookingInput{CheckInDate: checkIn})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestBookingService_Approve(t *testing.T) {
	ctx := context.Background()
	tenantID := int32(1)
	bookingID := int32(7)
	checkIn := time.Now()

	pendingBooking := func() *domain.Booking {
		return &domain.Booking{
			ID:          bookingID,
			TenantID:    tenantID,
			UserID:      2,
			BedID:       3,
			CheckInDate: checkIn,
			Status:      domain.BookingStatusPending,
		}
	}

	t.Run("Approves and creates the residency", func(t *testing.T) {
		svc, bookingRepo, bedRepo, roomRepo, residentRepo, userRepo, noteRepo, emailSvc := newBookingService()
		bed := &domain.Bed{ID: 3, RoomID: 4, BedNumber: "A1", RentPerMonthCents: 120000, IsAvailable: false}

		bookingRepo.On("GetForUpdate", ctx, mock.Anything, tenantID, bookingID).Return(pendingBooking(), nil)
		bedRepo.On("ClaimForOccupancy", ctx, mock.Anything, tenantID, int32(3)).Return(bed, nil)
		bookingRepo.On("UpdateStatus", ctx, mock.Anything, tenantID, bookingID, domain.BookingStatusApproved).Return(nil)
		residentRepo.On("Create", ctx, mock.Anything, mock.MatchedBy(func(r *domain.Resident) bool {
			return r.Status == domain.ResidentStatusActive &&
				r.BookingID == bookingID &&
				r.SecurityDepositCents == 500000
		})).Return(nil)

		userRepo.On("GetByID", ctx, tenantID, int32(2)).Return(&domain.User{ID: 2, Email: "res@test.com", Name: "Res"}, nil)
		roomRepo.On("GetByID", ctx, tenantID, int32(4)).Return(&domain.Room{ID: 4, RoomNumber: "101"}, nil)
		emailSvc.On("SendBookingApproved", ctx, "res@test.com", "Res", "101", "A1").Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		err := svc.Approve(ctx, tenantID, bookingID, 500000)
		assert.NoError(t, err)
		residentRepo.AssertExpectations(t)
	})

	t.Run("Deposit defaults to the bed rent", func(t *testing.T) {
		svc, bookingRepo, bedRepo, roomRepo, residentRepo, userRepo, noteRepo, emailSvc := newBookingService()
		bed := &domain.Bed{ID: 3, RoomID: 4, BedNumber: "A1", RentPerMonthCents: 120000}

		bookingRepo.On("GetForUpdate", ctx, mock.Anything, tenantID, bookingID).Return(pendingBooking(), nil)
		bedRepo.On("ClaimForOccupancy", ctx, mock.Anything, tenantID, int32(3)).Return(bed, nil)
		bookingRepo.On("UpdateStatus", ctx, mock.Anything, tenantID, bookingID, domain.BookingStatusApproved).Return(nil)
		residentRepo.On("Create", ctx, mock.Anything, mock.MatchedBy(func(r *domain.Resident) bool {
			return r.SecurityDepositCents == 120000
		})).Return(nil)

		userRepo.On("GetByID", ctx, tenantID, int32(2)).Return(&domain.User{ID: 2, Email: "res@test.com", Name: "Res"}, nil)
		roomRepo.On("GetByID", ctx, tenantID, int32(4)).Return(&domain.Room{ID: 4, RoomNumber: "101"}, nil)
		emailSvc.On("SendBookingApproved", ctx, "res@test.com", "Res", "101", "A1").Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		err := svc.Approve(ctx, tenantID, bookingID, 0)
		assert.NoError(t, err)
		residentRepo.AssertExpectations(t)
	})

	t.Run("Loser of a concurrent approval gets a conflict", func(t *testing.T) {
		svc, bookingRepo, bedRepo, _, residentRepo, _, _, _ := newBookingService()

		bookingRepo.On("GetForUpdate", ctx, mock.Anything, tenantID, bookingID).Return(pendingBooking(), nil)
		bedRepo.On("ClaimForOccupancy", ctx, mock.Anything, tenantID, int32(3)).
			Return(nil, domain.ErrConflict)

		err := svc.Approve(ctx, tenantID, bookingID, 0)
		assert.ErrorIs(t, err, domain.ErrConflict)
		residentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Already approved booking", func(t *testing.T) {
		svc, bookingRepo, bedRepo, _, _, _, _, _ := newBookingService()
		approved := pendingBooking()
		approved.Status = domain.BookingStatusApproved

		bookingRepo.On("GetForUpdate", ctx, mock.Anything, tenantID, bookingID).Return(approved, nil)

		err := svc.Approve(ctx, tenantID, bookingID, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidState)
		bedRepo.AssertNotCalled(t, "ClaimForOccupancy", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBookingService_Reject(t *testing.T) {
	ctx := context.Background()
	tenantID := int32(1)
	bookingID := int32(7)

	t.Run("Rejects a pending booking", func(t *testing.T) {
		svc, bookingRepo, _, _, _, userRepo, noteRepo, emailSvc := newBookingService()
		bookingRepo.On("GetByID", ctx, tenantID, bookingID).
			Return(&domain.Booking{ID: bookingID, UserID: 2, Status: domain.BookingStatusPending}, nil)
		bookingRepo.On("RejectPending", ctx, tenantID, bookingID).Return(nil)
		userRepo.On("GetByID", ctx, tenantID, int32(2)).Return(&domain.User{ID: 2, Email: "res@test.com", Name: "Res"}, nil)
		emailSvc.On("SendBookingRejected", ctx, "res@test.com", "Res").Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		err := svc.Reject(ctx, tenantID, bookingID)
		assert.NoError(t, err)
	})

	t.Run("Second reject reports not found", func(t *testing.T) {
		svc, bookingRepo, _, _, _, _, _, _ := newBookingService()
		bookingRepo.On("GetByID", ctx, tenantID, bookingID).
			Return(&domain.Booking{ID: bookingID, UserID: 2, Status: domain.BookingStatusRejected}, nil)
		bookingRepo.On("RejectPending", ctx, tenantID, bookingID).Return(domain.ErrNotFound)

		err := svc.Reject(ctx, tenantID, bookingID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
