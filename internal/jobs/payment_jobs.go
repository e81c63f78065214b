package jobs

import (
	"context"
	"fmt"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/logger"
	"pgstay-backend/internal/utils"
)

// SendPendingRentReminders emails every resident with unverified rent
// payments and records an in-app notification, per tenant.
func (jr *JobRunner) SendPendingRentReminders() {
	jr.runWithRecovery("SendPendingRentReminders", func() {
		ctx := context.Background()

		tenants, err := jr.tenantRepo.ListActive(ctx)
		if err != nil {
			logger.Error("Failed to list active tenants", "error", err)
			return
		}

		sent := 0
		for _, tenant := range tenants {
			pending, err := jr.paymentRepo.UsersWithPendingRent(ctx, tenant.ID)
			if err != nil {
				logger.Error("Failed to query pending rent",
					"tenant_id", tenant.ID, "error", err)
				continue
			}

			for userID, amountCents := range pending {
				user, err := jr.userRepo.GetByID(ctx, tenant.ID, userID)
				if err != nil {
					logger.Error("Failed to load user for rent reminder",
						"tenant_id", tenant.ID, "user_id", userID, "error", err)
					continue
				}

				if err := jr.emailSvc.SendRentReminder(ctx, user.Email, user.Name, amountCents); err != nil {
					logger.Error("Failed to send rent reminder",
						"tenant_id", tenant.ID, "user_id", userID, "error", err)
					continue
				}

				_ = jr.noteRepo.Create(ctx, &domain.Notification{
					TenantID: tenant.ID,
					UserID:   userID,
					Title:    "Rent payment reminder",
					Message:  fmt.Sprintf("You have pending rent of %s awaiting verification.", utils.FormatCents(amountCents)),
				})
				sent++
			}
		}

		logger.Info("Sent pending rent reminders", "count", sent)
	})
}
