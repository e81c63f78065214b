package jobs

import (
	"context"
	"time"

	"pgstay-backend/internal/logger"
)

// ExpireStalePendingBookings rejects PENDING bookings older than the
// configured expiry window, per tenant.
func (jr *JobRunner) ExpireStalePendingBookings() {
	jr.runWithRecovery("ExpireStalePendingBookings", func() {
		ctx := context.Background()

		tenants, err := jr.tenantRepo.ListActive(ctx)
		if err != nil {
			logger.Error("Failed to list active tenants", "error", err)
			return
		}

		cutoff := time.Now().UTC().AddDate(0, 0, -jr.config.Booking.PendingExpiryDays)

		total := 0
		for _, tenant := range tenants {
			expired, err := jr.bookingRepo.ExpirePendingBefore(ctx, tenant.ID, cutoff)
			if err != nil {
				logger.Error("Failed to expire stale bookings",
					"tenant_id", tenant.ID, "error", err)
				continue
			}
			for _, bookingID := range expired {
				logger.Debug("Expired stale booking",
					"tenant_id", tenant.ID, "booking_id", bookingID)
			}
			total += len(expired)
		}

		logger.Info("Expired stale pending bookings", "count", total, "cutoff", cutoff.Format("2006-01-02"))
	})
}
