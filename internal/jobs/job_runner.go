package jobs

import (
	"pgstay-backend/internal/config"
	"pgstay-backend/internal/logger"
	"pgstay-backend/internal/repository"
	"pgstay-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs. Jobs iterate active tenants so
// that each tenant's data is processed under its own tenant_id scope.
type JobRunner struct {
	tenantRepo  repository.TenantRepository
	bookingRepo repository.BookingRepository
	paymentRepo repository.PaymentRepository
	userRepo    repository.UserRepository
	noteRepo    repository.NotificationRepository
	emailSvc    service.EmailService
	config      *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	tenantRepo repository.TenantRepository,
	bookingRepo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	emailSvc service.EmailService,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		tenantRepo:  tenantRepo,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		noteRepo:    noteRepo,
		emailSvc:    emailSvc,
		config:      cfg,
	}
}

// Config exposes the configuration for schedule registration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ExpireStalePendingBookings()
	jr.SendPendingRentReminders()
}
