package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"pgstay-backend/internal/utils"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendBookingApproved(ctx context.Context, email, name, roomNumber, bedNumber string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour booking has been approved. You are assigned bed %s in room %s.\n\nBest regards,\nThe PGStay Team", name, bedNumber, roomNumber)
	return s.send(email, name, "Booking Approved", body)
}

func (s *emailService) SendBookingRejected(ctx context.Context, email, name string) error {
	body := fmt.Sprintf("Hello %s,\n\nUnfortunately your booking request was rejected. Please contact the office for alternatives.\n\nBest regards,\nThe PGStay Team", name)
	return s.send(email, name, "Booking Rejected", body)
}

func (s *emailService) SendSettlementNotice(ctx context.Context, email, name string, finalAmountCents int64) error {
	var body string
	if finalAmountCents >= 0 {
		body = fmt.Sprintf("Hello %s,\n\nYour checkout is complete. A refund of %s is due to you.\n\nBest regards,\nThe PGStay Team", name, utils.FormatCents(finalAmountCents))
	} else {
		body = fmt.Sprintf("Hello %s,\n\nYour checkout is complete. An outstanding balance of %s is due from you.\n\nBest regards,\nThe PGStay Team", name, utils.FormatCents(-finalAmountCents))
	}
	return s.send(email, name, "Checkout Settlement", body)
}

func (s *emailService) SendRentReminder(ctx context.Context, email, name string, pendingCents int64) error {
	body := fmt.Sprintf("Hello %s,\n\nThis is a reminder that you have pending rent of %s. Please complete your payment.\n\nBest regards,\nThe PGStay Team", name, utils.FormatCents(pendingCents))
	return s.send(email, name, "Rent Payment Reminder", body)
}
