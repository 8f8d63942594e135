package services

import (
	"context"
	"log"
	"studio/src/lib"
	"studio/src/lib/mailer"
	"studio/src/models"
	"studio/src/store"
	"studio/src/types"
	"time"
)

type NotifierConfig struct {
	AdminEmail string
	From       string
	FromName   string
}

// Notifier sends booking emails and records one audit row per message.
// Delivery failures are logged and never returned.
type Notifier struct {
	mailer  mailer.Mailer
	records store.NotificationRepository
	cfg     NotifierConfig
}

func NewNotifier(m mailer.Mailer, records store.NotificationRepository, cfg NotifierConfig) *Notifier {
	return &Notifier{mailer: m, records: records, cfg: cfg}
}

func emailData(b *models.Booking, pkg *models.Package) mailer.BookingEmailData {
	data := mailer.BookingEmailData{
		CustomerName:  b.Name,
		CustomerEmail: b.Email,
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Duration:      b.Duration,
		Message:       b.Message,
	}
	if pkg != nil {
		data.PackageName = pkg.Name
		data.Price = pkg.Price
	}
	if b.AdminNotes != nil {
		data.AdminNotes = *b.AdminNotes
	}
	return data
}

type renderFunc func(mailer.BookingEmailData) (string, string, error)

func (n *Notifier) deliver(ctx context.Context, bookingID string, kind types.NotificationType, recipient string, render renderFunc, data mailer.BookingEmailData) {
	row := &models.EmailNotification{
		BookingID: bookingID,
		Type:      kind,
		Recipient: recipient,
		Status:    types.NOTIFICATION_SENT,
	}
	subject, body, err := render(data)
	if err == nil {
		err = n.mailer.Send(ctx, &lib.SendMailInput{
			From:     n.cfg.From,
			FromName: n.cfg.FromName,
			To:       []string{recipient},
			Subject:  subject,
			Body:     body,
			Html:     true,
		})
	}
	if err != nil {
		log.Printf("Error sending %s email for booking [%s] to %s: %s\n", kind, bookingID, recipient, err.Error())
		row.Status = types.NOTIFICATION_FAILED
	} else {
		now := time.Now()
		row.SentAt = &now
	}
	if err := n.records.Create(ctx, row); err != nil {
		log.Printf("Error recording %s notification for booking [%s]: %s\n", kind, bookingID, err.Error())
	}
}

// BookingRequested emails the studio and the customer about a new request.
func (n *Notifier) BookingRequested(ctx context.Context, b *models.Booking, pkg *models.Package) {
	data := emailData(b, pkg)
	if n.cfg.AdminEmail != "" {
		n.deliver(ctx, b.ID, types.NOTIFICATION_BOOKING_REQUEST, n.cfg.AdminEmail, mailer.BookingRequestAdmin, data)
	} else {
		log.Println("ADMIN_EMAIL is not set; skipping studio notification")
	}
	n.deliver(ctx, b.ID, types.NOTIFICATION_BOOKING_REQUEST, b.Email, mailer.BookingRequestCustomer, data)
}

// BookingDecided emails the customer after an approval or rejection. Other
// statuses send nothing.
func (n *Notifier) BookingDecided(ctx context.Context, b *models.Booking, pkg *models.Package) {
	data := emailData(b, pkg)
	switch b.Status {
	case types.BOOKING_APPROVED:
		n.deliver(ctx, b.ID, types.NOTIFICATION_BOOKING_APPROVED, b.Email, mailer.BookingApproved, data)
	case types.BOOKING_REJECTED:
		n.deliver(ctx, b.ID, types.NOTIFICATION_BOOKING_REJECTED, b.Email, mailer.BookingDenied, data)
	}
}
