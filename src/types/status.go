package types

import (
	"fmt"
	"slices"
)

type BookingStatus string

const (
	BOOKING_PENDING   BookingStatus = "pending"
	BOOKING_APPROVED  BookingStatus = "approved"
	BOOKING_REJECTED  BookingStatus = "rejected"
	BOOKING_CANCELLED BookingStatus = "cancelled"
)

// bookingTransitions lists the statuses an admin may move a booking to.
// Keeping the current status is always allowed so notes can be edited alone.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BOOKING_PENDING:   {BOOKING_APPROVED, BOOKING_REJECTED},
	BOOKING_APPROVED:  {BOOKING_CANCELLED},
	BOOKING_REJECTED:  {BOOKING_PENDING},
	BOOKING_CANCELLED: {BOOKING_PENDING},
}

func (s BookingStatus) Valid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	allowed, ok := bookingTransitions[s]
	if !ok || !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	return slices.Contains(allowed, next)
}

// Occupies reports whether a booking in this status holds its time slot.
func (s BookingStatus) Occupies() bool {
	return s == BOOKING_APPROVED
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.Valid() {
		return "", &ValidationError{Msg: fmt.Sprintf("Invalid status: %q", s)}
	}
	return status, nil
}

type NotificationType string

const (
	NOTIFICATION_BOOKING_REQUEST  NotificationType = "booking_request"
	NOTIFICATION_BOOKING_APPROVED NotificationType = "booking_approved"
	NOTIFICATION_BOOKING_REJECTED NotificationType = "booking_rejected"
)

type NotificationStatus string

const (
	NOTIFICATION_SENT   NotificationStatus = "sent"
	NOTIFICATION_FAILED NotificationStatus = "failed"
)
