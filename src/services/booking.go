package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"studio/src/models"
	"studio/src/schedule"
	"studio/src/store"
	"studio/src/types"
)

const (
	msgMissingBookingFields = "Missing required fields"
	msgSlotTaken            = "This time slot is no longer available"
	resourceBooking         = "Booking"
)

type ConflictingBooking struct {
	ID           string `json:"id"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	CustomerName string `json:"customerName"`
}

type AvailabilityCheck struct {
	Available           bool                 `json:"available"`
	Conflicts           int                  `json:"conflicts"`
	ConflictingBookings []ConflictingBooking `json:"conflictingBookings"`
}

type BookingService struct {
	bookings store.BookingRepository
	packages store.PackageRepository
	windows  store.AvailabilityRepository
	notifier *Notifier
}

func NewBookingService(repos *store.Repositories, notifier *Notifier) *BookingService {
	return &BookingService{
		bookings: repos.Bookings,
		packages: repos.Packages,
		windows:  repos.Availability,
		notifier: notifier,
	}
}

func bookingIDs(bookings []models.Booking) []string {
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}
	return ids
}

// CheckAvailability reports every approved booking overlapping the range.
func (s *BookingService) CheckAvailability(ctx context.Context, date, start, end string) (*AvailabilityCheck, error) {
	candidate, err := schedule.NewInterval(date, start, end)
	if err != nil {
		return nil, err
	}
	approved, err := s.bookings.ListApprovedByDate(ctx, date)
	if err != nil {
		return nil, storeError(err, resourceBooking, "list approved bookings")
	}
	conflicts := schedule.FindConflicts(candidate, approved, "")
	check := &AvailabilityCheck{
		Available:           len(conflicts) == 0,
		Conflicts:           len(conflicts),
		ConflictingBookings: make([]ConflictingBooking, 0, len(conflicts)),
	}
	for _, c := range conflicts {
		check.ConflictingBookings = append(check.ConflictingBookings, ConflictingBooking{
			ID:           c.ID,
			StartTime:    c.StartTime,
			EndTime:      c.EndTime,
			CustomerName: c.Name,
		})
	}
	return check, nil
}

// Create stores a pending booking. The conflict check and the insert share
// one date lock so two requests cannot both pass the check.
func (s *BookingService) Create(ctx context.Context, body types.CreateBookingRequestBody) (*models.Booking, error) {
	name := strings.TrimSpace(body.Name)
	email := strings.TrimSpace(body.Email)
	phone := strings.TrimSpace(body.Phone)
	if name == "" || email == "" || phone == "" || body.Date == "" || body.StartTime == "" || body.EndTime == "" || body.PackageID == "" {
		return nil, &types.ValidationError{Msg: msgMissingBookingFields}
	}
	candidate, err := schedule.NewInterval(body.Date, body.StartTime, body.EndTime)
	if err != nil {
		return nil, err
	}
	pkg, err := s.packages.Get(ctx, body.PackageID)
	if err != nil {
		return nil, storeError(err, resourcePackage, "get package")
	}

	duration := pkg.Duration
	if body.Duration != nil && *body.Duration > 0 {
		duration = *body.Duration
	}
	booking := &models.Booking{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Date:      body.Date,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		PackageID: pkg.ID,
		Duration:  duration,
		Status:    types.BOOKING_PENDING,
	}
	if body.Message != nil {
		booking.Message = strings.TrimSpace(*body.Message)
	}
	if body.AvailabilityID != nil && *body.AvailabilityID != "" {
		id := *body.AvailabilityID
		booking.AvailabilityID = &id
	}

	err = s.bookings.LockDate(ctx, body.Date, func(tx store.BookingRepository) error {
		approved, err := tx.ListApprovedByDate(ctx, body.Date)
		if err != nil {
			return err
		}
		if conflicts := schedule.FindConflicts(candidate, approved, ""); len(conflicts) > 0 {
			log.Printf("Time conflict for %s %s-%s with bookings %v\n", body.Date, body.StartTime, body.EndTime, bookingIDs(conflicts))
			return &types.ConflictError{Msg: msgSlotTaken, Conflicts: bookingIDs(conflicts)}
		}
		return tx.Create(ctx, booking)
	})
	if err != nil {
		var conflict *types.ConflictError
		if errors.As(err, &conflict) {
			return nil, conflict
		}
		return nil, storeError(err, resourceBooking, "create booking")
	}
	log.Printf("Created booking [%s] for %s %s-%s\n", booking.ID, booking.Date, booking.StartTime, booking.EndTime)

	if s.notifier != nil {
		s.notifier.BookingRequested(ctx, booking, pkg)
	}
	return booking, nil
}

func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, storeError(err, resourceBooking, "list bookings")
	}
	return bookings, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.bookings.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, resourceBooking, "get booking")
	}
	return b, nil
}

func transitionError(from, to types.BookingStatus) error {
	return &types.ValidationError{Msg: fmt.Sprintf("Cannot change booking status from %s to %s", from, to)}
}

// UpdateStatus moves a booking through the status table. Every transition
// runs under the date lock against a fresh read of the row; any write that
// leaves the booking approved re-checks conflicts with other approved
// bookings. Reopening does not.
func (s *BookingService) UpdateStatus(ctx context.Context, id string, body types.UpdateBookingStatusRequestBody) (*models.Booking, error) {
	next, err := types.ParseBookingStatus(body.Status)
	if err != nil {
		return nil, err
	}
	current, err := s.bookings.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, resourceBooking, "get booking")
	}
	if !current.Status.CanTransitionTo(next) {
		return nil, transitionError(current.Status, next)
	}

	var updated *models.Booking
	previous := current.Status
	err = s.bookings.LockDate(ctx, current.Date, func(tx store.BookingRepository) error {
		locked, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}
		if !locked.Status.CanTransitionTo(next) {
			return transitionError(locked.Status, next)
		}
		previous = locked.Status
		if next == types.BOOKING_APPROVED {
			candidate, err := schedule.BookingInterval(*locked)
			if err != nil {
				return err
			}
			approved, err := tx.ListApprovedByDate(ctx, locked.Date)
			if err != nil {
				return err
			}
			if conflicts := schedule.FindConflicts(candidate, approved, id); len(conflicts) > 0 {
				return &types.ConflictError{Msg: msgSlotTaken, Conflicts: bookingIDs(conflicts)}
			}
		}
		updated, err = tx.UpdateStatus(ctx, id, next, body.AdminNotes)
		return err
	})
	if err != nil {
		var conflict *types.ConflictError
		var invalid *types.ValidationError
		switch {
		case errors.As(err, &conflict):
			return nil, conflict
		case errors.As(err, &invalid):
			return nil, invalid
		}
		return nil, storeError(err, resourceBooking, "update booking status")
	}

	switch {
	case next == types.BOOKING_APPROVED && previous != types.BOOKING_APPROVED:
		log.Printf("Booking [%s] approved, %s %s-%s is now unavailable\n", id, updated.Date, updated.StartTime, updated.EndTime)
	case (next == types.BOOKING_CANCELLED || next == types.BOOKING_REJECTED) && previous == types.BOOKING_APPROVED:
		log.Printf("Approved booking [%s] %s, %s %s-%s is available again\n", id, next, updated.Date, updated.StartTime, updated.EndTime)
	}

	if s.notifier != nil && next != previous {
		pkg, err := s.packages.Get(ctx, updated.PackageID)
		if err != nil {
			log.Printf("Could not load package [%s] for booking [%s]: %s\n", updated.PackageID, id, err.Error())
		}
		s.notifier.BookingDecided(ctx, updated, pkg)
	}
	return updated, nil
}

// Slots lists the bookable slots on date: generated from the active windows
// and minus those overlapping an approved booking. An explicit duration wins
// over the package duration.
func (s *BookingService) Slots(ctx context.Context, q types.SlotsQuery) ([]schedule.Slot, error) {
	if err := schedule.ParseDate(q.Date); err != nil {
		return nil, err
	}
	var duration float64
	switch {
	case q.Duration != nil && *q.Duration > 0:
		duration = *q.Duration
	case q.PackageID != "":
		pkg, err := s.packages.Get(ctx, q.PackageID)
		if err != nil {
			return nil, storeError(err, resourcePackage, "get package")
		}
		duration = pkg.Duration
	default:
		return nil, &types.ValidationError{Msg: "packageId or duration is required"}
	}

	windows, err := s.windows.ListByDate(ctx, q.Date)
	if err != nil {
		return nil, storeError(err, resourceWindow, "list availability")
	}
	active := make([]models.AvailabilityWindow, 0, len(windows))
	for _, w := range windows {
		if w.IsActive {
			active = append(active, w)
		}
	}
	approved, err := s.bookings.ListApprovedByDate(ctx, q.Date)
	if err != nil {
		return nil, storeError(err, resourceBooking, "list approved bookings")
	}
	return schedule.FreeSlots(q.Date, schedule.WindowSlots(active, duration), approved), nil
}
