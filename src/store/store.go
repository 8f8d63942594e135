// Package store persists availability windows, bookings, packages and
// notification audit rows. Every repository has a gorm implementation used in
// production and an in-memory one used by tests and local runs.
package store

import (
	"context"
	"errors"
	"studio/src/models"
	"studio/src/types"
)

var ErrNotFound = errors.New("record not found")

type AvailabilityRepository interface {
	// List returns every window ordered by date, then start time.
	List(ctx context.Context) ([]models.AvailabilityWindow, error)
	ListByDate(ctx context.Context, date string) ([]models.AvailabilityWindow, error)
	Get(ctx context.Context, id string) (*models.AvailabilityWindow, error)
	Create(ctx context.Context, w *models.AvailabilityWindow) error
	Update(ctx context.Context, w *models.AvailabilityWindow) error
	Delete(ctx context.Context, id string) error
	// DeactivateBefore clears the active flag of windows dated strictly before
	// date and returns how many rows changed.
	DeactivateBefore(ctx context.Context, date string) (int64, error)
}

type BookingRepository interface {
	// List returns every booking in creation order.
	List(ctx context.Context) ([]models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	ListApprovedByDate(ctx context.Context, date string) ([]models.Booking, error)
	Create(ctx context.Context, b *models.Booking) error
	UpdateStatus(ctx context.Context, id string, status types.BookingStatus, notes *string) (*models.Booking, error)
	// LockDate runs fn while holding an exclusive lock for date. fn receives a
	// repository bound to the locked scope and must use it instead of the
	// receiver. An error from fn aborts the scope.
	LockDate(ctx context.Context, date string, fn func(BookingRepository) error) error
}

type PackageRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.Package, error)
	Get(ctx context.Context, id string) (*models.Package, error)
	Create(ctx context.Context, p *models.Package) error
	Update(ctx context.Context, p *models.Package) error
	Delete(ctx context.Context, id string) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *models.EmailNotification) error
	ListByBooking(ctx context.Context, bookingID string) ([]models.EmailNotification, error)
}

// Repositories bundles one implementation of each repository.
type Repositories struct {
	Availability  AvailabilityRepository
	Bookings      BookingRepository
	Packages      PackageRepository
	Notifications NotificationRepository
}
