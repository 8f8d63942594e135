package store

import (
	"context"
	"errors"
	"studio/src/models"
	"studio/src/models/scopes"
	"studio/src/types"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func NewGormRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Availability:  &GormAvailability{db: db},
		Bookings:      &GormBookings{db: db},
		Packages:      &GormPackages{db: db},
		Notifications: &GormNotifications{db: db},
	}
}

// PG_INVALID_TEXT_REPRESENTATION is raised when an id cannot be cast to the
// column type, e.g. a malformed id against a legacy uuid column.
const PG_INVALID_TEXT_REPRESENTATION = "22P02"

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PG_INVALID_TEXT_REPRESENTATION {
		return ErrNotFound
	}
	return err
}

type GormAvailability struct {
	db *gorm.DB
}

func (r *GormAvailability) List(ctx context.Context) ([]models.AvailabilityWindow, error) {
	windows := []models.AvailabilityWindow{}
	err := r.db.WithContext(ctx).
		Model(&models.AvailabilityWindow{}).
		Order("date asc").
		Order("start_time asc").
		Find(&windows).
		Error
	return windows, err
}

func (r *GormAvailability) ListByDate(ctx context.Context, date string) ([]models.AvailabilityWindow, error) {
	windows := []models.AvailabilityWindow{}
	err := r.db.WithContext(ctx).
		Model(&models.AvailabilityWindow{}).
		Scopes(scopes.OnDate(date)).
		Order("start_time asc").
		Find(&windows).
		Error
	return windows, err
}

func (r *GormAvailability) Get(ctx context.Context, id string) (*models.AvailabilityWindow, error) {
	var w models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Model(&models.AvailabilityWindow{}).
		Scopes(scopes.WithID(id)).
		First(&w).
		Error; err != nil {
		return nil, notFound(err)
	}
	return &w, nil
}

func (r *GormAvailability) Create(ctx context.Context, w *models.AvailabilityWindow) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *GormAvailability) Update(ctx context.Context, w *models.AvailabilityWindow) error {
	result := r.db.WithContext(ctx).
		Model(&models.AvailabilityWindow{}).
		Scopes(scopes.WithID(w.ID)).
		Updates(map[string]any{
			"date":       w.Date,
			"start_time": w.StartTime,
			"end_time":   w.EndTime,
			"is_active":  w.IsActive,
		})
	if result.Error != nil {
		return notFound(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormAvailability) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Scopes(scopes.WithID(id)).
		Delete(&models.AvailabilityWindow{})
	if result.Error != nil {
		return notFound(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormAvailability) DeactivateBefore(ctx context.Context, date string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.AvailabilityWindow{}).
		Scopes(scopes.Active).
		Where("date < ?", date).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

type GormBookings struct {
	db *gorm.DB
}

func (r *GormBookings) List(ctx context.Context) ([]models.Booking, error) {
	bookings := []models.Booking{}
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Order("created_at asc").
		Find(&bookings).
		Error
	return bookings, err
}

func (r *GormBookings) Get(ctx context.Context, id string) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Scopes(scopes.WithID(id)).
		First(&b).
		Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *GormBookings) ListApprovedByDate(ctx context.Context, date string) ([]models.Booking, error) {
	bookings := []models.Booking{}
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Scopes(scopes.OnDate(date), scopes.WithApprovedStatus).
		Find(&bookings).
		Error
	return bookings, err
}

func (r *GormBookings) Create(ctx context.Context, b *models.Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *GormBookings) UpdateStatus(ctx context.Context, id string, status types.BookingStatus, notes *string) (*models.Booking, error) {
	values := map[string]any{"status": status}
	if notes != nil {
		values["admin_notes"] = *notes
	}
	result := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Scopes(scopes.WithID(id)).
		Updates(values)
	if result.Error != nil {
		return nil, notFound(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.Get(ctx, id)
}

// LockDate serialises writers for one date with a transaction scoped
// postgres advisory lock.
func (r *GormBookings) LockDate(ctx context.Context, date string, fn func(BookingRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", date).Error; err != nil {
			return err
		}
		return fn(&GormBookings{db: tx})
	})
}

type GormPackages struct {
	db *gorm.DB
}

func (r *GormPackages) List(ctx context.Context, activeOnly bool) ([]models.Package, error) {
	packages := []models.Package{}
	q := r.db.WithContext(ctx).Model(&models.Package{})
	if activeOnly {
		q = q.Scopes(scopes.Active)
	}
	err := q.Order("created_at asc").Find(&packages).Error
	return packages, err
}

func (r *GormPackages) Get(ctx context.Context, id string) (*models.Package, error) {
	var p models.Package
	if err := r.db.WithContext(ctx).
		Model(&models.Package{}).
		Scopes(scopes.WithID(id)).
		First(&p).
		Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *GormPackages) Create(ctx context.Context, p *models.Package) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *GormPackages) Update(ctx context.Context, p *models.Package) error {
	result := r.db.WithContext(ctx).
		Model(&models.Package{}).
		Scopes(scopes.WithID(p.ID)).
		Updates(map[string]any{
			"name":        p.Name,
			"slug":        p.Slug,
			"description": p.Description,
			"image":       p.Image,
			"price":       p.Price,
			"duration":    p.Duration,
			"is_active":   p.IsActive,
		})
	if result.Error != nil {
		return notFound(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormPackages) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Scopes(scopes.WithID(id)).
		Delete(&models.Package{})
	if result.Error != nil {
		return notFound(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type GormNotifications struct {
	db *gorm.DB
}

func (r *GormNotifications) Create(ctx context.Context, n *models.EmailNotification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *GormNotifications) ListByBooking(ctx context.Context, bookingID string) ([]models.EmailNotification, error) {
	rows := []models.EmailNotification{}
	err := r.db.WithContext(ctx).
		Model(&models.EmailNotification{}).
		Where("booking_id = ?", bookingID).
		Order("created_at asc").
		Find(&rows).
		Error
	return rows, err
}
