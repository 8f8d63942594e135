package store

import (
	"context"
	"slices"
	"strings"
	"studio/src/models"
	"studio/src/types"
	"sync"
	"time"

	"github.com/google/uuid"
)

func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Availability:  NewMemoryAvailability(),
		Bookings:      NewMemoryBookings(),
		Packages:      NewMemoryPackages(),
		Notifications: NewMemoryNotifications(),
	}
}

type MemoryAvailability struct {
	mu      sync.RWMutex
	windows map[string]models.AvailabilityWindow
}

func NewMemoryAvailability() *MemoryAvailability {
	return &MemoryAvailability{windows: map[string]models.AvailabilityWindow{}}
}

func sortWindows(windows []models.AvailabilityWindow) {
	slices.SortStableFunc(windows, func(a, b models.AvailabilityWindow) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return strings.Compare(a.StartTime, b.StartTime)
	})
}

func (r *MemoryAvailability) List(_ context.Context) ([]models.AvailabilityWindow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	windows := make([]models.AvailabilityWindow, 0, len(r.windows))
	for _, w := range r.windows {
		windows = append(windows, w)
	}
	sortWindows(windows)
	return windows, nil
}

func (r *MemoryAvailability) ListByDate(_ context.Context, date string) ([]models.AvailabilityWindow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	windows := []models.AvailabilityWindow{}
	for _, w := range r.windows {
		if w.Date == date {
			windows = append(windows, w)
		}
	}
	sortWindows(windows)
	return windows, nil
}

func (r *MemoryAvailability) Get(_ context.Context, id string) (*models.AvailabilityWindow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.windows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &w, nil
}

func (r *MemoryAvailability) Create(_ context.Context, w *models.AvailabilityWindow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	now := time.Now()
	w.CreatedAt, w.UpdatedAt = now, now
	r.windows[w.ID] = *w
	return nil
}

func (r *MemoryAvailability) Update(_ context.Context, w *models.AvailabilityWindow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.windows[w.ID]
	if !ok {
		return ErrNotFound
	}
	current.Date = w.Date
	current.StartTime = w.StartTime
	current.EndTime = w.EndTime
	current.IsActive = w.IsActive
	current.UpdatedAt = time.Now()
	r.windows[w.ID] = current
	return nil
}

func (r *MemoryAvailability) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.windows[id]; !ok {
		return ErrNotFound
	}
	delete(r.windows, id)
	return nil
}

func (r *MemoryAvailability) DeactivateBefore(_ context.Context, date string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, w := range r.windows {
		if w.IsActive && w.Date < date {
			w.IsActive = false
			w.UpdatedAt = time.Now()
			r.windows[id] = w
			n++
		}
	}
	return n, nil
}

// MemoryBookings keeps bookings in insertion order. lock guards LockDate
// scopes and is separate from mu so the scoped repository can still read and
// write.
type MemoryBookings struct {
	mu       sync.RWMutex
	lock     sync.Mutex
	bookings []models.Booking
}

func NewMemoryBookings() *MemoryBookings {
	return &MemoryBookings{}
}

func (r *MemoryBookings) List(_ context.Context) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.bookings), nil
}

func (r *MemoryBookings) Get(_ context.Context, id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.bookings {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryBookings) ListApprovedByDate(_ context.Context, date string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bookings := []models.Booking{}
	for _, b := range r.bookings {
		if b.Date == date && b.Status == types.BOOKING_APPROVED {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (r *MemoryBookings) Create(_ context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	now := time.Now()
	b.CreatedAt, b.UpdatedAt = now, now
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *MemoryBookings) UpdateStatus(_ context.Context, id string, status types.BookingStatus, notes *string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID != id {
			continue
		}
		r.bookings[i].Status = status
		if notes != nil {
			n := *notes
			r.bookings[i].AdminNotes = &n
		}
		r.bookings[i].UpdatedAt = time.Now()
		b := r.bookings[i]
		return &b, nil
	}
	return nil, ErrNotFound
}

// LockDate holds a single store wide lock, which is coarser than one lock
// per date but gives the same guarantee.
func (r *MemoryBookings) LockDate(ctx context.Context, _ string, fn func(BookingRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return fn(r)
}

type MemoryPackages struct {
	mu       sync.RWMutex
	packages []models.Package
}

func NewMemoryPackages() *MemoryPackages {
	return &MemoryPackages{}
}

func (r *MemoryPackages) List(_ context.Context, activeOnly bool) ([]models.Package, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	packages := []models.Package{}
	for _, p := range r.packages {
		if activeOnly && !p.IsActive {
			continue
		}
		packages = append(packages, p)
	}
	return packages, nil
}

func (r *MemoryPackages) Get(_ context.Context, id string) (*models.Package, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.packages {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryPackages) Create(_ context.Context, p *models.Package) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	r.packages = append(r.packages, *p)
	return nil
}

func (r *MemoryPackages) Update(_ context.Context, p *models.Package) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.packages {
		if r.packages[i].ID == p.ID {
			created, createdBy := r.packages[i].CreatedAt, r.packages[i].CreatedBy
			r.packages[i] = *p
			r.packages[i].CreatedAt = created
			r.packages[i].CreatedBy = createdBy
			r.packages[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryPackages) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.packages {
		if r.packages[i].ID == id {
			r.packages = slices.Delete(r.packages, i, i+1)
			return nil
		}
	}
	return ErrNotFound
}

type MemoryNotifications struct {
	mu   sync.RWMutex
	rows []models.EmailNotification
}

func NewMemoryNotifications() *MemoryNotifications {
	return &MemoryNotifications{}
}

func (r *MemoryNotifications) Create(_ context.Context, n *models.EmailNotification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	n.CreatedAt = time.Now()
	r.rows = append(r.rows, *n)
	return nil
}

func (r *MemoryNotifications) ListByBooking(_ context.Context, bookingID string) ([]models.EmailNotification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := []models.EmailNotification{}
	for _, n := range r.rows {
		if n.BookingID == bookingID {
			rows = append(rows, n)
		}
	}
	return rows, nil
}
