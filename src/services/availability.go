package services

import (
	"context"
	"log"
	"studio/src/models"
	"studio/src/schedule"
	"studio/src/store"
	"studio/src/types"
	"time"
)

const (
	msgMissingWindowFields = "Missing required fields: date, startTime, endTime"
	msgWindowOverlap       = "Time slot overlaps with existing availability"
	resourceWindow         = "Availability slot"
)

type AvailabilityService struct {
	repo  store.AvailabilityRepository
	cache WindowCache
}

func NewAvailabilityService(repo store.AvailabilityRepository, cache WindowCache) *AvailabilityService {
	if cache == nil {
		cache = NopCache{}
	}
	return &AvailabilityService{repo: repo, cache: cache}
}

func (s *AvailabilityService) List(ctx context.Context) ([]models.AvailabilityWindow, error) {
	if windows, ok := s.cache.Get(ctx); ok {
		return windows, nil
	}
	windows, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(err, resourceWindow, "list availability")
	}
	s.cache.Set(ctx, windows)
	return windows, nil
}

func validateWindow(date, start, end string) (schedule.Interval, error) {
	if date == "" || start == "" || end == "" {
		return schedule.Interval{}, &types.ValidationError{Msg: msgMissingWindowFields}
	}
	return schedule.NewInterval(date, start, end)
}

// Create adds an active window. A failure while scanning for overlaps is
// logged and does not block creation.
func (s *AvailabilityService) Create(ctx context.Context, body types.CreateAvailabilityRequestBody) (*models.AvailabilityWindow, error) {
	candidate, err := validateWindow(body.Date, body.StartTime, body.EndTime)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.ListByDate(ctx, body.Date)
	if err != nil {
		log.Printf("Error checking overlapping availability on %s: %s\n", body.Date, err.Error())
	} else if w := schedule.FindOverlappingWindow(candidate, existing, ""); w != nil {
		return nil, &types.ConflictError{Msg: msgWindowOverlap, Conflicts: []string{w.ID}}
	}

	window := &models.AvailabilityWindow{
		Date:      body.Date,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		IsActive:  true,
	}
	if err := s.repo.Create(ctx, window); err != nil {
		return nil, storeError(err, resourceWindow, "create availability")
	}
	s.cache.Invalidate(ctx)
	return window, nil
}

// Update replaces every field of the window. IsActive defaults to true when
// omitted.
func (s *AvailabilityService) Update(ctx context.Context, id string, body types.UpdateAvailabilityRequestBody) (*models.AvailabilityWindow, error) {
	candidate, err := validateWindow(body.Date, body.StartTime, body.EndTime)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.ListByDate(ctx, body.Date)
	if err != nil {
		return nil, storeError(err, resourceWindow, "check overlapping availability")
	}
	if w := schedule.FindOverlappingWindow(candidate, existing, id); w != nil {
		return nil, &types.ConflictError{Msg: msgWindowOverlap, Conflicts: []string{w.ID}}
	}

	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}
	window := &models.AvailabilityWindow{
		ID:        id,
		Date:      body.Date,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		IsActive:  isActive,
	}
	if err := s.repo.Update(ctx, window); err != nil {
		return nil, storeError(err, resourceWindow, "update availability")
	}
	s.cache.Invalidate(ctx)
	updated, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, storeError(err, resourceWindow, "reload availability")
	}
	return updated, nil
}

// Delete removes the window. Bookings carved from it keep their
// availabilityId.
func (s *AvailabilityService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err, resourceWindow, "delete availability")
	}
	s.cache.Invalidate(ctx)
	return nil
}

// DeactivatePast clears the active flag on windows dated before now's date.
func (s *AvailabilityService) DeactivatePast(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.repo.DeactivateBefore(ctx, now.Format(schedule.DATE_LAYOUT))
	if err != nil {
		return 0, storeError(err, resourceWindow, "deactivate past availability")
	}
	if n > 0 {
		s.cache.Invalidate(ctx)
	}
	return n, nil
}
