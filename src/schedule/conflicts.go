package schedule

import (
	"log"
	"studio/src/models"
)

func WindowInterval(w models.AvailabilityWindow) (Interval, error) {
	return NewInterval(w.Date, w.StartTime, w.EndTime)
}

func BookingInterval(b models.Booking) (Interval, error) {
	return NewInterval(b.Date, b.StartTime, b.EndTime)
}

// FindConflicts returns every approved booking overlapping candidate, skipping
// the booking with excludeID. Bookings in any other status never conflict.
func FindConflicts(candidate Interval, bookings []models.Booking, excludeID string) []models.Booking {
	var conflicts []models.Booking
	for _, b := range bookings {
		if b.ID == excludeID || !b.Status.Occupies() {
			continue
		}
		iv, err := BookingInterval(b)
		if err != nil {
			log.Printf("Skipping booking [%s] with unreadable time range %s %s-%s: %s\n", b.ID, b.Date, b.StartTime, b.EndTime, err.Error())
			continue
		}
		if Overlaps(candidate, iv) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}

// FindOverlappingWindow returns the first window overlapping candidate,
// ignoring excludeID. The active flag is not considered.
func FindOverlappingWindow(candidate Interval, windows []models.AvailabilityWindow, excludeID string) *models.AvailabilityWindow {
	for i := range windows {
		w := windows[i]
		if w.ID == excludeID {
			continue
		}
		iv, err := WindowInterval(w)
		if err != nil {
			log.Printf("Skipping availability [%s] with unreadable time range %s %s-%s: %s\n", w.ID, w.Date, w.StartTime, w.EndTime, err.Error())
			continue
		}
		if Overlaps(candidate, iv) {
			return &w
		}
	}
	return nil
}
