package schedule

import (
	"math"
	"studio/src/models"
)

// SLOT_STEP_MINUTES is the distance between offered start times. Slots always
// start on the hour inside a window, whatever the session duration.
const SLOT_STEP_MINUTES = 60

type Slot struct {
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	AvailabilityID string `json:"availabilityId"`
}

func DurationMinutes(hours float64) int {
	return int(math.Round(hours * 60))
}

// GenerateSlots returns every [start, start+duration) that fits inside window,
// stepping start by SLOT_STEP_MINUTES, in ascending order.
func GenerateSlots(window Interval, availabilityID string, durationHours float64) []Slot {
	duration := DurationMinutes(durationHours)
	if duration <= 0 {
		return nil
	}
	var slots []Slot
	for start := window.Start; start+duration <= window.End; start += SLOT_STEP_MINUTES {
		slots = append(slots, Slot{
			StartTime:      FormatClock(start),
			EndTime:        FormatClock(start + duration),
			AvailabilityID: availabilityID,
		})
	}
	return slots
}

// WindowSlots generates slots for each window in order. Windows that overlap
// each other both contribute; nothing is deduplicated.
func WindowSlots(windows []models.AvailabilityWindow, durationHours float64) []Slot {
	slots := []Slot{}
	for _, w := range windows {
		iv, err := WindowInterval(w)
		if err != nil {
			continue
		}
		slots = append(slots, GenerateSlots(iv, w.ID, durationHours)...)
	}
	return slots
}

// FreeSlots drops the slots that overlap an approved booking on date.
func FreeSlots(date string, slots []Slot, bookings []models.Booking) []Slot {
	free := make([]Slot, 0, len(slots))
	for _, slot := range slots {
		iv, err := NewInterval(date, slot.StartTime, slot.EndTime)
		if err != nil {
			continue
		}
		if len(FindConflicts(iv, bookings, "")) == 0 {
			free = append(free, slot)
		}
	}
	return free
}
