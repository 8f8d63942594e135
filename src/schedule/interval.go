// Package schedule holds the time arithmetic behind availability windows,
// bookable slots and booking conflicts. Times are "HH:MM" strings on an
// ISO "YYYY-MM-DD" date and are compared as minutes since midnight.
package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"studio/src/types"
	"time"
)

const DATE_LAYOUT = "2006-01-02"

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)
)

var (
	ErrInvalidDate  = &types.ValidationError{Msg: "Invalid date format. Use YYYY-MM-DD"}
	ErrInvalidClock = &types.ValidationError{Msg: "Invalid time format. Use HH:MM"}
	ErrEmptyRange   = &types.ValidationError{Msg: "End time must be after start time"}
)

// Interval is the half-open range [Start, End) in minutes on Date.
type Interval struct {
	Date  string
	Start int
	End   int
}

func ValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(DATE_LAYOUT, s)
	return err == nil
}

func ParseDate(s string) error {
	if !ValidDate(s) {
		return ErrInvalidDate
	}
	return nil
}

// ParseClock converts a zero-padded 24-hour "HH:MM" into minutes since midnight.
func ParseClock(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, ErrInvalidClock
	}
	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	return hh*60 + mm, nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NewInterval validates date, start and end and requires start < end.
func NewInterval(date, start, end string) (Interval, error) {
	if err := ParseDate(date); err != nil {
		return Interval{}, err
	}
	s, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}
	if s >= e {
		return Interval{}, ErrEmptyRange
	}
	return Interval{Date: date, Start: s, End: e}, nil
}

// Overlaps reports whether a and b share any minute. Ranges on different
// dates never overlap, and ranges that only touch at an endpoint do not.
func Overlaps(a, b Interval) bool {
	return a.Date == b.Date && a.Start < b.End && a.End > b.Start
}

func (i Interval) Overlaps(o Interval) bool {
	return Overlaps(i, o)
}
