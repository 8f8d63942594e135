package services

import (
	"studio/src/schedule"
	"time"
)

func mustDate(s string) time.Time {
	t, err := time.Parse(schedule.DATE_LAYOUT, s)
	if err != nil {
		panic(err)
	}
	return t
}
