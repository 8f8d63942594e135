package models

import "studio/src/types"

type Booking struct {
	ID             string              `gorm:"primarykey;type:text" json:"id"`
	Name           string              `gorm:"not null" json:"name"`
	Email          string              `gorm:"not null" json:"email"`
	Phone          string              `gorm:"not null" json:"phone"`
	Message        string              `json:"message"`
	Date           string              `gorm:"index:idx_bookings_date_status;not null" json:"date"`
	StartTime      string              `gorm:"not null" json:"startTime"`
	EndTime        string              `gorm:"not null" json:"endTime"`
	PackageID      string              `gorm:"type:text;index;not null" json:"packageId"`
	AvailabilityID *string             `gorm:"type:text" json:"availabilityId"`
	Duration       float64             `gorm:"not null" json:"duration"`
	Status         types.BookingStatus `gorm:"index:idx_bookings_date_status;not null" json:"status"`
	AdminNotes     *string             `json:"adminNotes"`

	types.Timestamps
}
