package models

import "studio/src/types"

type AvailabilityWindow struct {
	ID        string `gorm:"primarykey;type:text" json:"id"`
	Date      string `gorm:"index;not null" json:"date"`
	StartTime string `gorm:"not null" json:"startTime"`
	EndTime   string `gorm:"not null" json:"endTime"`
	IsActive  bool   `gorm:"not null" json:"isActive"`

	types.Timestamps
}

func (AvailabilityWindow) TableName() string {
	return "availability"
}
