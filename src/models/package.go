package models

import "studio/src/types"

type Package struct {
	ID          string  `gorm:"primarykey;type:text" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"index" json:"slug"`
	Description string  `json:"description"`
	Image       *string `json:"image"`
	Price       float64 `gorm:"not null" json:"price"`
	Duration    float64 `gorm:"not null" json:"duration"`
	IsActive    bool    `gorm:"not null" json:"isActive"`
	CreatedBy   string  `json:"createdBy,omitempty"`

	types.Timestamps
}
