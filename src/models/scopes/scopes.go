package scopes

import (
	"studio/src/types"

	"gorm.io/gorm"
)

func WithID(id string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

func OnDate(date string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("date = ?", date)
	}
}

func WithApprovedStatus(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", types.BOOKING_APPROVED)
}

func Active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
