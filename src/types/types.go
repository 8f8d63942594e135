package types

import (
	"time"
)

type Timestamps struct {
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type SimpleRequestParams struct {
	ID string `uri:"id" binding:"required"`
}

type CreateAvailabilityRequestBody struct {
	Date      string `json:"date" binding:"omitempty,isodate"`
	StartTime string `json:"startTime" binding:"omitempty,clock"`
	EndTime   string `json:"endTime" binding:"omitempty,clock"`
}

type UpdateAvailabilityRequestBody struct {
	Date      string `json:"date" binding:"omitempty,isodate"`
	StartTime string `json:"startTime" binding:"omitempty,clock"`
	EndTime   string `json:"endTime" binding:"omitempty,clock"`
	IsActive  *bool  `json:"isActive,omitempty"`
}

type CreateBookingRequestBody struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Message        *string  `json:"message,omitempty"`
	Date           string   `json:"date" binding:"omitempty,isodate"`
	StartTime      string   `json:"startTime" binding:"omitempty,clock"`
	EndTime        string   `json:"endTime" binding:"omitempty,clock"`
	PackageID      string   `json:"packageId"`
	AvailabilityID *string  `json:"availabilityId,omitempty"`
	Duration       *float64 `json:"duration,omitempty"`
}

type UpdateBookingStatusRequestBody struct {
	Status     string  `json:"status" binding:"required"`
	AdminNotes *string `json:"adminNotes,omitempty"`
}

type CheckAvailabilityQuery struct {
	Date      string `form:"date" binding:"omitempty,isodate"`
	StartTime string `form:"startTime" binding:"omitempty,clock"`
	EndTime   string `form:"endTime" binding:"omitempty,clock"`
}

type SlotsQuery struct {
	Date      string   `form:"date" binding:"required,isodate"`
	PackageID string   `form:"packageId" binding:"required_without=Duration"`
	Duration  *float64 `form:"duration" binding:"omitempty,gt=0"`
}

type PackagesQueryFilters struct {
	Active bool `form:"active,omitempty"`
}

type PackageRequestBody struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	Price       float64 `json:"price" binding:"gte=0"`
	Duration    float64 `json:"duration" binding:"required,gt=0"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

type LoginRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
