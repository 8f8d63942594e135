package models

import (
	"studio/src/types"
	"time"
)

// EmailNotification is an audit row written once per email attempt.
type EmailNotification struct {
	ID        string                   `gorm:"primarykey;type:text" json:"id"`
	BookingID string                   `gorm:"type:text;index;not null" json:"bookingId"`
	Type      types.NotificationType   `gorm:"not null" json:"type"`
	Recipient string                   `gorm:"not null" json:"recipient"`
	Status    types.NotificationStatus `gorm:"not null" json:"status"`
	SentAt    *time.Time               `json:"sentAt"`
	CreatedAt time.Time                `gorm:"autoCreateTime" json:"createdAt"`
}
