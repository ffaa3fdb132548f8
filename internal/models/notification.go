package models

import "time"

// Notification is an in-app message created for a provider when a client
// books one of their slots.
type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Content     string `gorm:"size:255;not null" json:"content"`
	RecipientID uint   `gorm:"index;not null" json:"recipient_id"`
	Read        bool   `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
