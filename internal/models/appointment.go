package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID is the client who owns the appointment.
	UserID uint `gorm:"index;not null" json:"user_id"`

	ProviderID uint `gorm:"index;not null" json:"provider_id"`
	Provider   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"provider"`

	// Date is always truncated to the start of an hour.
	Date time.Time `gorm:"not null" json:"date"`

	CanceledAt *time.Time `json:"canceled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
