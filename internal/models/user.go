package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// Provider marks the account as bookable. Clients and providers share
	// this table.
	Provider bool `gorm:"default:false" json:"provider"`

	AvatarID *uint `json:"avatar_id"`
	Avatar   *File `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"avatar"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
