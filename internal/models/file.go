package models

import "time"

// File is an uploaded avatar image stored in the object store.
type File struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null" json:"name"`
	Path string `gorm:"size:255;not null" json:"path"`
	URL  string `gorm:"size:512;not null" json:"url"`

	CreatedAt time.Time `json:"created_at"`
}
