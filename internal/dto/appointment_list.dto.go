package dto

import (
	"time"

	"github.com/agendame/agenda-api/internal/models"
)

type AvatarDTO struct {
	ID   uint   `json:"id"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

type ProviderDTO struct {
	ID     uint       `json:"id"`
	Name   string     `json:"name"`
	Avatar *AvatarDTO `json:"avatar"`
}

type AppointmentListDTO struct {
	ID       uint        `json:"id"`
	Date     time.Time   `json:"date"`
	Provider ProviderDTO `json:"provider"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	out := AppointmentListDTO{
		ID:   ap.ID,
		Date: ap.Date,
		Provider: ProviderDTO{
			ID:   ap.Provider.ID,
			Name: ap.Provider.Name,
		},
	}

	if ap.Provider.Avatar != nil {
		out.Provider.Avatar = &AvatarDTO{
			ID:   ap.Provider.Avatar.ID,
			Path: ap.Provider.Avatar.Path,
			URL:  ap.Provider.Avatar.URL,
		}
	}

	return out
}
