package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "github.com/agendame/agenda-api/internal/domain/appointment"
	"github.com/agendame/agenda-api/internal/httperr"
	"github.com/agendame/agenda-api/internal/models"
	"github.com/agendame/agenda-api/internal/notify"
	"github.com/agendame/agenda-api/internal/ptbr"
)

type CancelAppointment struct {
	repo   domain.Repository
	notify notify.Publisher
}

func NewCancelAppointment(
	repo domain.Repository,
	notifier notify.Publisher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:   repo,
		notify: notifier,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	clientID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentWithProvider(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	if ap.UserID != clientID {
		return nil, httperr.ErrBusiness("not_appointment_owner")
	}

	if err := domain.Cancel(ap, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.notify.Dispatch(notify.Event{
		Kind:    notify.KindCancellation,
		To:      ap.Provider.Email,
		Subject: "Agendamento cancelado",
		Body: fmt.Sprintf(
			"O agendamento de %s foi cancelado pelo cliente.",
			ptbr.FormatLong(ap.Date),
		),
	})

	return ap, nil
}
