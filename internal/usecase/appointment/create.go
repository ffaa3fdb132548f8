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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID   uint
	ProviderID uint
	Date       time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   domain.Repository
	notify notify.Publisher
}

func NewCreateAppointment(
	repo domain.Repository,
	notifier notify.Publisher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		notify: notifier,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Provider resolution
	// --------------------------------------------------
	provider, err := uc.repo.GetProviderByID(ctx, in.ProviderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("not_a_provider")
		}
		return nil, err
	}

	// --------------------------------------------------
	// Temporal normalization + past-date check
	// --------------------------------------------------
	slot := domain.NormalizeHour(in.Date)
	if err := domain.CanBook(slot, time.Now()); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Slot conflict
	// --------------------------------------------------
	taken, err := uc.repo.SlotTaken(ctx, provider.ID, slot)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	// --------------------------------------------------
	// Requester role: providers cannot book other providers
	// --------------------------------------------------
	client, err := uc.repo.GetUserByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if client.Provider {
		return nil, httperr.ErrBusiness("provider_as_client")
	}

	// --------------------------------------------------
	// Persist (transactional re-check closes the race)
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:     client.ID,
		ProviderID: provider.ID,
		Date:       slot,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Notify the provider (best effort, after commit)
	// --------------------------------------------------
	uc.notify.Dispatch(notify.Event{
		Kind:        notify.KindBooking,
		RecipientID: provider.ID,
		Content: fmt.Sprintf(
			"Novo agendamento de %s para %s",
			client.Name,
			ptbr.FormatLong(slot),
		),
	})

	return ap, nil
}
