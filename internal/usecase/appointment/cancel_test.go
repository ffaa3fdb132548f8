package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agendame/agenda-api/internal/httperr"
	"github.com/agendame/agenda-api/internal/models"
	"github.com/agendame/agenda-api/internal/notify"
)

func setupCancel(hoursAhead int) (*fakeRepo, *fakePublisher, *CancelAppointment) {
	repo := newFakeRepo()
	repo.addUser(models.User{ID: 1, Name: "Ana"})
	repo.addUser(models.User{ID: 2, Name: "Bruno", Email: "bruno@example.com", Provider: true})

	repo.appointments = append(repo.appointments, &models.Appointment{
		ID:         10,
		UserID:     1,
		ProviderID: 2,
		Date:       futureSlot(hoursAhead),
	})

	pub := &fakePublisher{}
	return repo, pub, NewCancelAppointment(repo, pub)
}

func TestCancelAppointment(t *testing.T) {
	_, pub, uc := setupCancel(3)

	ap, err := uc.Execute(context.Background(), 1, 10)
	require.NoError(t, err)
	require.NotNil(t, ap.CanceledAt)

	// cancellation email goes to the provider
	require.Len(t, pub.events, 1)
	ev := pub.events[0]
	require.Equal(t, notify.KindCancellation, ev.Kind)
	require.Equal(t, "bruno@example.com", ev.To)
	require.Equal(t, "Agendamento cancelado", ev.Subject)
	require.NotEmpty(t, ev.Body)
}

func TestCancelAppointmentNotFound(t *testing.T) {
	_, pub, uc := setupCancel(3)

	_, err := uc.Execute(context.Background(), 1, 999)
	require.True(t, httperr.IsBusiness(err, "appointment_not_found"))
	require.Empty(t, pub.events)
}

func TestCancelAppointmentNotOwner(t *testing.T) {
	repo, pub, uc := setupCancel(3)

	_, err := uc.Execute(context.Background(), 2, 10)
	require.True(t, httperr.IsBusiness(err, "not_appointment_owner"))
	require.Nil(t, repo.appointments[0].CanceledAt)
	require.Empty(t, pub.events)
}

func TestCancelAppointmentTooLate(t *testing.T) {
	repo, pub, uc := setupCancel(1)

	_, err := uc.Execute(context.Background(), 1, 10)
	require.True(t, httperr.IsBusiness(err, "too_late_to_cancel"))
	require.Nil(t, repo.appointments[0].CanceledAt)
	require.Empty(t, pub.events)
}

func TestCancelAppointmentTwiceBehavesAsGone(t *testing.T) {
	_, _, uc := setupCancel(5)

	_, err := uc.Execute(context.Background(), 1, 10)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), 1, 10)
	require.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestListExcludesCanceled(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(models.User{ID: 1, Name: "Ana"})
	repo.addUser(models.User{ID: 2, Name: "Bruno", Provider: true})

	now := time.Now()
	repo.appointments = append(repo.appointments,
		&models.Appointment{ID: 1, UserID: 1, ProviderID: 2, Date: futureSlot(4)},
		&models.Appointment{ID: 2, UserID: 1, ProviderID: 2, Date: futureSlot(6), CanceledAt: &now},
		&models.Appointment{ID: 3, UserID: 1, ProviderID: 2, Date: futureSlot(8)},
	)

	uc := NewListAppointments(repo)

	aps, err := uc.Execute(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, aps, 2)
	for _, ap := range aps {
		require.Nil(t, ap.CanceledAt)
	}
}

func TestListPagination(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(models.User{ID: 1, Name: "Ana"})

	for i := 0; i < 45; i++ {
		repo.appointments = append(repo.appointments, &models.Appointment{
			ID: uint(i + 1), UserID: 1, ProviderID: 2, Date: futureSlot(i + 2),
		})
	}

	uc := NewListAppointments(repo)

	page1, err := uc.Execute(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, page1, 20)

	page3, err := uc.Execute(context.Background(), 1, 3)
	require.NoError(t, err)
	require.Len(t, page3, 5)

	// page below 1 is clamped to the first page
	clamped, err := uc.Execute(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Equal(t, page1, clamped)
}
