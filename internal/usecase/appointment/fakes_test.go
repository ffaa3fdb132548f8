package appointment

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/agendame/agenda-api/internal/httperr"
	"github.com/agendame/agenda-api/internal/models"
	"github.com/agendame/agenda-api/internal/notify"
)

// fakeRepo is an in-memory Repository for exercising the use cases without
// Postgres.
type fakeRepo struct {
	users        map[uint]*models.User
	appointments []*models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:  map[uint]*models.User{},
		nextID: 1,
	}
}

func (r *fakeRepo) addUser(u models.User) *models.User {
	cp := u
	r.users[cp.ID] = &cp
	return &cp
}

func (r *fakeRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeRepo) GetProviderByID(_ context.Context, id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok || !u.Provider {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeRepo) SlotTaken(_ context.Context, providerID uint, date time.Time) (bool, error) {
	for _, ap := range r.appointments {
		if ap.ProviderID == providerID && ap.Date.Equal(date) && ap.CanceledAt == nil {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	taken, _ := r.SlotTaken(ctx, ap.ProviderID, ap.Date)
	if taken {
		return httperr.ErrBusiness("slot_taken")
	}
	ap.ID = r.nextID
	r.nextID++
	r.appointments = append(r.appointments, ap)
	return nil
}

func (r *fakeRepo) GetAppointmentWithProvider(_ context.Context, id uint) (*models.Appointment, error) {
	for _, ap := range r.appointments {
		if ap.ID == id {
			if p, ok := r.users[ap.ProviderID]; ok {
				ap.Provider = *p
			}
			return ap, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i, existing := range r.appointments {
		if existing.ID == ap.ID {
			r.appointments[i] = ap
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListForClient(_ context.Context, clientID uint, page int) ([]models.Appointment, error) {
	var all []models.Appointment
	for _, ap := range r.appointments {
		if ap.UserID == clientID && ap.CanceledAt == nil {
			all = append(all, *ap)
		}
	}

	offset := (page - 1) * 20
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + 20
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

// fakePublisher captures dispatched events synchronously.
type fakePublisher struct {
	events []notify.Event
}

func (p *fakePublisher) Dispatch(ev notify.Event) {
	p.events = append(p.events, ev)
}
