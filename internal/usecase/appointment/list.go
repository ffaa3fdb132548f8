package appointment

import (
	"context"

	domain "github.com/agendame/agenda-api/internal/domain/appointment"
	"github.com/agendame/agenda-api/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns the client's upcoming (non-canceled) appointments, oldest
// first. page is 1-based; anything below 1 is clamped.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	clientID uint,
	page int,
) ([]models.Appointment, error) {

	if page < 1 {
		page = 1
	}

	return uc.repo.ListForClient(ctx, clientID, page)
}
