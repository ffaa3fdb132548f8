package appointment

import (
	"context"
	"time"

	"github.com/agendame/agenda-api/internal/models"
)

// PageSize is the fixed page size for client listings.
const PageSize = 20

type Repository interface {
	// -------- Users --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetProviderByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Appointment (create / conflict) --------
	SlotTaken(
		ctx context.Context,
		providerID uint,
		date time.Time,
	) (bool, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (cancel) --------
	GetAppointmentWithProvider(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListForClient(
		ctx context.Context,
		clientID uint,
		page int,
	) ([]models.Appointment, error)
}
