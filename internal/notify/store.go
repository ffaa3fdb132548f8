package notify

import (
	"context"

	"gorm.io/gorm"

	"github.com/agendame/agenda-api/internal/models"
)

// Store persists in-app notifications.
type Store interface {
	CreateNotification(ctx context.Context, n *models.Notification) error
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateNotification(ctx context.Context, n *models.Notification) error {
	return s.db.WithContext(ctx).Create(n).Error
}

var _ Store = (*GormStore)(nil)
