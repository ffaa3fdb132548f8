package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendame/agenda-api/internal/cache"
	"github.com/agendame/agenda-api/internal/dto"
	"github.com/agendame/agenda-api/internal/httperr"
	"github.com/agendame/agenda-api/internal/httpresp"
	"github.com/agendame/agenda-api/internal/models"
)

const (
	providersCacheKey = "providers:list"
	providersCacheTTL = time.Minute
)

// ProviderHandler serves the bookable-provider directory. The listing is
// display-only and read-heavy, so it sits behind a short Redis cache.
type ProviderHandler struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewProviderHandler(db *gorm.DB, c *cache.Cache) *ProviderHandler {
	return &ProviderHandler{db: db, cache: c}
}

func (h *ProviderHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var out []dto.ProviderDTO
	if h.cache.GetJSON(ctx, providersCacheKey, &out) {
		httpresp.List(c, 1, out)
		return
	}

	var providers []models.User
	if err := h.db.WithContext(ctx).
		Preload("Avatar").
		Where("provider = ?", true).
		Order("name ASC").
		Find(&providers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_providers", "Internal server error")
		return
	}

	out = make([]dto.ProviderDTO, 0, len(providers))
	for _, p := range providers {
		item := dto.ProviderDTO{ID: p.ID, Name: p.Name}
		if p.Avatar != nil {
			item.Avatar = &dto.AvatarDTO{
				ID:   p.Avatar.ID,
				Path: p.Avatar.Path,
				URL:  p.Avatar.URL,
			}
		}
		out = append(out, item)
	}

	h.cache.SetJSON(ctx, providersCacheKey, out, providersCacheTTL)

	httpresp.List(c, 1, out)
}
