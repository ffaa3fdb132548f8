package handlers

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	xdraw "golang.org/x/image/draw"
	"gorm.io/gorm"

	"github.com/agendame/agenda-api/internal/cache"
	"github.com/agendame/agenda-api/internal/httperr"
	"github.com/agendame/agenda-api/internal/httpresp"
	"github.com/agendame/agenda-api/internal/middleware"
	"github.com/agendame/agenda-api/internal/models"
	"github.com/agendame/agenda-api/internal/storage"
)

const avatarMaxSize = 256

type FileHandler struct {
	db       *gorm.DB
	uploader storage.Uploader
	cache    *cache.Cache
}

func NewFileHandler(db *gorm.DB, uploader storage.Uploader, c *cache.Cache) *FileHandler {
	return &FileHandler{db: db, uploader: uploader, cache: c}
}

// UploadAvatar accepts a JPEG/PNG under the "file" form field, re-encodes it
// as a bounded webp and attaches it to the authenticated user.
func (h *FileHandler) UploadAvatar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "File is required")
		return
	}

	src, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Could not read file")
		return
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "File must be a JPEG or PNG image")
		return
	}

	encoded, err := encodeAvatar(img)
	if err != nil {
		httperr.Internal(c, "encode_failed", "Failed to process image")
		return
	}

	key := "avatars/" + uuid.NewString() + ".webp"

	url, err := h.uploader.Upload(c.Request.Context(), key, "image/webp", encoded)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Failed to store image")
		return
	}

	file := models.File{
		Name: fh.Filename,
		Path: key,
		URL:  url,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&file).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			Update("avatar_id", file.ID).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_avatar", "Failed to save avatar")
		return
	}

	// avatar shows up in the provider directory
	h.cache.Delete(c.Request.Context(), providersCacheKey)

	httpresp.Created(c, file)
}

func encodeAvatar(img image.Image) ([]byte, error) {
	img = shrink(img, avatarMaxSize)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// shrink scales img down so its longest side is at most max pixels. Smaller
// images pass through untouched.
func shrink(img image.Image, max int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return img
	}

	if w > h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
