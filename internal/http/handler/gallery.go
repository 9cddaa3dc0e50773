package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"clubsite/internal/auth"
	"clubsite/internal/service"
)

// AdminPasswordHeader carries the admin secret for gallery writes.
const AdminPasswordHeader = "X-Admin-Password"

// requireAdmin rejects requests whose admin header does not match secret.
func requireAdmin(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !auth.Matches(secret, c.Get(AdminPasswordHeader)) {
			return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized")
		}
		return c.Next()
	}
}

func galleryError(c *fiber.Ctx, log *zap.Logger, err error) error {
	switch {
	case errors.Is(err, service.ErrUnavailable):
		return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "gallery is not available")
	case errors.Is(err, service.ErrNotAnImage):
		return writeError(c, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE", "only images can be uploaded")
	case errors.Is(err, service.ErrInvalidKey):
		return writeError(c, fiber.StatusBadRequest, "INVALID_KEY", "invalid gallery key")
	}
	log.Error("gallery request failed", zap.String("request_id", requestIDFromCtx(c)), zap.Error(err))
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// ListGallery godoc
// @Summary List gallery images with download URLs
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} errorPayload
// @Router /api/gallery [get]
func ListGallery(svc service.GalleryService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return galleryError(c, log, err)
		}
		return c.JSON(fiber.Map{"success": true, "items": items})
	}
}

// UploadGallery godoc
// @Summary Upload a gallery image (admin)
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "image"
// @Success 201 {object} map[string]any
// @Failure 401 {object} errorPayload
// @Failure 415 {object} errorPayload
// @Router /api/gallery [post]
func UploadGallery(svc service.GalleryService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		item, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return galleryError(c, log, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "item": item})
	}
}

// DeleteGallery godoc
// @Summary Delete a gallery image (admin)
// @Param key path string true "object key, e.g. gallery/<uuid>.jpg"
// @Success 204
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Router /api/gallery/{key} [delete]
func DeleteGallery(svc service.GalleryService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("*")); err != nil {
			return galleryError(c, log, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
