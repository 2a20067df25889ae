package mirror

import (
	"errors"

	"mamoji/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the emoji mirror.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the mirror routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/mirror")
	group.Post("/:host", h.HandleMirror)
	group.Get("/:host/:file", h.HandleImage)
}

// HandleMirror mirrors every emoji image of a host into object storage.
// @Summary Mirror Host
// @Description Downloads the host's emoji images into object storage. Individual image failures are reported, not fatal.
// @Tags mirror
// @Produce json
// @Param host path string true "Server host"
// @Success 200 {object} Report "Mirror Report"
// @Failure 500 {object} map[string]string "Mirror run failed"
// @Router /mirror/{host} [post]
func (h *Handler) HandleMirror(c *fiber.Ctx) error {
	host := c.Params("host")
	l := logger.WithRayID(h.logger, c)

	report, err := h.service.Mirror(c.Context(), host)
	if err != nil {
		l.Error("Mirror run failed", zap.String("host", host), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleImage serves a mirrored emoji image from object storage.
// @Summary Get Mirrored Image
// @Description Streams a previously mirrored emoji image.
// @Tags mirror
// @Produce octet-stream
// @Param host path string true "Server host"
// @Param file path string true "Image file name (shortcode plus extension)"
// @Success 200 {file} binary "Image data"
// @Failure 404 {object} map[string]string "Image was never mirrored"
// @Router /mirror/{host}/{file} [get]
func (h *Handler) HandleImage(c *fiber.Ctx) error {
	host := c.Params("host")
	file := c.Params("file")
	l := logger.WithRayID(h.logger, c)

	obj, err := h.service.Image(c.Context(), host, file)
	if err != nil {
		var minioErr minio.ErrorResponse
		if errors.As(err, &minioErr) && minioErr.Code == "NoSuchKey" {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "image not found"})
		}
		l.Error("Image lookup failed",
			zap.String("host", host),
			zap.String("file", file),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStream(obj)
}
