package author

import (
	"errors"

	"mamoji/core/fetch"
	"mamoji/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for author resolution.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the author routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/authors")
	group.Post("/:handle", h.HandleResolve)
	group.Get("/:handle", h.HandleGet)
}

// HandleResolve resolves a federated handle into a cached author profile.
// @Summary Resolve Author
// @Description Resolves name@host through webfinger and the actor document, caching the profile.
// @Tags author
// @Produce json
// @Param handle path string true "Handle (name@host)"
// @Success 200 {object} models.Author "Resolved Author"
// @Failure 422 {object} map[string]string "Handle could not be resolved"
// @Failure 502 {object} map[string]string "Remote server unreachable"
// @Router /authors/{handle} [post]
func (h *Handler) HandleResolve(c *fiber.Ctx) error {
	handle := c.Params("handle")
	l := logger.WithRayID(h.service.logger, c)

	author, err := h.service.Resolve(c.Context(), handle)
	if err != nil {
		l.Warn("Author resolution failed", zap.String("handle", handle), zap.Error(err))

		status := fiber.StatusInternalServerError
		var resolveErr *ResolveError
		var connErr *fetch.ConnectivityError
		switch {
		case errors.As(err, &resolveErr):
			status = fiber.StatusUnprocessableEntity
		case errors.As(err, &connErr):
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(author)
}

// HandleGet returns a cached author without any network access.
// @Summary Get Author
// @Description Returns the cached profile for a handle, if it was resolved before.
// @Tags author
// @Produce json
// @Param handle path string true "Handle (name@host)"
// @Success 200 {object} models.Author "Cached Author"
// @Failure 404 {object} map[string]string "Handle was never resolved"
// @Router /authors/{handle} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	handle := c.Params("handle")
	l := logger.WithRayID(h.service.logger, c)

	author, err := h.service.Author(c.Context(), handle)
	if err != nil {
		l.Error("Author lookup failed", zap.String("handle", handle), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if author == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "author not found"})
	}
	return c.JSON(author)
}
