package directory

import (
	"errors"

	"mamoji/core/fetch"
	"mamoji/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the emoji directory.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the directory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	servers := app.Group("/servers")
	servers.Get("/", h.HandleListServers)
	servers.Post("/:host", h.HandleRegister)
	servers.Get("/:host/emojis", h.HandleCatalog)
	servers.Patch("/:host/emojis", h.HandleAnnotate)

	app.Get("/api/:host", h.HandleCopyStatus)
}

// statusFor maps engine errors onto HTTP status codes.
func statusFor(err error) int {
	var (
		discovery *DiscoveryError
		dup       *DuplicateKeyError
		validate  *ValidationError
		conn      *fetch.ConnectivityError
	)
	switch {
	case errors.As(err, &discovery):
		return fiber.StatusUnprocessableEntity
	case errors.As(err, &dup):
		return fiber.StatusConflict
	case errors.As(err, &validate), errors.As(err, &conn):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleListServers lists every registered server.
// @Summary List Servers
// @Description Lists all registered servers with their emoji counts.
// @Tags directory
// @Produce json
// @Success 200 {array} models.ServerOverview "Registered Servers"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /servers [get]
func (h *Handler) HandleListServers(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	servers, err := h.service.Servers(c.Context())
	if err != nil {
		l.Error("Server listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(servers)
}

// HandleRegister registers a host and runs its initial sync.
// @Summary Register Server
// @Description Discovers the host's software family and syncs its emoji catalog.
// @Tags directory
// @Produce json
// @Param host path string true "Host (e.g. example.social)"
// @Success 200 {array} models.Emoji "Synced Catalog"
// @Failure 409 {object} map[string]string "Duplicated shortcodes (server removed)"
// @Failure 422 {object} map[string]string "Unsupported or undiscoverable host"
// @Failure 502 {object} map[string]string "Remote server unreachable or malformed"
// @Router /servers/{host} [post]
func (h *Handler) HandleRegister(c *fiber.Ctx) error {
	host := c.Params("host")
	l := logger.WithRayID(h.service.logger, c)

	emojis, err := h.service.Register(c.Context(), host)
	if err != nil {
		l.Warn("Server registration failed", zap.String("host", host), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(emojis)
}

// HandleCatalog returns the emoji catalog for a host through the cache gate.
// @Summary Get Catalog
// @Description Returns the emoji catalog, refreshing from the remote server when the stored copy is stale.
// @Tags directory
// @Produce json
// @Param host path string true "Host"
// @Success 200 {array} models.Emoji "Catalog"
// @Failure 409 {object} map[string]string "Duplicated shortcodes (server removed)"
// @Failure 502 {object} map[string]string "Remote server unreachable or malformed"
// @Router /servers/{host}/emojis [get]
func (h *Handler) HandleCatalog(c *fiber.Ctx) error {
	host := c.Params("host")
	l := logger.WithRayID(h.service.logger, c)

	emojis, err := h.service.Catalog(c.Context(), host)
	if err != nil {
		l.Warn("Catalog sync failed", zap.String("host", host), zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(emojis)
}

type annotateRequest struct {
	Shortcodes []string  `json:"shortcodes"`
	Copyable   bool      `json:"copyable"`
	Sensitive  bool      `json:"sensitive"`
	Author     string    `json:"author"`
	Tags       *[]string `json:"tags"`
	Note       *string   `json:"note"`
}

// HandleAnnotate applies curated metadata to selected emoji.
// @Summary Annotate Emoji
// @Description Updates operator-curated fields (copy permission, sensitivity, tags, note, author) for the selected emoji of a host.
// @Tags directory
// @Accept json
// @Produce json
// @Param host path string true "Host"
// @Param body body annotateRequest true "Annotation"
// @Success 200 {object} map[string]string "Updated"
// @Failure 400 {object} map[string]string "Malformed request body"
// @Failure 422 {object} map[string]string "Unknown emoji or unresolvable author"
// @Router /servers/{host}/emojis [patch]
func (h *Handler) HandleAnnotate(c *fiber.Ctx) error {
	host := c.Params("host")
	l := logger.WithRayID(h.service.logger, c)

	var req annotateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "malformed request body"})
	}

	ann := Annotation{
		Copyable:  req.Copyable,
		Sensitive: req.Sensitive,
		Tags:      nil,
		Note:      req.Note,
	}
	if req.Tags != nil {
		ann.Tags = *req.Tags
	}
	if req.Author != "" {
		ann.AuthorHandle = &req.Author
	}

	if err := h.service.Annotate(c.Context(), host, req.Shortcodes, ann); err != nil {
		l.Warn("Annotation failed", zap.String("host", host), zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "updated"})
}

// HandleCopyStatus serves the public copy-permission listing for a host.
// @Summary Copy Permissions
// @Description Public per-emoji copy-permission listing for other instances.
// @Tags directory
// @Produce json
// @Param host path string true "Host"
// @Success 200 {array} models.CopyStatus "Copy permissions"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/{host} [get]
func (h *Handler) HandleCopyStatus(c *fiber.Ctx) error {
	host := c.Params("host")
	l := logger.WithRayID(h.service.logger, c)

	status, err := h.service.CopyStatus(c.Context(), host)
	if err != nil {
		l.Error("Copy status listing failed", zap.String("host", host), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(status)
}
