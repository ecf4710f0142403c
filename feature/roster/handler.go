package roster

import (
	"errors"

	"roster-sync/core/logger"
	"roster-sync/core/remote"
	"roster-sync/feature/roster/faction"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the roster feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the roster routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/roster")
	group.Get("/factions", h.HandleListFactions)
	group.Get("/files", h.HandleCheckFiles)
	group.Get("/validate", h.HandleValidateAll)
	group.Get("/validate/:faction", h.HandleValidate)
	group.Get("/generate/:faction", h.HandleGenerate)
	group.Post("/publish/:faction", h.HandlePublish)
}

// HandleListFactions returns the canonical faction keys and display names.
func (h *Handler) HandleListFactions(c *fiber.Ctx) error {
	factions := make([]fiber.Map, 0, len(faction.All()))
	for _, key := range faction.All() {
		factions = append(factions, fiber.Map{
			"id":   key,
			"name": faction.DisplayName(key),
		})
	}
	return c.JSON(factions)
}

// HandleCheckFiles reports which faction CSV files exist in the object store.
func (h *Handler) HandleCheckFiles(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	statuses, err := h.service.CheckFiles(c.Context())
	if err != nil {
		l.Error("CSV file check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(statuses)
}

// HandleValidate reconciles one faction against its CSV file.
func (h *Handler) HandleValidate(c *fiber.Ctx) error {
	key, ok := factionParam(c)
	if !ok {
		return nil
	}
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Validate(c.Context(), key)
	if err != nil {
		return writeRunError(c, l, err)
	}
	return c.JSON(report)
}

// HandleValidateAll reconciles every faction and returns the batch summary.
// Per-faction failures are entries in the summary, not an HTTP error.
func (h *Handler) HandleValidateAll(c *fiber.Ctx) error {
	return c.JSON(h.service.ValidateAll(c.Context()))
}

// HandleGenerate renders a faction's generated file set without publishing.
func (h *Handler) HandleGenerate(c *fiber.Ctx) error {
	key, ok := factionParam(c)
	if !ok {
		return nil
	}
	l := logger.WithRayID(h.service.logger, c)

	files, err := h.service.Generate(c.Context(), key)
	if err != nil {
		return writeRunError(c, l, err)
	}
	return c.JSON(files)
}

// HandlePublish regenerates and pushes a faction's file set to the remote
// repository, reporting per-file outcomes.
func (h *Handler) HandlePublish(c *fiber.Ctx) error {
	key, ok := factionParam(c)
	if !ok {
		return nil
	}
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Publish(c.Context(), key)
	if err != nil {
		if errors.Is(err, remote.ErrUnauthorized) {
			l.Error("Publish rejected by remote", zap.Error(err))
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "remote rejected credentials",
			})
		}
		return writeRunError(c, l, err)
	}
	return c.JSON(report)
}

// factionParam validates the :faction path parameter against the canonical
// set before any work happens. When the faction is unknown it writes the 404
// response and reports ok=false.
func factionParam(c *fiber.Ctx) (string, bool) {
	key := faction.Normalize(c.Params("faction"))
	if !faction.Known(key) {
		_ = c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown faction: " + c.Params("faction"),
		})
		return "", false
	}
	return key, true
}

func writeRunError(c *fiber.Ctx, l *zap.Logger, err error) error {
	var malformed *MalformedCSVError
	if errors.As(err, &malformed) {
		l.Warn("Malformed CSV file", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Error("Roster operation failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
