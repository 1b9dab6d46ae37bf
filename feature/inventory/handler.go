package inventory

import (
	"errors"
	"strconv"

	"inventory-manager/core/logger"
	"inventory-manager/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the read-only HTTP view of the catalog. Mutations stay on
// the command surface so the single-logical-writer model holds.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/items")
	group.Get("/", h.HandleListItems)
	group.Get("/:id", h.HandleGetItem)
}

// HandleListItems returns every record in stable listing order.
func (h *Handler) HandleListItems(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	items, err := h.service.Items(c.Context())
	if err != nil {
		l.Error("listing items failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"count": len(items),
		"items": items,
	})
}

// HandleGetItem returns a single record by id.
func (h *Handler) HandleGetItem(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id must be an integer",
		})
	}

	item, err := h.service.ItemByID(c.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no such record",
		})
	}
	if err != nil {
		l.Error("item lookup failed", zap.Int64("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(item)
}
