package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"rider-route-engine/internal/core/logger"
	"rider-route-engine/internal/features/routes/domain"
	"rider-route-engine/internal/features/routes/ports"
	"rider-route-engine/internal/features/routes/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RouteHandler handles HTTP requests for route reconciliation and stop progress.
type RouteHandler struct {
	// service reconciles routes and derives badge counts.
	service *service.RouteService
	// reporter pushes completion effects to the dispatch service.
	reporter ports.ProgressReporter
}

// NewRouteHandler creates a new instance of RouteHandler.
func NewRouteHandler(s *service.RouteService, r ports.ProgressReporter) *RouteHandler {
	return &RouteHandler{
		service:  s,
		reporter: r,
	}
}

// GetRoute handles the request for a rider's reconciled route.
// @Summary Get reconciled route
// @Description Reconcile the dispatcher assignment and pending-order pool into the rider's route for one delivery class.
// @Produce json
// @Param id path string true "Rider ID"
// @Param class query string true "Delivery class (urgent or scheduled)"
// @Success 200 {object} domain.Route
// @Failure 400 {object} ErrorResponse
// @Router /riders/{id}/route [get]
func (h *RouteHandler) GetRoute(c *fiber.Ctx) error {
	riderID := c.Params("id")
	rayID := rayID(c)

	if riderID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Rider ID is required",
			RayID:   rayID,
		})
	}

	class, err := domain.ParseDeliveryClass(c.Query("class"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDeliveryClass) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Class must be urgent or scheduled",
				RayID:   rayID,
			})
		}
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID,
		})
	}

	route := h.service.Reconcile(c.UserContext(), riderID, class, time.Now())

	return c.Status(http.StatusOK).JSON(route)
}

// GetBadges handles the request for a rider's per-class tab counts.
// @Summary Get tab badge counts
// @Description Per-class stop counts, preferring assignment sizes over raw-pool counts.
// @Produce json
// @Param id path string true "Rider ID"
// @Success 200 {object} domain.BadgeCounts
// @Failure 400 {object} ErrorResponse
// @Router /riders/{id}/badges [get]
func (h *RouteHandler) GetBadges(c *fiber.Ctx) error {
	riderID := c.Params("id")

	if riderID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Rider ID is required",
			RayID:   rayID(c),
		})
	}

	badges := h.service.Badges(c.UserContext(), riderID, time.Now())

	return c.Status(http.StatusOK).JSON(badges)
}

// MarkDelivered handles the delivery-completion effect for a stop.
// @Summary Mark a stop delivered
// @Description Forward a delivery completion to the dispatch service.
// @Produce json
// @Param id path string true "Rider ID"
// @Param orderId path string true "Order ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /riders/{id}/stops/{orderId}/delivered [post]
func (h *RouteHandler) MarkDelivered(c *fiber.Ctx) error {
	return h.reportProgress(c, h.reporter.MarkDelivered, "delivered")
}

// MarkPickedUp handles the pickup-completion effect for a stop.
// @Summary Mark a stop picked up
// @Description Forward a parcel pickup to the dispatch service.
// @Produce json
// @Param id path string true "Rider ID"
// @Param orderId path string true "Order ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /riders/{id}/stops/{orderId}/picked-up [post]
func (h *RouteHandler) MarkPickedUp(c *fiber.Ctx) error {
	return h.reportProgress(c, h.reporter.MarkPickedUp, "picked up")
}

// reportProgress validates the path params and forwards a completion effect.
// Unlike route reads, completion writes surface upstream failures: the rider
// must know a delivery confirmation did not land.
func (h *RouteHandler) reportProgress(c *fiber.Ctx, report func(ctx context.Context, orderID string) error, action string) error {
	rayID := rayID(c)
	orderID := c.Params("orderId")

	if c.Params("id") == "" || orderID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Rider ID and Order ID are required",
			RayID:   rayID,
		})
	}

	if err := report(c.UserContext(), orderID); err != nil {
		logger.Get().Error("Failed to report stop progress",
			zap.String("order_id", orderID),
			zap.String("action", action),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: "Dispatch service rejected the update",
			RayID:   rayID,
		})
	}

	return c.SendStatus(http.StatusNoContent)
}

// rayID extracts the request identifier set by the requestid middleware.
func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}
