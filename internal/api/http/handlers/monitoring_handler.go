package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Zomujo/dial4inclusion/internal/domain"
	"github.com/Zomujo/dial4inclusion/internal/monitor"
)

// MonitoringHandler exposes the read-only monitoring view.
type MonitoringHandler struct {
	aggregator *monitor.Aggregator
}

// NewMonitoringHandler constructs handler.
func NewMonitoringHandler(aggregator *monitor.Aggregator) *MonitoringHandler {
	return &MonitoringHandler{aggregator: aggregator}
}

// View GET /views/monitoring.
func (h *MonitoringHandler) View(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.aggregator.Snapshot()})
}

// Refresh POST /views/monitoring/refresh. Fetch failures are already logged
// by the aggregator and intentionally non-fatal; the view simply shows the
// last known values.
func (h *MonitoringHandler) Refresh(c *fiber.Ctx) error {
	var district *domain.District
	if value := c.Query("district"); value != "" {
		d := domain.District(value)
		district = &d
	}
	ctx := c.Context()
	_ = h.aggregator.RefreshStats(ctx, district)
	_ = h.aggregator.RefreshNavigatorUpdates(ctx, district, c.QueryInt("page", 1), c.QueryInt("pageSize", 10))
	_ = h.aggregator.RefreshOverdue(ctx)
	_ = h.aggregator.RefreshNavigators(ctx)
	return c.JSON(fiber.Map{"data": h.aggregator.Snapshot()})
}
