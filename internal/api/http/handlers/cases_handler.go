package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Zomujo/dial4inclusion/internal/api/dto"
	"github.com/Zomujo/dial4inclusion/internal/domain"
	"github.com/Zomujo/dial4inclusion/internal/store"
	apperrors "github.com/Zomujo/dial4inclusion/pkg/errorutil"
)

// CasesHandler exposes the case list view-model and complaint operations.
type CasesHandler struct {
	cases *store.Store
}

// NewCasesHandler constructs handler.
func NewCasesHandler(cases *store.Store) *CasesHandler {
	return &CasesHandler{cases: cases}
}

// View GET /views/cases.
func (h *CasesHandler) View(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.NewCasesView(h.cases.Snapshot())})
}

// Options GET /views/options.
func (h *CasesHandler) Options(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.OptionsResponse{
		Districts:        domain.DistrictOptions,
		Categories:       domain.CategoryOptions,
		IssueTypes:       domain.IssueTypeOptions,
		AssistiveDevices: domain.AssistiveDeviceOptions,
		RequestTypes:     domain.RequestTypeOptions,
		Statuses:         domain.StatusOptions,
		AdminStatuses:    domain.StatusOptionsWithEscalated,
	}})
}

// Refresh POST /cases/refresh.
func (h *CasesHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}
	overrides := &store.RefreshOverrides{Page: req.Page, PageSize: req.PageSize}
	if req.District != "" {
		district := domain.District(req.District)
		overrides.District = &district
	}
	if err := h.cases.Refresh(c.Context(), overrides); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCasesView(h.cases.Snapshot())})
}

// Submit POST /cases.
func (h *CasesHandler) Submit(c *fiber.Ctx) error {
	var form store.ComplaintForm
	if err := c.BodyParser(&form); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	code, err := h.cases.Submit(c.Context(), form)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.SubmitResponse{Code: code}})
}

// Select PUT /cases/:id/select.
func (h *CasesHandler) Select(c *fiber.Ctx) error {
	if err := h.cases.Select(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCasesView(h.cases.Snapshot())})
}

// ClearSelection DELETE /cases/selection.
func (h *CasesHandler) ClearSelection(c *fiber.Ctx) error {
	h.cases.ClearSelection()
	return c.JSON(fiber.Map{"data": dto.NewCasesView(h.cases.Snapshot())})
}

// UpdateStatus PUT /cases/:id/status.
func (h *CasesHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if !req.Status.Valid() {
		return apperrors.NewValidationError("unknown status", map[string]any{"status": req.Status})
	}
	if err := h.cases.UpdateStatus(c.Context(), c.Params("id"), req.Status); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewCasesView(h.cases.Snapshot())})
}

// SetStatusFilter PUT /views/cases/filter.
func (h *CasesHandler) SetStatusFilter(c *fiber.Ctx) error {
	var req dto.StatusFilterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	filter := store.StatusFilter(req.Status)
	if filter != store.FilterAll && !domain.ComplaintStatus(req.Status).Valid() {
		return apperrors.NewValidationError("unknown status filter", map[string]any{"status": req.Status})
	}
	h.cases.SetStatusFilter(filter)
	return c.JSON(fiber.Map{"data": dto.NewCasesView(h.cases.Snapshot())})
}
