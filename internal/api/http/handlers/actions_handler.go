package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Zomujo/dial4inclusion/internal/api/dto"
	"github.com/Zomujo/dial4inclusion/internal/coordinator"
	apperrors "github.com/Zomujo/dial4inclusion/pkg/errorutil"
)

// ActionsHandler exposes the assignment and escalation flows.
type ActionsHandler struct {
	assignment *coordinator.Assignment
	escalation *coordinator.Escalation
}

// NewActionsHandler constructs handler.
func NewActionsHandler(assignment *coordinator.Assignment, escalation *coordinator.Escalation) *ActionsHandler {
	return &ActionsHandler{assignment: assignment, escalation: escalation}
}

// OpenAssignment POST /cases/assignment/open.
func (h *ActionsHandler) OpenAssignment(c *fiber.Ctx) error {
	h.assignment.Open(c.Context())
	return c.JSON(fiber.Map{"data": h.assignment.State()})
}

// AssignmentState GET /cases/assignment.
func (h *ActionsHandler) AssignmentState(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.assignment.State()})
}

// RefreshAssignmentTargets POST /cases/assignment/targets/refresh.
func (h *ActionsHandler) RefreshAssignmentTargets(c *fiber.Ctx) error {
	h.assignment.RefreshTargets(c.Context())
	return c.JSON(fiber.Map{"data": h.assignment.State()})
}

// SubmitAssignment POST /cases/assignment.
func (h *ActionsHandler) SubmitAssignment(c *fiber.Ctx) error {
	var req dto.AssignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	h.assignment.SetAssignee(req.AssignedToID)
	h.assignment.SetExpectedDate(req.ExpectedResolutionDate)
	if err := h.assignment.Submit(c.Context()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.assignment.State()})
}

// CloseAssignment POST /cases/assignment/close.
func (h *ActionsHandler) CloseAssignment(c *fiber.Ctx) error {
	h.assignment.Close()
	return c.JSON(fiber.Map{"data": h.assignment.State()})
}

// OpenEscalation POST /cases/escalation/open.
func (h *ActionsHandler) OpenEscalation(c *fiber.Ctx) error {
	h.escalation.Open(c.Context())
	return c.JSON(fiber.Map{"data": h.escalation.State()})
}

// EscalationState GET /cases/escalation.
func (h *ActionsHandler) EscalationState(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.escalation.State()})
}

// RefreshEscalationTargets POST /cases/escalation/targets/refresh.
func (h *ActionsHandler) RefreshEscalationTargets(c *fiber.Ctx) error {
	h.escalation.RefreshTargets(c.Context())
	return c.JSON(fiber.Map{"data": h.escalation.State()})
}

// SubmitEscalation POST /cases/escalation.
func (h *ActionsHandler) SubmitEscalation(c *fiber.Ctx) error {
	var req dto.EscalateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	h.escalation.SetTarget(req.AssignedToID)
	h.escalation.SetReason(req.EscalationReason)
	if err := h.escalation.Submit(c.Context()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": h.escalation.State()})
}

// CloseEscalation POST /cases/escalation/close.
func (h *ActionsHandler) CloseEscalation(c *fiber.Ctx) error {
	h.escalation.Close()
	return c.JSON(fiber.Map{"data": h.escalation.State()})
}
