package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Zomujo/dial4inclusion/internal/api/http/handlers"
	"github.com/Zomujo/dial4inclusion/internal/session"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Cases      *handlers.CasesHandler
	Actions    *handlers.ActionsHandler
	Monitoring *handlers.MonitoringHandler
	Sessions   *session.Manager
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/register", cfg.Auth.Register)

	protected := app.Group("", RequireSession(cfg.Sessions))
	protected.Post("/auth/logout", cfg.Auth.Logout)
	protected.Get("/auth/session", cfg.Auth.Session)

	protected.Get("/views/cases", cfg.Cases.View)
	protected.Get("/views/options", cfg.Cases.Options)
	protected.Put("/views/cases/filter", cfg.Cases.SetStatusFilter)
	protected.Post("/cases/refresh", cfg.Cases.Refresh)
	protected.Post("/cases", cfg.Cases.Submit)
	protected.Delete("/cases/selection", cfg.Cases.ClearSelection)
	protected.Put("/cases/:id/select", cfg.Cases.Select)
	protected.Put("/cases/:id/status", cfg.Cases.UpdateStatus)

	protected.Get("/cases/assignment", cfg.Actions.AssignmentState)
	protected.Post("/cases/assignment", cfg.Actions.SubmitAssignment)
	protected.Post("/cases/assignment/open", cfg.Actions.OpenAssignment)
	protected.Post("/cases/assignment/close", cfg.Actions.CloseAssignment)
	protected.Post("/cases/assignment/targets/refresh", cfg.Actions.RefreshAssignmentTargets)

	protected.Get("/cases/escalation", cfg.Actions.EscalationState)
	protected.Post("/cases/escalation", cfg.Actions.SubmitEscalation)
	protected.Post("/cases/escalation/open", cfg.Actions.OpenEscalation)
	protected.Post("/cases/escalation/close", cfg.Actions.CloseEscalation)
	protected.Post("/cases/escalation/targets/refresh", cfg.Actions.RefreshEscalationTargets)

	protected.Get("/views/monitoring", cfg.Monitoring.View)
	protected.Post("/views/monitoring/refresh", cfg.Monitoring.Refresh)
}
