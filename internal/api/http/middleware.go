package http

import (
	"errors"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Zomujo/dial4inclusion/internal/gateway"
	"github.com/Zomujo/dial4inclusion/internal/observability"
	"github.com/Zomujo/dial4inclusion/internal/session"
	apperrors "github.com/Zomujo/dial4inclusion/pkg/errorutil"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger) {
	app.Use(errorHandlingMiddleware(logger))
	app.Use(observability.RequestLogger(logger))
}

// RequireSession gates protected routes on an active session.
func RequireSession(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !sessions.Authenticated() {
			return apperrors.NewSessionExpired()
		}
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				appErr := translate(err)
				response := fiber.Map{"error": fiber.Map{
					"code":    appErr.Code,
					"message": appErr.Message,
				}}
				if len(appErr.Details) > 0 {
					response["error"].(fiber.Map)["details"] = appErr.Details
				}
				if appErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(appErr))
				}
				c.Status(appErr.HTTPStatus)
				_ = c.JSON(response)
				err = nil
			}
		}()
		return c.Next()
	}
}

// translate maps remote API failures onto the local error envelope so the
// upstream status and message pass through.
func translate(err error) *apperrors.AppError {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return &apperrors.AppError{
			Code:       "UPSTREAM_ERROR",
			Message:    apiErr.Message,
			HTTPStatus: apiErr.StatusCode,
		}
	}
	return apperrors.ToAppError(err)
}
