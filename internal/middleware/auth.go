package middleware

import (
	"wordguess/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Auth creates authentication middleware for handlers that require an
// authorized user
func Auth(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			// Ensure user exists
			if err := authService.EnsureUserExists(userID, c.Sender().Username); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return c.Send("Произошла ошибка. Попробуйте позже.")
			}

			// Check authorization
			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return c.Send("Произошла ошибка. Попробуйте позже.")
			}

			if !authorized {
				return c.Send("Сначала введи пароль. Отправь /start и попробуй ещё раз.")
			}

			return next(c)
		}
	}
}

// AdminOnly creates middleware that restricts a handler to the admin
func AdminOnly(adminID int64, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender().ID != adminID {
				logger.Warn("Non-admin tried admin command",
					zap.Int64("user_id", c.Sender().ID),
					zap.String("text", c.Text()),
				)
				return c.Send("Эта команда доступна только администратору.")
			}
			return next(c)
		}
	}
}
