package middleware

import (
	"strings"

	"habitpet/internal/locales"
	"habitpet/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AuthMiddleware gates every update behind the bot password.
// Unauthorized text messages are taken as password attempts.
func AuthMiddleware(authService *service.AuthService, l *locales.Locales, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			// Ensure user exists; archived profiles reference it
			if err := authService.EnsureUserExists(userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return c.Send(l.Common.Error)
			}

			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return c.Send(l.Common.Error)
			}
			if authorized {
				return next(c)
			}

			if c.Callback() != nil {
				return c.Respond(&tele.CallbackResponse{Text: l.Auth.Prompt, ShowAlert: true})
			}

			text := strings.TrimSpace(c.Text())
			if text == "" || strings.HasPrefix(text, "/") {
				return c.Send(l.Auth.Prompt)
			}

			if !authService.CheckPassword(text) {
				logger.Info("Wrong password attempt", zap.Int64("user_id", userID))
				return c.Send(l.Auth.Denied)
			}

			if err := authService.AuthorizeUser(userID); err != nil {
				logger.Error("Failed to authorize user", zap.Error(err))
				return c.Send(l.Common.Error)
			}

			logger.Info("User authorized", zap.Int64("user_id", userID))
			return c.Send(l.Auth.Granted)
		}
	}
}
