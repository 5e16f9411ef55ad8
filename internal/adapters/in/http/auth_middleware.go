package http

import (
	"errors"
	"net/http"
	"strings"

	"courierdesk/internal/adapters/out/auth"

	"github.com/labstack/echo/v4"
)

// userContextKey is where the middleware stores the authenticated user.
const userContextKey = "authUser"

// authMiddleware verifies the bearer token of every request against the
// authentication service. The public tracking page stays outside the
// protected group and never passes through here.
func authMiddleware(verifier *auth.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := bearerToken(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			user, err := verifier.VerifyToken(ctx.Request().Context(), token)
			if errors.Is(err, auth.ErrNotAuthenticated) {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: err.Error(),
				})
			}
			if err != nil {
				return ctx.JSON(http.StatusBadGateway, Error{
					Code:    http.StatusBadGateway,
					Message: err.Error(),
				})
			}

			ctx.Set(userContextKey, user)
			return next(ctx)
		}
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
