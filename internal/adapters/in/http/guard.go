package http

import (
	"net/http"

	"hortifruti/internal/core/application/session"
	"hortifruti/internal/core/domain/model/identity"

	"github.com/labstack/echo/v4"
)

// loginPath is where unauthenticated visitors are sent.
const loginPath = "/login"

// landingFor maps a role to its home view. Roles outside the delivery
// workflow land on the neutral dashboard.
func landingFor(role identity.Role) string {
	switch role {
	case identity.RoleManager:
		return "/admin"
	case identity.RoleCourier:
		return "/deliveries"
	default:
		return "/dashboard"
	}
}

// GuardView protects a panel view for one role.
//
// While the stored session is still being revalidated the view answers 503
// so the visitor is neither let in nor bounced on a credential that may
// turn out valid. Unauthenticated visitors are redirected to the login view;
// authenticated visitors of the wrong role are redirected to their own
// landing view instead of seeing an error page.
func GuardView(manager *session.Manager, required identity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if manager.Restoring() {
				return c.JSON(http.StatusServiceUnavailable, errorBody{
					Message: "session restore in progress, retry shortly",
				})
			}

			ident := manager.Identity()
			if ident == nil {
				return c.Redirect(http.StatusFound, loginPath)
			}
			if !ident.HasRole(required) {
				return c.Redirect(http.StatusFound, landingFor(ident.Role()))
			}
			return next(c)
		}
	}
}

// RequireRole protects an API endpoint for one role. Unlike GuardView it
// answers with JSON status codes, never redirects.
func RequireRole(manager *session.Manager, required identity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if manager.Restoring() {
				return c.JSON(http.StatusServiceUnavailable, errorBody{
					Message: "session restore in progress, retry shortly",
				})
			}

			ident := manager.Identity()
			if ident == nil {
				return c.JSON(http.StatusUnauthorized, errorBody{Message: "authentication required"})
			}
			if !ident.HasRole(required) {
				return c.JSON(http.StatusForbidden, errorBody{Message: "insufficient role"})
			}
			return next(c)
		}
	}
}
