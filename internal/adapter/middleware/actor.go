package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	userDomain "lecturer-claims-service/internal/domain/user"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ActorContextKey is where the resolved caller identity lives in the echo
// context.
const ActorContextKey = "actor"

// HeaderActorID carries the already-authenticated caller id. Credential
// checks happen upstream; this service only resolves the id to a role.
const HeaderActorID = "Ax-Actor-Id"

type Actor struct {
	ID   uint64
	Role userDomain.Role
	Name string
}

// ActorMiddleware resolves Ax-Actor-Id to an active user and stores the
// (id, role) pair for handlers. Unknown or inactive actors are rejected.
func ActorMiddleware(users userDomain.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(HeaderActorID))
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + HeaderActorID})
			}
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || id == 0 {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid " + HeaderActorID})
			}

			usr, err := users.GetByID(c.Request().Context(), id)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unknown actor"})
				}
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "user directory unavailable"})
			}
			if !usr.IsActive {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "actor is deactivated"})
			}

			c.Set(ActorContextKey, Actor{ID: usr.ID, Role: usr.Role, Name: usr.FullName})
			return next(c)
		}
	}
}

// RequireRoles gates a route group to the given roles. Must run after
// ActorMiddleware.
func RequireRoles(roles ...userDomain.Role) echo.MiddlewareFunc {
	allowed := make(map[userDomain.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "no actor resolved"})
			}
			if _, ok := allowed[actor.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "access denied"})
			}
			return next(c)
		}
	}
}

func ActorFrom(c echo.Context) (Actor, bool) {
	a, ok := c.Get(ActorContextKey).(Actor)
	return a, ok
}
