package middleware

import (
	"log/slog"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/constants"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
)

// RequireAuth resolves the session's user into the request principal.
// A session without a usable user id is cleared and rejected with 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		raw := session.Get(constants.ContextKeyUserID)

		principal, ok := toPrincipal(raw)
		if !ok {
			if raw != nil {
				slog.Warn("discarding session with invalid user id", "value", raw)
				session.Clear()
				if err := session.Save(); err != nil {
					slog.Error("failed to clear session", "error", err)
				}
			}
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, principal)
		c.Next()
	}
}

// GetUserID returns the authenticated principal. Zero is never a principal.
func GetUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	return toPrincipal(value)
}

// toPrincipal accepts the integer shapes session stores hand back after decoding.
func toPrincipal(value any) (uint64, bool) {
	var id uint64
	switch v := value.(type) {
	case uint64:
		id = v
	case uint:
		id = uint64(v)
	case int64:
		if v < 0 {
			return 0, false
		}
		id = uint64(v)
	case int:
		if v < 0 {
			return 0, false
		}
		id = uint64(v)
	default:
		return 0, false
	}
	return id, id != 0
}
