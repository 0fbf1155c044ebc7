package middleware

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/constants"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/policy"
	"github.com/yukikurage/employee-management-api/internal/services"
)

// RequireOwnership loads the resource named by the :id parameter and checks
// that the current user may act on it with the request's method.
// A missing record is 404; a record owned by someone else is 403.
func RequireOwnership[T policy.Resource](name string, load func(id uint64) (T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil || id == 0 {
			apierrors.BadRequest(c, "Invalid "+name+" ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		resource, err := load(id)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				apierrors.NotFound(c, capitalize(name)+" not found")
			} else {
				slog.Error("failed to load resource", "resource", name, "id", id, "error", err)
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		if !policy.CanAccess(userID, resource, policy.ActionForMethod(c.Request.Method)) {
			apierrors.Forbidden(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyResource, resource)
		c.Next()
	}
}

// GetResource retrieves the resource stored by RequireOwnership
func GetResource[T policy.Resource](c *gin.Context) (T, bool) {
	var zero T
	value, exists := c.Get(constants.ContextKeyResource)
	if !exists {
		return zero, false
	}
	resource, ok := value.(T)
	return resource, ok
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
