package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	apierrors "github.com/yukikurage/employee-management-api/internal/errors"
	"github.com/yukikurage/employee-management-api/internal/services"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

// jsonFieldName reports validation errors under the request's JSON names.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// bindJSON binds the request body into req. Malformed JSON is a 400; failed
// binding rules are a 422 carrying field messages and the submitted input.
func bindJSON(c *gin.Context, req interface{}) bool {
	return bindJSONEcho(c, req, true)
}

// bindJSONEcho is bindJSON with control over echoing the input back, for
// bodies carrying secrets.
func bindJSONEcho(c *gin.Context, req interface{}, echo bool) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		var input interface{}
		if echo {
			input = req
		}
		apierrors.ValidationFailed(c, fieldMessages(verrs), input)
		return false
	}

	apierrors.BadRequest(c, "Invalid request body")
	return false
}

func fieldMessages(verrs validator.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, exists := fields[fe.Field()]; !exists {
			fields[fe.Field()] = fieldMessage(fe)
		}
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	name := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", name)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", name)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s may not be greater than %s characters.", name, fe.Param())
		}
		return fmt.Sprintf("The %s may not be greater than %s.", name, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s must be at least %s characters.", name, fe.Param())
		}
		return fmt.Sprintf("The %s must be at least %s.", name, fe.Param())
	case "gt":
		return fmt.Sprintf("The %s must be greater than %s.", name, fe.Param())
	case "gte":
		return fmt.Sprintf("The %s must be at least %s.", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", name)
	default:
		return fmt.Sprintf("The %s is invalid.", name)
	}
}

// respondServiceError maps service errors to API errors.
func respondServiceError(c *gin.Context, err error, input interface{}) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		apierrors.ValidationFailed(c, verr.Fields, input)
	case errors.Is(err, services.ErrNotFound):
		apierrors.NotFound(c, "")
	default:
		slog.Error("request failed", "method", c.Request.Method, "path", c.FullPath(), "error", err)
		apierrors.InternalError(c, "")
	}
}

func deleted(c *gin.Context, entity string) {
	c.JSON(http.StatusOK, gin.H{
		"message": entity + " deleted successfully",
	})
}
