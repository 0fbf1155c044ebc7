package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationFailed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ValidationFailed(c, map[string]string{"name": "The name field is required."}, map[string]string{"name": ""})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Code    string `json:"code"`
		Details struct {
			Fields map[string]string `json:"fields"`
			Input  map[string]string `json:"input"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ErrCodeValidationFailed, body.Code)
	assert.Equal(t, "The name field is required.", body.Details.Fields["name"])
	assert.Contains(t, body.Details.Input, "name")
}

func TestHelpersDefaultMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		respond func(c *gin.Context)
		status  int
		code    string
		message string
	}{
		{"forbidden", func(c *gin.Context) { Forbidden(c, "") }, http.StatusForbidden, ErrCodeForbidden, "Access denied"},
		{"not found", func(c *gin.Context) { NotFound(c, "") }, http.StatusNotFound, ErrCodeNotFound, "Resource not found"},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "") }, http.StatusUnauthorized, ErrCodeUnauthorized, "Authentication required"},
		{"credentials", InvalidCredentials, http.StatusUnauthorized, ErrCodeInvalidCredentials, "Invalid email or password"},
		{"unavailable", func(c *gin.Context) { ServiceUnavailable(c, "") }, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Service temporarily unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			tt.respond(c)

			require.Equal(t, tt.status, w.Code)
			var body APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}
