package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/employee-management-api/internal/constants"
	"github.com/yukikurage/employee-management-api/internal/database"
	"github.com/yukikurage/employee-management-api/internal/dto"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"github.com/yukikurage/employee-management-api/internal/services"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db          *gorm.DB
	handler     *AuthHandler
	authService *services.AuthService
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	userRepo := repository.NewUserRepository(db)
	authService := services.NewAuthService(userRepo)
	handler := NewAuthHandler(authService)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{
		db:          db,
		handler:     handler,
		authService: authService,
	}
}

func postJSON(r http.Handler, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	env := setupAuthTestEnv(t)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.POST("/api/auth/signup", env.handler.Signup)

	payload := map[string]string{
		"name":     "New User",
		"email":    "new@example.com",
		"password": "supersecret",
	}
	w := postJSON(r, "/api/auth/signup", payload)

	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, payload["name"], response.Name)
	require.Equal(t, payload["email"], response.Email)

	w = postJSON(r, "/api/auth/signup", payload)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_SignupValidation(t *testing.T) {
	env := setupAuthTestEnv(t)

	r := gin.New()
	r.POST("/api/auth/signup", env.handler.Signup)

	w := postJSON(r, "/api/auth/signup", map[string]string{
		"name":     "x",
		"email":    "not-an-email",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Contains(t, w.Body.String(), `"email":"The email must be a valid email address."`)
	require.NotContains(t, w.Body.String(), "supersecret")

	w = postJSON(r, "/api/auth/signup", map[string]string{
		"name":     "x",
		"email":    "x@example.com",
		"password": "short",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Contains(t, w.Body.String(), "The password must be at least 8 characters.")
}

func TestAuthHandler_Login(t *testing.T) {
	env := setupAuthTestEnv(t)

	_, err := env.authService.Signup(services.SignupInput{
		Name:     "Existing",
		Email:    "existing@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.POST("/api/auth/login", env.handler.Login)

	w := postJSON(r, "/api/auth/login", map[string]string{
		"email":    "existing@example.com",
		"password": "supersecret",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, "Existing", response.Name)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "expected session cookie to be set")

	w = postJSON(r, "/api/auth/login", map[string]string{
		"email":    "existing@example.com",
		"password": "wrong-password",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
}

func TestAuthHandler_GetCurrentUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	user, err := env.authService.Signup(services.SignupInput{
		Name:     "Current User",
		Email:    "current@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(constants.ContextKeyUserID, user.ID)

	env.handler.GetCurrentUser(c)

	require.Equal(t, http.StatusOK, w.Code)

	var response dto.UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, user.Name, response.Name)
}
