package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/yukikurage/employee-management-api/internal/config"
	"github.com/yukikurage/employee-management-api/internal/constants"
	"github.com/yukikurage/employee-management-api/internal/database"
	"github.com/yukikurage/employee-management-api/internal/handlers"
	"github.com/yukikurage/employee-management-api/internal/logging"
	"github.com/yukikurage/employee-management-api/internal/metrics"
	"github.com/yukikurage/employee-management-api/internal/middleware"
	"github.com/yukikurage/employee-management-api/internal/repository"
	"github.com/yukikurage/employee-management-api/internal/services"
	"gorm.io/gorm"
)

var flagSkipMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Set Gin mode
		gin.SetMode(cfg.GinMode)

		// Connect to database
		if err := database.Connect(cfg); err != nil {
			return err
		}

		// Run migrations
		if !flagSkipMigrate {
			if err := database.Migrate(); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
		}

		store, err := newSessionStore(cfg)
		if err != nil {
			return err
		}

		m := metrics.New()

		r := gin.New()
		r.Use(gin.Recovery())
		r.Use(middleware.RequestID())
		r.Use(logging.RequestLogger(logger))
		r.Use(m.Middleware())
		r.Use(sessions.Sessions(constants.SessionCookieName, store))

		r.GET("/metrics", m.Handler())
		handlers.RegisterRoutes(r, newServices(database.GetDB(), cfg))

		srv := &http.Server{
			Addr:              ":" + cfg.HTTPPort,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server starting", "addr", srv.Addr, "db_driver", cfg.DBDriver, "session_store", cfg.SessionStore)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&flagSkipMigrate, "skip-migrate", false, "do not migrate the schema on startup")
}

// newSessionStore creates the redis session store, or a cookie store when
// SESSION_STORE=cookie.
func newSessionStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store
	switch cfg.SessionStore {
	case "cookie":
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	case "redis":
		s, err := redisStore.NewStore(
			10,              // Redis pool size
			"tcp",           // network type
			cfg.RedisAddr(), // Redis address from config
			"",              // username (empty for default user)
			"",              // password (empty = no password)
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis store: %w", err)
		}
		store = s
	default:
		return nil, fmt.Errorf("unsupported SESSION_STORE %q", cfg.SessionStore)
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   constants.SessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	return store, nil
}

func newServices(db *gorm.DB, cfg *config.Config) handlers.Services {
	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	paymentRepo := repository.NewDuePaymentRepository(db)

	return handlers.Services{
		Auth:        services.NewAuthService(userRepo),
		Employees:   services.NewEmployeeService(employeeRepo, departmentRepo, logger),
		Departments: services.NewDepartmentService(departmentRepo, logger),
		Tasks:       services.NewTaskService(taskRepo, employeeRepo, logger),
		Notes:       services.NewNoteService(noteRepo, logger),
		Attendances: services.NewAttendanceService(attendanceRepo, employeeRepo, logger),
		DuePayments: services.NewDuePaymentService(paymentRepo, employeeRepo, logger),
		Dashboard: services.NewDashboardService(
			employeeRepo, departmentRepo, taskRepo, noteRepo, attendanceRepo, paymentRepo, logger,
		),
		AI: services.NewAIService(cfg.OpenAIAPIKey),
	}
}
