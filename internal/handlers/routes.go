package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/employee-management-api/internal/middleware"
	"github.com/yukikurage/employee-management-api/internal/services"
)

// Services bundles the business services the API exposes
type Services struct {
	Auth        *services.AuthService
	Employees   *services.EmployeeService
	Departments *services.DepartmentService
	Tasks       *services.TaskService
	Notes       *services.NoteService
	Attendances *services.AttendanceService
	DuePayments *services.DuePaymentService
	Dashboard   *services.DashboardService
	AI          *services.AIService
}

// RegisterRoutes mounts the health check and every /api route on r
func RegisterRoutes(r gin.IRouter, s Services) {
	authHandler := NewAuthHandler(s.Auth)
	employeeHandler := NewEmployeeHandler(s.Employees)
	departmentHandler := NewDepartmentHandler(s.Departments)
	taskHandler := NewTaskHandler(s.Tasks, s.AI)
	noteHandler := NewNoteHandler(s.Notes)
	attendanceHandler := NewAttendanceHandler(s.Attendances)
	duePaymentHandler := NewDuePaymentHandler(s.DuePayments)
	dashboardHandler := NewDashboardHandler(s.Dashboard, s.Employees, s.Departments)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Employee Management API is running",
		})
	})

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		protected := api.Group("")
		protected.Use(middleware.RequireAuth())

		protected.GET("/dashboard", dashboardHandler.GetDashboard)
		protected.GET("/form-options", dashboardHandler.GetFormOptions)

		employees := protected.Group("/employees")
		{
			owned := middleware.RequireOwnership("employee", s.Employees.Get)
			employees.GET("", employeeHandler.ListEmployees)
			employees.POST("", employeeHandler.CreateEmployee)
			employees.GET("/:id", owned, employeeHandler.GetEmployee)
			employees.PUT("/:id", owned, employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", owned, employeeHandler.DeleteEmployee)
		}

		departments := protected.Group("/departments")
		{
			owned := middleware.RequireOwnership("department", s.Departments.Get)
			departments.GET("", departmentHandler.ListDepartments)
			departments.POST("", departmentHandler.CreateDepartment)
			departments.GET("/:id", owned, departmentHandler.GetDepartment)
			departments.PUT("/:id", owned, departmentHandler.UpdateDepartment)
			departments.DELETE("/:id", owned, departmentHandler.DeleteDepartment)
		}

		tasks := protected.Group("/tasks")
		{
			owned := middleware.RequireOwnership("task", s.Tasks.Get)
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.POST("/generate", taskHandler.GenerateTasks)
			tasks.GET("/:id", owned, taskHandler.GetTask)
			tasks.PUT("/:id", owned, taskHandler.UpdateTask)
			tasks.DELETE("/:id", owned, taskHandler.DeleteTask)
		}

		notes := protected.Group("/notes")
		{
			owned := middleware.RequireOwnership("note", s.Notes.Get)
			notes.GET("", noteHandler.ListNotes)
			notes.POST("", noteHandler.CreateNote)
			notes.GET("/:id", owned, noteHandler.GetNote)
			notes.PUT("/:id", owned, noteHandler.UpdateNote)
			notes.DELETE("/:id", owned, noteHandler.DeleteNote)
		}

		attendances := protected.Group("/attendances")
		{
			owned := middleware.RequireOwnership("attendance", s.Attendances.Get)
			attendances.GET("", attendanceHandler.ListAttendances)
			attendances.POST("", attendanceHandler.CreateAttendance)
			attendances.GET("/:id", owned, attendanceHandler.GetAttendance)
			attendances.PUT("/:id", owned, attendanceHandler.UpdateAttendance)
			attendances.DELETE("/:id", owned, attendanceHandler.DeleteAttendance)
		}

		payments := protected.Group("/due-payments")
		{
			owned := middleware.RequireOwnership("due payment", s.DuePayments.Get)
			payments.GET("", duePaymentHandler.ListDuePayments)
			payments.POST("", duePaymentHandler.CreateDuePayment)
			payments.GET("/:id", owned, duePaymentHandler.GetDuePayment)
			payments.PUT("/:id", owned, duePaymentHandler.UpdateDuePayment)
			payments.POST("/:id/pay", owned, duePaymentHandler.PayDuePayment)
			payments.DELETE("/:id", owned, duePaymentHandler.DeleteDuePayment)
		}
	}
}
