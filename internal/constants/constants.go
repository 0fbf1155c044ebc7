package constants

// Session and context keys
const (
	ContextKeyUserID    = "user_id"
	ContextKeyResource  = "resource"
	ContextKeyRequestID = "request_id"
	SessionCookieName   = "employee_session"
	HeaderRequestID     = "X-Request-ID"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 15
	MaxPageSize     = 100
)

// Auth
const (
	MinPasswordLength = 8
	SessionMaxAge     = 86400 * 7
)

// Dashboard and AI limits
const (
	DashboardCriticalTasks    = 5
	DashboardUpcomingPayments = 5
	MaxAIGeneratedTasks       = 20
)
