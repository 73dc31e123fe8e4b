package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyCompanyID = "company_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// User roles
	RoleAdmin  = "admin"
	RoleMember = "member"

	// Database table names
	TableUsers                = "users"
	TableCompanies            = "companies"
	TableOperations           = "operations"
	TableCompanySubscriptions = "company_subscriptions"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
