package constants

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys set by the auth middleware
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	RoleUser  = "user"
	RoleAdmin = "admin"

	TablePlans          = "plans"
	TableSubscriptions  = "subscriptions"
	TableCertificates   = "certificates"
	TableDesigns        = "designs"
	TableAssets         = "assets"
	TableUsers          = "users"
	TableSystemSettings = "system_settings"

	// BaselinePlanID is applied to users without an active subscription.
	BaselinePlanID = "tek_egitim"

	BytesPerMB = 1048576

	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgForbidden           = "Access forbidden"
)
