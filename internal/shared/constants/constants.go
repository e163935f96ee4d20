package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Identifier prefixes used by the stores
	ServiceRequestIDPrefix = "ticket-"
	MessageIDPrefix        = "msg-"
	ThreadIDPrefix         = "thread-"

	// Storage drivers
	StorageDriverMemory = "memory"
	StorageDriverSQLite = "sqlite"

	// Database table names
	TableServiceRequests = "service_requests"
	TableClientMessages  = "client_messages"
	TableMessageThreads  = "message_threads"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgValidationFailed    = "Validation failed"
)
