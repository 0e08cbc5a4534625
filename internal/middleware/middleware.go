package middleware

// Gin context keys set by the middleware chain
const (
	// ContextFacultyKey holds the resolved *models.Faculty of the acting user
	ContextFacultyKey = "actingFaculty"
	// ContextEmailKey holds the authenticated email claim
	ContextEmailKey = "email"
	// ContextRequestIDKey holds the per-request correlation id
	ContextRequestIDKey = "requestID"
)
