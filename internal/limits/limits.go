package limits

// JSON size limits for daemon API responses

const (
	// JSON is the maximum size for API response payloads (1MB)
	JSON = 1 << 20

	// ErrorBody is the maximum size for error response bodies (1KB)
	// Used when parsing error messages from failed API calls
	ErrorBody = 1024
)
