package client

// ShouldRetry determines if a request should be retried based on status code
func ShouldRetry(statusCode int) bool {
	// Retry on rate limits (429) and server errors (5xx)
	return statusCode == 429 || statusCode >= 500
}
