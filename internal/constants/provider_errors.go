package constants

// Flight Provider Error Codes
// These constants define specific error scenarios for external flight-data providers

// Credential-related errors
const (
	ErrCodeInvalidAPIKey        = "INVALID_API_KEY"
	ErrCodeRateLimited          = "RATE_LIMITED"
	ErrCodeNetworkError         = "NETWORK_ERROR"
	ErrCodeAuthenticationFailed = "AUTHENTICATION_FAILED"
)

// Response errors
const (
	ErrCodeProviderError     = "PROVIDER_ERROR"
	ErrCodeEmptyResult       = "EMPTY_RESULT"
	ErrCodeInvalidDataFormat = "INVALID_DATA_FORMAT"
)

// Error Messages
// Human-readable messages corresponding to error codes

var ProviderErrorMessages = map[string]string{
	ErrCodeInvalidAPIKey:        "The configured API key is missing or invalid",
	ErrCodeRateLimited:          "The provider rejected the request due to rate limiting",
	ErrCodeNetworkError:         "Network error while contacting the provider",
	ErrCodeAuthenticationFailed: "Authentication with the provider failed",
	ErrCodeProviderError:        "The provider returned an error payload",
	ErrCodeEmptyResult:          "The provider returned no flights",
	ErrCodeInvalidDataFormat:    "The provider response could not be parsed",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, ok := ProviderErrorMessages[code]; ok {
		return msg
	}
	return "Unknown provider error"
}
