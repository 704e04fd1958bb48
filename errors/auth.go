package errors

import "fmt"

// RefreshTokenNotAvailableError means the stored credential cannot be
// refreshed and the user must log in again.
type RefreshTokenNotAvailableError struct{}

func (RefreshTokenNotAvailableError) Error() string {
	return "Refresh token not available, authentication is required"
}

// OAuthError carries the error response of an OAuth token endpoint and
// can be decoded from it directly. Description is optional; when empty
// the rendered message ends with an empty field, not a placeholder.
type OAuthError struct {
	ErrorType   string `json:"error"`
	Description string `json:"error_description,omitempty"`
}

func (e OAuthError) Error() string {
	return fmt.Sprintf("Error getting authorization: %s %s", e.ErrorType, e.Description)
}
