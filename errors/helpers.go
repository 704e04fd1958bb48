package errors

import (
	stderrors "errors"
	"net/url"

	"github.com/jmgilman/go/tunnelcli/errors/code"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var status errors.StatusError
//	if errors.As(err, &status) && status.StatusCode == http.StatusNotFound {
//	    // Handle missing release
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// coder is implemented by every leaf.
type coder interface {
	Code() ErrorCode
}

// GetCode extracts the ErrorCode from the first coded failure in err's chain.
// A code.Error is coded as the CodeError leaf would code it and a network
// failure as CodeNetwork. Returns CodeUnknown if err is nil or carries no code.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeUnauthorized {
//	    // Prompt for login
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var c coder
	if stderrors.As(err, &c) {
		return c.Code()
	}

	var ce code.Error
	if stderrors.As(err, &ce) {
		return CodeError{Err: ce}.Code()
	}

	var uerr *url.Error
	if stderrors.As(err, &uerr) {
		return CodeNetwork
	}

	return CodeUnknown
}

// GetClassification returns the classification of err's code.
// Returns ClassificationPermanent if err is nil or carries no code.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}
	return classify(GetCode(err))
}

// IsRetryable returns true if err is classified as retryable.
// Returns false if err is nil or carries no code.
//
// Example:
//
//	for attempt := 0; attempt < 3; attempt++ {
//	    if err = host(ctx); err == nil || !errors.IsRetryable(err) {
//	        break
//	    }
//	}
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
