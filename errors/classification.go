package errors

// ErrorClassification describes whether a failure is transient.
// It is information for callers that own retry decisions; nothing in
// this package acts on it.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: network failures, timeouts, a tunnel relay that is briefly unreachable.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: invalid arguments, missing installs, refused authentication.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry may help.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	// Retryable errors (temporary failures)
	CodeNetwork:     ClassificationRetryable,
	CodeTimeout:     ClassificationRetryable,
	CodeRateLimit:   ClassificationRetryable,
	CodeUnavailable: ClassificationRetryable,
	CodeTunnel:      ClassificationRetryable,

	// Permanent errors (will not succeed on retry)
	CodeNotFound:        ClassificationPermanent,
	CodeAlreadyExists:   ClassificationPermanent,
	CodeConflict:        ClassificationPermanent,
	CodeUnauthorized:    ClassificationPermanent,
	CodeForbidden:       ClassificationPermanent,
	CodeConsentRequired: ClassificationPermanent,
	CodeInvalidInput:    ClassificationPermanent,
	CodeInvalidConfig:   ClassificationPermanent,
	CodeRPC:             ClassificationPermanent,
	CodeInstall:         ClassificationPermanent,
	CodeCancelled:       ClassificationPermanent,
	CodeEnvironment:     ClassificationPermanent,
	CodeExecutionFailed: ClassificationPermanent,
	CodeInternal:        ClassificationPermanent,
	CodeUnknown:         ClassificationPermanent,
}

// classify returns the classification for an error code.
// Returns ClassificationPermanent if the code is not in the map (safe default).
func classify(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
