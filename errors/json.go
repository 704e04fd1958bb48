package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat JSON form of a failure, used by the --json
// output mode of the CLI. Only the rendered message is exposed; causes
// held inside a leaf are not serialized.
type ErrorResponse struct {
	// Kind is the leaf type name. Omitted for failures that are not leaves.
	Kind string `json:"kind,omitempty"`

	// Code is the error code identifying the area of the failure.
	Code string `json:"code"`

	// Message is the user-facing rendering of the failure.
	Message string `json:"message"`

	// Classification indicates whether the failure is retryable or permanent.
	Classification string `json:"classification"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// The message is always err.Error(), including any context added by
// fmt.Errorf wrapping. Failures that Lift accepts carry their kind, code
// and classification; any other error is reported with CodeUnknown and
// ClassificationPermanent.
//
// Example:
//
//	if err := run(ctx); err != nil {
//	    _ = json.NewEncoder(os.Stderr).Encode(errors.ToJSON(err))
//	    os.Exit(1)
//	}
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	if a, ok := Lift(err); ok {
		resp := a.response()
		resp.Message = err.Error()
		return resp
	}

	return &ErrorResponse{
		Code:           string(CodeUnknown),
		Message:        err.Error(),
		Classification: string(ClassificationPermanent),
	}
}

func (e AnyError) response() *ErrorResponse {
	return &ErrorResponse{
		Kind:           e.Kind().String(),
		Code:           string(e.Code()),
		Message:        e.Error(),
		Classification: string(e.Classification()),
	}
}

// MarshalJSON implements json.Marshaler for AnyError, so an AnyError can be
// embedded in a response struct without calling ToJSON.
//
// Example:
//
//	data, _ := json.Marshal(errors.From(errors.NoAttachedServerError{}))
//	// {"kind":"NoAttachedServerError","code":"NOT_FOUND","message":"No server is running","classification":"PERMANENT"}
func (e AnyError) MarshalJSON() ([]byte, error) {
	if e.leaf == nil {
		return []byte("null"), nil
	}
	data, err := json.Marshal(e.response())
	if err != nil {
		// ErrorResponse holds only strings, so this is not expected.
		return nil, WrapDebug(err, "failed to marshal error response")
	}
	return data, nil
}
