package errors

import "fmt"

// WrappedError attaches a short description of what was being attempted
// to the rendered text of a lower-level failure. The original failure is
// rendered once, when the WrappedError is built, and not retained.
type WrappedError struct {
	message  string
	original string
	code     ErrorCode
}

// Wrap renders v with %v and pairs it with message. v is usually an
// error, but any value with a textual rendering, such as a fmt.Stringer,
// is accepted.
//
// If v is an error carrying an ErrorCode, the wrapped failure keeps it;
// otherwise it is CodeUnknown.
//
// Example:
//
//	if err := os.Rename(staging, target); err != nil {
//	    return errors.Wrap(err, "error moving server into place")
//	}
func Wrap(v interface{}, message string) WrappedError {
	c := CodeUnknown
	if err, ok := v.(error); ok {
		c = GetCode(err)
	}
	return WrappedError{
		message:  message,
		original: fmt.Sprint(v),
		code:     c,
	}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(v interface{}, format string, args ...interface{}) WrappedError {
	return Wrap(v, fmt.Sprintf(format, args...))
}

// WrapDebug pairs message with the structural rendering (%+v) of v, for
// values that have no user-facing rendering of their own.
func WrapDebug(v interface{}, message string) WrappedError {
	return WrappedError{
		message:  message,
		original: fmt.Sprintf("%+v", v),
		code:     CodeUnknown,
	}
}

func (e WrappedError) Error() string {
	return e.message + ": " + e.original
}

// Message returns the context message.
func (e WrappedError) Message() string {
	return e.message
}

// Original returns the rendering of the wrapped failure.
func (e WrappedError) Original() string {
	return e.original
}

// Code returns the code inherited from the wrapped failure.
func (e WrappedError) Code() ErrorCode {
	if e.code == "" {
		return CodeUnknown
	}
	return e.code
}
