package errors

import (
	stderrors "errors"
	"net/url"

	"github.com/jmgilman/go/tunnelcli/errors/code"
)

// Leaf is a single, self-contained failure of the tool. The set of leaves
// is closed: only types listed in registry.yaml implement it.
type Leaf interface {
	error

	// Kind identifies the leaf type.
	Kind() Kind

	// Code returns the area of the tool the failure belongs to.
	Code() ErrorCode

	leaf()
}

//go-sumtype:decl Leaf

// AnyError holds exactly one registered leaf. It is the value command
// dispatch receives, whatever subsystem produced the failure.
//
// The zero AnyError holds no leaf and is not a valid failure; obtain
// values through From or Lift. Its methods do not panic: it renders as
// "<nil>", has Kind 0 and CodeUnknown.
type AnyError struct {
	leaf Leaf
}

// From places a leaf in the umbrella.
func From(l Leaf) AnyError {
	return AnyError{leaf: l}
}

// Lift returns the umbrella view of err. It accepts an AnyError, any
// registered leaf, any code.Error (held in the CodeError case) and any
// network failure (converted by FromNetwork into the WrappedError case).
// The second result is false when err is nil or none of these.
func Lift(err error) (AnyError, bool) {
	if err == nil {
		return AnyError{}, false
	}

	var a AnyError
	if stderrors.As(err, &a) && a.leaf != nil {
		return a, true
	}

	var l Leaf
	if stderrors.As(err, &l) {
		return From(l), true
	}

	var c code.Error
	if stderrors.As(err, &c) {
		return From(CodeError{Err: c}), true
	}

	var uerr *url.Error
	if stderrors.As(err, &uerr) {
		return From(FromNetwork(err)), true
	}

	return AnyError{}, false
}

// Error renders the held leaf.
func (e AnyError) Error() string {
	if e.leaf == nil {
		return "<nil>"
	}
	return e.leaf.Error()
}

// Unwrap returns the held leaf.
func (e AnyError) Unwrap() error {
	return e.leaf
}

// Leaf returns the held leaf.
func (e AnyError) Leaf() Leaf {
	return e.leaf
}

// Kind returns the kind of the held leaf.
func (e AnyError) Kind() Kind {
	if e.leaf == nil {
		return 0
	}
	return e.leaf.Kind()
}

// Code returns the code of the held leaf.
func (e AnyError) Code() ErrorCode {
	if e.leaf == nil {
		return CodeUnknown
	}
	return e.leaf.Code()
}

// Classification returns the classification of the held leaf's code.
func (e AnyError) Classification() ErrorClassification {
	return classify(e.Code())
}
