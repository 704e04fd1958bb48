// Package rpc holds the parts of the tunnel control protocol that other
// packages need to reason about failures.
package rpc

import "fmt"

// ResponseError is the error object carried by a failed RPC response frame.
type ResponseError struct {
	// Code is the protocol-level error code reported by the remote side.
	Code int `json:"code"`

	// Message is the remote side's description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e ResponseError) Error() string {
	return fmt.Sprintf("code %d: %s", e.Code, e.Message)
}
