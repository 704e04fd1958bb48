package errors

import (
	"fmt"

	"github.com/jmgilman/go/tunnelcli/errors/code"
)

// ConnectionTokenMismatchError is returned when the connection token does
// not match the one the running server was started with, usually because
// a different user is connecting.
type ConnectionTokenMismatchError struct {
	Message string
}

func (e ConnectionTokenMismatchError) Error() string {
	return e.Message
}

// DevTunnelError reports that the tunnel could not be opened.
type DevTunnelError struct {
	Message string
}

func (e DevTunnelError) Error() string {
	return fmt.Sprintf("could not open tunnel: %s", e.Message)
}

// TunnelCreationError reports that the tunnel service refused to create
// a tunnel with the requested name.
type TunnelCreationError struct {
	Name   string
	Reason string
}

func (e TunnelCreationError) Error() string {
	return fmt.Sprintf("Could not create tunnel with name: %s\nReason: %s", e.Name, e.Reason)
}

// TunnelHostError carries a failure reported by the tunnel host.
type TunnelHostError struct {
	Message string
}

func (e TunnelHostError) Error() string {
	return e.Message
}

// InvalidTunnelNameError rejects a tunnel name that fails validation.
type InvalidTunnelNameError struct {
	Message string
}

func (e InvalidTunnelNameError) Error() string {
	return e.Message
}

// MismatchedLaunchModeError is returned when a server is already running
// but listens on a port where a socket was requested, or the reverse.
type MismatchedLaunchModeError struct{}

func (MismatchedLaunchModeError) Error() string {
	return "A server is already running, but it was not launched in the same listening mode (port vs. socket) as this request"
}

// NoAttachedServerError means no server is attached to the tunnel.
type NoAttachedServerError struct{}

func (NoAttachedServerError) Error() string {
	return "No server is running"
}

// ControlPortForwardError is returned for forward or unforward requests
// that target ControlPort.
type ControlPortForwardError struct{}

func (ControlPortForwardError) Error() string {
	return fmt.Sprintf("Cannot forward or unforward port %d.", ControlPort)
}

// ServerClosedError cancels a request whose server has shut down.
type ServerClosedError struct{}

func (ServerClosedError) Error() string {
	return "Request cancelled because the server has closed"
}

// InvalidRPCDataError reports an RPC frame that could not be parsed.
type InvalidRPCDataError struct {
	Message string
}

func (e InvalidRPCDataError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// CodeError holds a structured runtime failure from package code.
// Use errors.As with the concrete tag type to inspect its fields.
type CodeError struct {
	Err code.Error
}

func (e CodeError) Error() string {
	if e.Err == nil {
		return "<nil>"
	}
	return e.Err.Error()
}

func (e CodeError) Unwrap() error {
	return e.Err
}

// Code maps the held tag to the area it belongs to.
func (e CodeError) Code() ErrorCode {
	switch e.Err.(type) {
	case code.ServerAuthRequired, code.AuthChallengeNotIssued, code.AuthChallengeBadToken, code.AuthMismatch:
		return CodeUnauthorized
	case code.TunnelRPCCallFailed:
		return CodeRPC
	case code.CommandFailed, code.ProcessSpawnFailed, code.ProcessSpawnHandshakeFailed:
		return CodeExecutionFailed
	case code.NoRunningTunnel:
		return CodeNotFound
	case code.KeyringTimeout:
		return CodeTimeout
	case code.UnsupportedPlatform, code.PrerequisitesFailed, code.PortForwardingNotAvailable:
		return CodeEnvironment
	case code.CorruptDownload:
		return CodeInstall
	default:
		return CodeInternal
	}
}
