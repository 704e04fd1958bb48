// Package code defines the structured failures raised by the tunnel
// runtime: singleton coordination, RPC, process spawning and the
// authentication handshake.
//
// Each tag is its own value type so callers can branch on the failure
// kind with a type switch or errors.As and read the typed fields, instead
// of matching on rendered text:
//
//	var exited code.SingletonLockedProcessExited
//	if errors.As(err, &exited) {
//	    // the lock holder (exited.PID) is gone, retry acquiring the lock
//	}
//
// The set of tags is closed. Two tags, AppAlreadyLocked and AppLockFailed,
// only exist in Windows builds.
package code

import (
	"fmt"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/jmgilman/go/tunnelcli/rpc"
)

// Error is implemented by every tag in this package and nothing else.
type Error interface {
	error
	codeError()
}

//go-sumtype:decl Error

// AsyncPipeFailed reports that connecting to a socket or named pipe failed.
type AsyncPipeFailed struct {
	Err error
}

func (e AsyncPipeFailed) Error() string {
	return fmt.Sprintf("could not connect to socket/pipe: %v", e.Err)
}

func (e AsyncPipeFailed) Unwrap() error { return e.Err }

// AsyncPipeListenerFailed reports that listening on a socket or named pipe failed.
type AsyncPipeListenerFailed struct {
	Err error
}

func (e AsyncPipeListenerFailed) Error() string {
	return fmt.Sprintf("could not listen on socket/pipe: %v", e.Err)
}

func (e AsyncPipeListenerFailed) Unwrap() error { return e.Err }

// SingletonLockfileOpenFailed reports that the singleton lock file could not be created.
type SingletonLockfileOpenFailed struct {
	Err error
}

func (e SingletonLockfileOpenFailed) Error() string {
	return fmt.Sprintf("could not create singleton lock file: %v", e.Err)
}

func (e SingletonLockfileOpenFailed) Unwrap() error { return e.Err }

// SingletonLockfileReadFailed reports that the singleton lock file contents
// could not be decoded.
type SingletonLockfileReadFailed struct {
	Err error
}

func (e SingletonLockfileReadFailed) Error() string {
	return fmt.Sprintf("could not read singleton lock file: %v", e.Err)
}

func (e SingletonLockfileReadFailed) Unwrap() error { return e.Err }

// SingletonLockedProcessExited reports that the process holding the
// singleton lock exited while this process was waiting on it.
type SingletonLockedProcessExited struct {
	PID uint32
}

func (e SingletonLockedProcessExited) Error() string {
	return fmt.Sprintf("the process holding the singleton lock file (pid=%d) exited", e.PID)
}

// NoRunningTunnel reports that no tunnel process is running.
type NoRunningTunnel struct{}

func (NoRunningTunnel) Error() string { return "no tunnel process is currently running" }

// TunnelRPCCallFailed carries the error object of a failed RPC call.
type TunnelRPCCallFailed struct {
	Response rpc.ResponseError
}

func (e TunnelRPCCallFailed) Error() string {
	return fmt.Sprintf("rpc call failed: %v", e.Response)
}

func (e TunnelRPCCallFailed) Unwrap() error { return e.Response }

// CommandFailed reports an external command that exited unsuccessfully.
type CommandFailed struct {
	// Command is the shell-quoted command line that was run.
	Command string

	// Code is the exit code of the command.
	Code int

	// Output is the captured output of the command.
	Output string
}

// NewCommandFailed builds a CommandFailed from an argument vector,
// quoting each argument so the command text can be pasted into a shell.
func NewCommandFailed(args []string, exitCode int, output string) CommandFailed {
	return CommandFailed{
		Command: shellquote.Join(args...),
		Code:    exitCode,
		Output:  output,
	}
}

func (e CommandFailed) Error() string {
	return fmt.Sprintf("failed to run command \"%s\" (code %d): %s", e.Command, e.Code, e.Output)
}

// UnsupportedPlatform reports that the current platform is not supported.
type UnsupportedPlatform struct {
	Platform string
}

func (e UnsupportedPlatform) Error() string {
	return fmt.Sprintf("platform not currently supported: %s", e.Platform)
}

// PrerequisitesFailed reports that the machine lacks the prerequisites of
// a component. Bullets lists the alternatives that would satisfy it.
type PrerequisitesFailed struct {
	Name    string
	Bullets string
}

func (e PrerequisitesFailed) Error() string {
	return fmt.Sprintf("This machine does not meet %s's prerequisites, expected either...: %s", e.Name, e.Bullets)
}

// ProcessSpawnFailed reports that a child process could not be started.
type ProcessSpawnFailed struct {
	Err error
}

func (e ProcessSpawnFailed) Error() string {
	return fmt.Sprintf("failed to spawn process: %v", e.Err)
}

func (e ProcessSpawnFailed) Unwrap() error { return e.Err }

// ProcessSpawnHandshakeFailed reports that a child process started but
// did not complete its startup handshake.
type ProcessSpawnHandshakeFailed struct {
	Err error
}

func (e ProcessSpawnHandshakeFailed) Error() string {
	return fmt.Sprintf("failed to handshake spawned process: %v", e.Err)
}

func (e ProcessSpawnHandshakeFailed) Unwrap() error { return e.Err }

// CorruptDownload reports a download that failed verification.
type CorruptDownload struct {
	Reason string
}

func (e CorruptDownload) Error() string {
	return fmt.Sprintf("download appears corrupted, please retry (%s)", e.Reason)
}

// PortForwardingNotAvailable reports a forwarding request made where no
// forwarding is possible.
type PortForwardingNotAvailable struct{}

func (PortForwardingNotAvailable) Error() string {
	return "port forwarding is not available in this context"
}

// ServerAuthRequired reports a request made before the client authenticated.
type ServerAuthRequired struct{}

func (ServerAuthRequired) Error() string { return "'auth' call required" }

// AuthChallengeNotIssued reports a challenge response sent before any
// challenge was issued.
type AuthChallengeNotIssued struct{}

func (AuthChallengeNotIssued) Error() string { return "challenge not yet issued" }

// AuthChallengeBadToken reports a challenge response with an invalid token.
type AuthChallengeBadToken struct{}

func (AuthChallengeBadToken) Error() string { return "challenge token is invalid" }

// AuthMismatch reports a client that was refused outright.
type AuthMismatch struct{}

func (AuthMismatch) Error() string { return "unauthorized client refused" }

// KeyringTimeout reports that the OS keyring did not answer in time.
type KeyringTimeout struct{}

func (KeyringTimeout) Error() string { return "keyring communication timed out after 5s" }

func (AsyncPipeFailed) codeError()              {}
func (AsyncPipeListenerFailed) codeError()      {}
func (SingletonLockfileOpenFailed) codeError()  {}
func (SingletonLockfileReadFailed) codeError()  {}
func (SingletonLockedProcessExited) codeError() {}
func (NoRunningTunnel) codeError()              {}
func (TunnelRPCCallFailed) codeError()          {}
func (CommandFailed) codeError()                {}
func (UnsupportedPlatform) codeError()          {}
func (PrerequisitesFailed) codeError()          {}
func (ProcessSpawnFailed) codeError()           {}
func (ProcessSpawnHandshakeFailed) codeError()  {}
func (CorruptDownload) codeError()              {}
func (PortForwardingNotAvailable) codeError()   {}
func (ServerAuthRequired) codeError()           {}
func (AuthChallengeNotIssued) codeError()       {}
func (AuthChallengeBadToken) codeError()        {}
func (AuthMismatch) codeError()                 {}
func (KeyringTimeout) codeError()               {}
