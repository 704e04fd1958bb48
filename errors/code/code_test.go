package code

import (
	stderrors "errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/tunnelcli/rpc"
)

// samples returns one value of every tag available on this platform.
func samples() []Error {
	ioErr := stderrors.New("permission denied")
	return append([]Error{
		AsyncPipeFailed{Err: ioErr},
		AsyncPipeListenerFailed{Err: ioErr},
		SingletonLockfileOpenFailed{Err: ioErr},
		SingletonLockfileReadFailed{Err: stderrors.New("unexpected EOF")},
		SingletonLockedProcessExited{PID: 4242},
		NoRunningTunnel{},
		TunnelRPCCallFailed{Response: rpc.ResponseError{Code: 7, Message: "boom"}},
		CommandFailed{Command: "systemctl --user start code-tunnel", Code: 1, Output: "unit not found"},
		UnsupportedPlatform{Platform: "plan9"},
		PrerequisitesFailed{Name: "VS Code Server", Bullets: "\n- glibc >= 2.28"},
		ProcessSpawnFailed{Err: ioErr},
		ProcessSpawnHandshakeFailed{Err: ioErr},
		CorruptDownload{Reason: "checksum mismatch"},
		PortForwardingNotAvailable{},
		ServerAuthRequired{},
		AuthChallengeNotIssued{},
		AuthChallengeBadToken{},
		AuthMismatch{},
		KeyringTimeout{},
	}, platformSamples()...)
}

// tagName switches over every platform-independent tag without a
// default arm.
func tagName(err Error) string {
	switch err.(type) {
	case AsyncPipeFailed:
		return "AsyncPipeFailed"
	case AsyncPipeListenerFailed:
		return "AsyncPipeListenerFailed"
	case SingletonLockfileOpenFailed:
		return "SingletonLockfileOpenFailed"
	case SingletonLockfileReadFailed:
		return "SingletonLockfileReadFailed"
	case SingletonLockedProcessExited:
		return "SingletonLockedProcessExited"
	case NoRunningTunnel:
		return "NoRunningTunnel"
	case TunnelRPCCallFailed:
		return "TunnelRPCCallFailed"
	case CommandFailed:
		return "CommandFailed"
	case UnsupportedPlatform:
		return "UnsupportedPlatform"
	case PrerequisitesFailed:
		return "PrerequisitesFailed"
	case ProcessSpawnFailed:
		return "ProcessSpawnFailed"
	case ProcessSpawnHandshakeFailed:
		return "ProcessSpawnHandshakeFailed"
	case CorruptDownload:
		return "CorruptDownload"
	case PortForwardingNotAvailable:
		return "PortForwardingNotAvailable"
	case ServerAuthRequired:
		return "ServerAuthRequired"
	case AuthChallengeNotIssued:
		return "AuthChallengeNotIssued"
	case AuthChallengeBadToken:
		return "AuthChallengeBadToken"
	case AuthMismatch:
		return "AuthMismatch"
	case KeyringTimeout:
		return "KeyringTimeout"
	}
	return platformTagName(err)
}

func TestEveryTagRenders(t *testing.T) {
	seen := make(map[string]bool)
	for _, err := range samples() {
		name := tagName(err)
		require.NotEmpty(t, name, "unnamed tag %T", err)
		require.False(t, seen[name], "duplicate sample for %s", name)
		seen[name] = true

		msg := err.Error()
		assert.NotEmpty(t, msg, name)
		assert.NotContains(t, strings.ToLower(msg), "unknown error", name)
		assert.Equal(t, msg, err.Error(), "rendering of %s is not stable", name)
	}
}

func TestRendering(t *testing.T) {
	tests := []struct {
		name string
		err  Error
		want string
	}{
		{
			name: "locked process exited",
			err:  SingletonLockedProcessExited{PID: 4242},
			want: "the process holding the singleton lock file (pid=4242) exited",
		},
		{
			name: "command failed",
			err:  CommandFailed{Command: "git status", Code: 128, Output: "not a git repository"},
			want: `failed to run command "git status" (code 128): not a git repository`,
		},
		{
			name: "rpc call failed",
			err:  TunnelRPCCallFailed{Response: rpc.ResponseError{Code: 2, Message: "no such method"}},
			want: "rpc call failed: code 2: no such method",
		},
		{
			name: "spawn failed",
			err:  ProcessSpawnFailed{Err: fs.ErrNotExist},
			want: "failed to spawn process: file does not exist",
		},
		{
			name: "handshake failed",
			err:  ProcessSpawnHandshakeFailed{Err: fs.ErrClosed},
			want: "failed to handshake spawned process: file already closed",
		},
		{
			name: "auth required",
			err:  ServerAuthRequired{},
			want: "'auth' call required",
		},
		{
			name: "corrupt download",
			err:  CorruptDownload{Reason: "checksum mismatch"},
			want: "download appears corrupted, please retry (checksum mismatch)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAuthTagsAreDistinct(t *testing.T) {
	auth := []Error{ServerAuthRequired{}, AuthChallengeNotIssued{}, AuthChallengeBadToken{}, AuthMismatch{}}
	messages := make(map[string]bool)
	for _, err := range auth {
		messages[err.Error()] = true
	}
	require.Len(t, messages, len(auth))
}

func TestUnwrapExposesCause(t *testing.T) {
	var err error = SingletonLockfileOpenFailed{Err: fs.ErrPermission}
	require.ErrorIs(t, err, fs.ErrPermission)

	err = ProcessSpawnFailed{Err: fs.ErrNotExist}
	require.ErrorIs(t, err, fs.ErrNotExist)

	err = TunnelRPCCallFailed{Response: rpc.ResponseError{Code: 3, Message: "bad"}}
	var resp rpc.ResponseError
	require.ErrorAs(t, err, &resp)
	require.Equal(t, 3, resp.Code)
}

func TestErrorsAsSelectsTag(t *testing.T) {
	var err error = SingletonLockedProcessExited{PID: 12}

	var exited SingletonLockedProcessExited
	require.ErrorAs(t, err, &exited)
	require.Equal(t, uint32(12), exited.PID)

	var spawn ProcessSpawnFailed
	require.False(t, stderrors.As(err, &spawn))
}

func TestNewCommandFailed(t *testing.T) {
	err := NewCommandFailed([]string{"systemctl", "--user", "start", "code-tunnel.service"}, 5, "failed")
	require.Equal(t, "systemctl --user start code-tunnel.service", err.Command)
	require.Equal(t, 5, err.Code)
	require.Equal(t, "failed", err.Output)

	spaced := NewCommandFailed([]string{"echo", "two words"}, 1, "")
	require.NotEqual(t, "echo two words", spaced.Command)
	require.True(t, strings.HasPrefix(spaced.Command, "echo "))
}
