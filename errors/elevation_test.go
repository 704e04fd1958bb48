package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindowsNeedsElevationError(t *testing.T) {
	err := WindowsNeedsElevationError{
		Message: "Could not register the service",
		Process: ProcessInfo{
			Executable: `C:\Program Files\Code\bin\code.exe`,
			Args:       []string{"tunnel", "service", "install", "--name", "it's mine"},
		},
	}

	want := "Could not register the service\n\n" +
		"You may need to run this command as an administrator:\n" +
		" 1. Open the start menu and search for Powershell\n" +
		" 2. Right click and 'Run as administrator'\n" +
		` 3. Run &'C:\Program Files\Code\bin\code.exe' 'tunnel' 'service' 'install' '--name' 'it''s mine'` + "\n"

	require.Equal(t, want, err.Error())
}

func TestWindowsNeedsElevationError_NoArgs(t *testing.T) {
	err := WindowsNeedsElevationError{
		Message: "denied",
		Process: ProcessInfo{Executable: `C:\code.exe`},
	}
	require.True(t, strings.HasSuffix(err.Error(), ` 3. Run &'C:\code.exe'`+"\n"))
}

func TestWindowsNeedsElevationError_UnknownExecutable(t *testing.T) {
	err := WindowsNeedsElevationError{
		Message: "denied",
		Process: ProcessInfo{Args: []string{"tunnel"}},
	}

	msg := err.Error()
	require.Contains(t, msg, " 3. Run the same command again\n")
	require.NotContains(t, msg, "Run &")
	require.NotContains(t, msg, "'tunnel'")
}

func TestNewWindowsNeedsElevationError(t *testing.T) {
	err := NewWindowsNeedsElevationError("denied")
	require.Equal(t, "denied", err.Message)
	require.Equal(t, CurrentProcess(), err.Process)
	require.Equal(t, CodeForbidden, err.Code())

	msg := err.Error()
	hasCommand := strings.Contains(msg, " 3. Run &")
	hasFallback := strings.Contains(msg, " 3. Run the same command again")
	require.True(t, hasCommand != hasFallback)
}

func TestPSQuote(t *testing.T) {
	require.Equal(t, "''", psQuote(""))
	require.Equal(t, "'plain'", psQuote("plain"))
	require.Equal(t, "'a''b'", psQuote("a'b"))
	require.Equal(t, "'$env:HOME'", psQuote("$env:HOME"))
}
