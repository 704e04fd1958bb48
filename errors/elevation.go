package errors

import (
	"os"
	"strings"
)

// ProcessInfo is a snapshot of how the current process was invoked.
// An empty Executable means the executable path could not be determined.
type ProcessInfo struct {
	Executable string
	Args       []string
}

// CurrentProcess snapshots the executable path and arguments (without
// the program name) of the running process.
func CurrentProcess() ProcessInfo {
	info := ProcessInfo{}
	if exe, err := os.Executable(); err == nil {
		info.Executable = exe
	}
	if len(os.Args) > 1 {
		info.Args = append([]string(nil), os.Args[1:]...)
	}
	return info
}

// WindowsNeedsElevationError is returned when an operation requires an
// administrator shell. Its message walks the user through re-running the
// exact same invocation from an elevated PowerShell prompt.
type WindowsNeedsElevationError struct {
	Message string
	Process ProcessInfo
}

// NewWindowsNeedsElevationError captures the current process invocation
// alongside message.
func NewWindowsNeedsElevationError(message string) WindowsNeedsElevationError {
	return WindowsNeedsElevationError{
		Message: message,
		Process: CurrentProcess(),
	}
}

func (e WindowsNeedsElevationError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	b.WriteString("\n\n")
	b.WriteString("You may need to run this command as an administrator:\n")
	b.WriteString(" 1. Open the start menu and search for Powershell\n")
	b.WriteString(" 2. Right click and 'Run as administrator'\n")
	if e.Process.Executable == "" {
		b.WriteString(" 3. Run the same command again\n")
		return b.String()
	}

	b.WriteString(" 3. Run &")
	b.WriteString(psQuote(e.Process.Executable))
	for _, arg := range e.Process.Args {
		b.WriteByte(' ')
		b.WriteString(psQuote(arg))
	}
	b.WriteByte('\n')
	return b.String()
}

// psQuote returns s as a PowerShell single-quoted literal.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
