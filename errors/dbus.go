package errors

import (
	"os"
	"strings"
)

// LookupEnv reports the value of an environment variable and whether it
// is set. os.LookupEnv satisfies it.
type LookupEnv func(key string) (string, bool)

// wslEnvVar is set inside WSL distributions.
const wslEnvVar = "WSL_DISTRO_NAME"

const wslGuidance = "To enable systemd on WSL, check out: https://devblogs.microsoft.com/commandline/systemd-support-is-now-available-in-wsl/.\n\n"

// DbusConnectFailedError is returned when the session bus used to talk to
// systemd cannot be reached. Message is the underlying connection error.
type DbusConnectFailedError struct {
	Message string

	// WSL adds guidance on enabling systemd under WSL.
	WSL bool
}

// NewDbusConnectFailedError records message and whether the process runs
// under WSL according to lookup. A nil lookup reads the process environment.
func NewDbusConnectFailedError(message string, lookup LookupEnv) DbusConnectFailedError {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	_, wsl := lookup(wslEnvVar)
	return DbusConnectFailedError{Message: message, WSL: wsl}
}

func (e DbusConnectFailedError) Error() string {
	var b strings.Builder
	b.WriteString("Error creating dbus session. This command uses systemd for managing services, you should check that systemd is installed and under your user.\n\n")

	if e.WSL {
		b.WriteString(wslGuidance)
	}

	b.WriteString("If running `systemctl status` works, systemd is ok, but your session dbus may not be. You might need to:\n\n")
	b.WriteString("- Install the `dbus-user-session` package, and reboot if it was not installed\n")
	b.WriteString("- Start the user dbus session with `systemctl --user enable dbus --now`.\n\n")
	b.WriteString("The error encountered was: ")
	b.WriteString(e.Message)
	b.WriteByte('\n')
	return b.String()
}
