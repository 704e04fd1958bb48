package errors

import "fmt"

// NoHomeForLauncherError means $HOME is unset and no data directory was given.
type NoHomeForLauncherError struct{}

func (NoHomeForLauncherError) Error() string {
	return "No $HOME variable was found in your environment. Either set it, or specify a `--data-dir` manually when invoking the launcher."
}

// MissingHomeDirectoryError means the current user has no home directory.
type MissingHomeDirectoryError struct{}

func (MissingHomeDirectoryError) Error() string {
	return "Could not find your home directory. Please ensure this command is running in the context of a normal user."
}

// ServiceAlreadyRegisteredError is returned when installing the tunnel
// as an OS service while it is already installed.
type ServiceAlreadyRegisteredError struct{}

func (ServiceAlreadyRegisteredError) Error() string {
	return fmt.Sprintf("Already registered the service. Run `%s tunnel service uninstall` to unregister it first", ApplicationName)
}
