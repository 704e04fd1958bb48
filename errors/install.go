package errors

import "fmt"

// MissingLegalConsentError is returned when the user has not accepted the
// license terms. Message is shown as-is.
type MissingLegalConsentError struct {
	Message string
}

func (e MissingLegalConsentError) Error() string {
	return e.Message
}

// InvalidServerExtensionError reports a server archive with an extension
// other than zip or gz.
type InvalidServerExtensionError struct {
	Extension string
}

func (e InvalidServerExtensionError) Error() string {
	return fmt.Sprintf("invalid server extension '%s'", e.Extension)
}

// MissingEntrypointError reports a downloaded server without its entrypoint scripts.
type MissingEntrypointError struct{}

func (MissingEntrypointError) Error() string {
	return "Missing entrypoints in server download. Most likely this is a corrupted download. Please retry"
}

// SetupError reports a host that cannot run the server and points at the
// platform requirements page.
type SetupError struct {
	Message string
}

func (e SetupError) Error() string {
	return fmt.Sprintf("%s\n\nMore info at %s/remote/linux", e.Message, documentationURL())
}

// ExtensionInstallError reports a failed editor extension install.
type ExtensionInstallError struct {
	Message string
}

func (e ExtensionInstallError) Error() string {
	return fmt.Sprintf("Extension install failed: %s", e.Message)
}

// NoInstallInPathError is returned when a user-provided install path does
// not contain the product.
type NoInstallInPathError struct {
	Path string
}

func (e NoInstallInPathError) Error() string {
	return fmt.Sprintf(
		"No %s installation could be found in %s. You can run `%s --use-quality=stable` to switch to the latest stable version of %s.",
		QualitylessProductName,
		e.Path,
		ApplicationName,
		QualitylessProductName,
	)
}

// InvalidRequestedVersionError rejects a version that is not a quality
// name, a semantic version or an absolute path.
type InvalidRequestedVersionError struct{}

func (InvalidRequestedVersionError) Error() string {
	return "The requested version is invalid, expected one of 'stable', 'insiders', version number (x.y.z), or absolute path."
}

// InstallationCancelledError is returned when the user aborts an install.
type InstallationCancelledError struct{}

func (InstallationCancelledError) Error() string {
	return "Installation aborted."
}

// UpdatesNotConfiguredError is returned when the update service cannot be
// reached because the build does not configure it.
type UpdatesNotConfiguredError struct {
	Reason string
}

// NoUpdateURL reports a build without an update service URL.
func NoUpdateURL() UpdatesNotConfiguredError {
	return UpdatesNotConfiguredError{Reason: "no service url"}
}

func (e UpdatesNotConfiguredError) Error() string {
	return fmt.Sprintf("Update service is not configured: %s", e.Reason)
}

// CorruptDownloadError reports a failed self-update of the CLI.
type CorruptDownloadError struct {
	Message string
}

func (e CorruptDownloadError) Error() string {
	return fmt.Sprintf("Error updating the %s CLI: %s", QualitylessProductName, e.Message)
}
