package errors

// ErrorCode groups failures by the area of the tool they come from.
// Codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates that something the command needs does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates that something the command would create already exists.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeConflict indicates that existing state is incompatible with the request.
	CodeConflict ErrorCode = "CONFLICT"

	// Permission errors.

	// CodeUnauthorized indicates missing or rejected credentials.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// CodeForbidden indicates that the current user may not perform the operation.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// CodeConsentRequired indicates that the user has not accepted the license terms.
	CodeConsentRequired ErrorCode = "CONSENT_REQUIRED"

	// Validation errors.

	// CodeInvalidInput indicates invalid arguments supplied by the user.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a build or runtime configuration problem.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Infrastructure errors.

	// CodeNetwork indicates a failed network request.
	CodeNetwork ErrorCode = "NETWORK_ERROR"

	// CodeTimeout indicates an operation exceeded its time limit.
	CodeTimeout ErrorCode = "TIMEOUT"

	// CodeRateLimit indicates the remote service throttled the request.
	CodeRateLimit ErrorCode = "RATE_LIMIT_EXCEEDED"

	// CodeUnavailable indicates the remote side is temporarily unavailable.
	CodeUnavailable ErrorCode = "SERVICE_UNAVAILABLE"

	// CodeTunnel indicates the tunnel service could not host or create a tunnel.
	CodeTunnel ErrorCode = "TUNNEL_ERROR"

	// CodeRPC indicates a malformed or failed RPC exchange.
	CodeRPC ErrorCode = "RPC_ERROR"

	// Installation errors.

	// CodeInstall indicates a server or CLI installation or update failed.
	CodeInstall ErrorCode = "INSTALL_FAILED"

	// CodeCancelled indicates the user aborted the operation.
	CodeCancelled ErrorCode = "CANCELLED"

	// Host errors.

	// CodeEnvironment indicates the host environment lacks something the
	// tool depends on (home directory, systemd, prerequisites).
	CodeEnvironment ErrorCode = "ENVIRONMENT_ERROR"

	// CodeExecutionFailed indicates an external process failed to start or run.
	CodeExecutionFailed ErrorCode = "EXECUTION_FAILED"

	// System errors.

	// CodeInternal indicates an internal failure of the tool itself.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates the failure could not be attributed to any area.
	CodeUnknown ErrorCode = "UNKNOWN"
)
