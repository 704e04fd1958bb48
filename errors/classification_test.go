package errors

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/tunnelcli/errors/code"
)

func TestErrorClassification_IsRetryable(t *testing.T) {
	tests := []struct {
		name           string
		classification ErrorClassification
		want           bool
	}{
		{
			name:           "retryable classification",
			classification: ClassificationRetryable,
			want:           true,
		},
		{
			name:           "permanent classification",
			classification: ClassificationPermanent,
			want:           false,
		},
		{
			name:           "unknown classification",
			classification: ErrorClassification("UNKNOWN"),
			want:           false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.classification.IsRetryable())
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		code ErrorCode
		want ErrorClassification
	}{
		{name: "retryable - network", code: CodeNetwork, want: ClassificationRetryable},
		{name: "retryable - timeout", code: CodeTimeout, want: ClassificationRetryable},
		{name: "retryable - rate limit", code: CodeRateLimit, want: ClassificationRetryable},
		{name: "retryable - unavailable", code: CodeUnavailable, want: ClassificationRetryable},
		{name: "retryable - tunnel", code: CodeTunnel, want: ClassificationRetryable},
		{name: "permanent - not found", code: CodeNotFound, want: ClassificationPermanent},
		{name: "permanent - consent", code: CodeConsentRequired, want: ClassificationPermanent},
		{name: "permanent - rpc", code: CodeRPC, want: ClassificationPermanent},
		{name: "permanent - install", code: CodeInstall, want: ClassificationPermanent},
		{name: "permanent - cancelled", code: CodeCancelled, want: ClassificationPermanent},
		{name: "permanent - unknown", code: CodeUnknown, want: ClassificationPermanent},
		{name: "unregistered code defaults to permanent", code: ErrorCode("CUSTOM"), want: ClassificationPermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, classify(tt.code))
		})
	}
}

func TestEveryCodeIsClassified(t *testing.T) {
	codes := []ErrorCode{
		CodeNotFound, CodeAlreadyExists, CodeConflict,
		CodeUnauthorized, CodeForbidden, CodeConsentRequired,
		CodeInvalidInput, CodeInvalidConfig,
		CodeNetwork, CodeTimeout, CodeRateLimit, CodeUnavailable, CodeTunnel, CodeRPC,
		CodeInstall, CodeCancelled,
		CodeEnvironment, CodeExecutionFailed,
		CodeInternal, CodeUnknown,
	}
	for _, c := range codes {
		_, ok := defaultClassifications[c]
		require.True(t, ok, "code %s has no classification", c)
	}
	require.Len(t, defaultClassifications, len(codes))
}

func TestAnyError_Classification(t *testing.T) {
	tests := []struct {
		name string
		leaf Leaf
		want ErrorClassification
	}{
		{
			name: "tunnel failures are retryable",
			leaf: DevTunnelError{Message: "relay unreachable"},
			want: ClassificationRetryable,
		},
		{
			name: "server error status is retryable",
			leaf: StatusError{URL: "https://update.example.com", StatusCode: 503},
			want: ClassificationRetryable,
		},
		{
			name: "keyring timeout is retryable",
			leaf: CodeError{Err: code.KeyringTimeout{}},
			want: ClassificationRetryable,
		},
		{
			name: "invalid tunnel name is permanent",
			leaf: InvalidTunnelNameError{Message: "names may not contain spaces"},
			want: ClassificationPermanent,
		},
		{
			name: "refused client is permanent",
			leaf: CodeError{Err: code.AuthMismatch{}},
			want: ClassificationPermanent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, From(tt.leaf).Classification())
		})
	}
}
