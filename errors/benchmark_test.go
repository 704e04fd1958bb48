package errors_test

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/jmgilman/go/tunnelcli/errors"
	"github.com/jmgilman/go/tunnelcli/errors/code"
)

func BenchmarkFrom(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errors.From(errors.NoAttachedServerError{})
	}
}

func BenchmarkLift(b *testing.B) {
	b.Run("leaf", func(b *testing.B) {
		err := fmt.Errorf("attach: %w", errors.NoAttachedServerError{})
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = errors.Lift(err)
		}
	})

	b.Run("code", func(b *testing.B) {
		var err error = code.KeyringTimeout{}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = errors.Lift(err)
		}
	})

	b.Run("network", func(b *testing.B) {
		err := &url.Error{Op: "Get", URL: "https://example.com", Err: stderrors.New("refused")}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = errors.Lift(err)
		}
	})
}

func BenchmarkWrap(b *testing.B) {
	baseErr := stderrors.New("base error")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errors.Wrap(baseErr, "context")
	}
}

func BenchmarkWrap_Chain(b *testing.B) {
	baseErr := stderrors.New("base error")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		err := errors.Wrap(baseErr, "layer 1")
		err = errors.Wrap(err, "layer 2")
		_ = errors.Wrap(err, "layer 3")
	}
}

func BenchmarkRender_Elevation(b *testing.B) {
	err := errors.WindowsNeedsElevationError{
		Message: "denied",
		Process: errors.ProcessInfo{Executable: `C:\code.exe`, Args: []string{"tunnel", "service", "install"}},
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = err.Error()
	}
}

func BenchmarkGetCode(b *testing.B) {
	err := errors.Wrap(errors.ServerClosedError{}, "serve")

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = errors.GetCode(err)
	}
}

func BenchmarkToJSON(b *testing.B) {
	err := errors.From(errors.TunnelCreationError{Name: "box", Reason: "taken"})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = json.Marshal(errors.ToJSON(err))
	}
}
