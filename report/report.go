// Package report prints failures at the command boundary, either as a
// styled line for a terminal or as a JSON object for --json output.
package report

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/jmgilman/go/tunnelcli/errors"
)

const (
	header    = "error:"
	retryHint = "This may be a temporary problem, running the command again may succeed."
)

// Styles controls how text reports look.
type Styles struct {
	// Header styles the "error:" prefix.
	Header lipgloss.Style

	// Hint styles the note printed under retryable failures.
	Hint lipgloss.Style
}

// DefaultStyles returns the styles used when none are configured. Colors
// are only emitted when r writes to a terminal that supports them.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Hint:   r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Reporter writes failures to an output stream.
type Reporter struct {
	w      io.Writer
	json   bool
	logger zerolog.Logger
	styles *Styles
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithJSON reports failures as errors.ErrorResponse objects, one per line.
func WithJSON() Option {
	return func(r *Reporter) {
		r.json = true
	}
}

// WithLogger sets the logger that receives a debug event per failure.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Reporter) {
		r.logger = logger
	}
}

// WithStyles overrides the default text styles.
func WithStyles(styles Styles) Option {
	return func(r *Reporter) {
		r.styles = &styles
	}
}

// New creates a Reporter writing to w.
func New(w io.Writer, opts ...Option) *Reporter {
	r := &Reporter{
		w:      w,
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.styles == nil {
		styles := DefaultStyles(lipgloss.NewRenderer(w))
		r.styles = &styles
	}

	return r
}

// Report writes err. A nil err writes nothing. The returned error is a
// failure to write the report, never err itself.
func (r *Reporter) Report(err error) error {
	if err == nil {
		return nil
	}

	resp := errors.ToJSON(err)
	r.logger.Debug().
		Str("kind", resp.Kind).
		Str("code", resp.Code).
		Str("classification", resp.Classification).
		Msg("Reporting failure")

	if r.json {
		if werr := json.NewEncoder(r.w).Encode(resp); werr != nil {
			return errors.Wrap(werr, "failed to write failure report")
		}
		return nil
	}

	var b strings.Builder
	b.WriteString(r.styles.Header.Render(header))
	b.WriteByte(' ')
	b.WriteString(strings.TrimRight(resp.Message, "\n"))
	b.WriteByte('\n')
	if errors.ErrorClassification(resp.Classification).IsRetryable() {
		b.WriteString(r.styles.Hint.Render(retryHint))
		b.WriteByte('\n')
	}

	if _, werr := io.WriteString(r.w, b.String()); werr != nil {
		return errors.Wrap(werr, "failed to write failure report")
	}
	return nil
}
