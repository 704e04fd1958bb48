package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// unknownURL stands in for a request URL that cannot be determined.
const unknownURL = "<unknown>"

// FromNetwork converts a failure returned by an HTTP client into a
// WrappedError naming the requested URL. The URL is taken from the first
// *url.Error in err's chain.
func FromNetwork(err error) WrappedError {
	target := unknownURL
	var uerr *url.Error
	if stderrors.As(err, &uerr) && uerr.URL != "" {
		target = uerr.URL
	}

	return WrappedError{
		message:  "error requesting " + target,
		original: fmt.Sprint(err),
		code:     CodeNetwork,
	}
}

// StatusError is built from an HTTP response with an unsuccessful status.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

// NewStatusError reads the body of res and closes it. If the body cannot
// be read, the returned error is a WrappedError naming the status code
// and URL. If ctx is done before the body is read, ctx.Err() is returned
// and no StatusError is built. A nil body is read as empty.
func NewStatusError(ctx context.Context, res *http.Response) (StatusError, error) {
	statusCode := res.StatusCode
	target := unknownURL
	if res.Request != nil && res.Request.URL != nil {
		target = res.Request.URL.String()
	}

	body := res.Body
	if body == nil {
		body = http.NoBody
	}

	type readResult struct {
		body []byte
		err  error
	}
	done := make(chan readResult, 1)
	go func() {
		b, err := io.ReadAll(body)
		done <- readResult{body: b, err: err}
	}()

	select {
	case <-ctx.Done():
		_ = body.Close()
		return StatusError{}, ctx.Err()
	case r := <-done:
		_ = body.Close()
		if r.err != nil {
			return StatusError{}, Wrapf(r.err, "failed to read response body on %d code from %s", statusCode, target)
		}
		return StatusError{
			URL:        target,
			StatusCode: statusCode,
			Body:       string(r.body),
		}, nil
	}
}

func (e StatusError) Error() string {
	return fmt.Sprintf("error requesting %s: %d %s", e.URL, e.StatusCode, e.Body)
}

// Code maps the HTTP status to an ErrorCode.
func (e StatusError) Code() ErrorCode {
	switch e.StatusCode {
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusConflict:
		return CodeConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return CodeInvalidInput
	case http.StatusTooManyRequests:
		return CodeRateLimit
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return CodeTimeout
	}
	if e.StatusCode >= 500 {
		return CodeUnavailable
	}
	return CodeInternal
}
