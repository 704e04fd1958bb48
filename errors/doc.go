// Package errors defines every failure the tunnel CLI can report and the
// umbrella type, AnyError, that command dispatch receives.
//
// Each failure is its own leaf type with a fixed rendering. Leaves carry
// the data needed to render them and nothing else; the message is the
// contract with the user. Leaves are plain values, so errors.As selects
// them and a type switch over AnyError.Leaf() inspects them:
//
//	switch l := anyErr.Leaf().(type) {
//	case errors.StatusError:
//	    if l.StatusCode == http.StatusNotFound {
//	        // release does not exist
//	    }
//	case errors.CodeError:
//	    var exited code.SingletonLockedProcessExited
//	    if errors.As(l, &exited) {
//	        // retry acquiring the lock
//	    }
//	}
//
// # Producing failures
//
// Return a leaf directly from the function that detects the failure:
//
//	return errors.InvalidServerExtensionError{Extension: ext}
//
// Wrap adds context to a failure that has no leaf of its own. The wrapped
// failure is rendered immediately and the rendering is kept:
//
//	if err := os.Rename(staging, target); err != nil {
//	    return errors.Wrap(err, "error moving server into place")
//	}
//
// FromNetwork converts an HTTP client failure and NewStatusError builds a
// failure from an unsuccessful response:
//
//	res, err := client.Do(req)
//	if err != nil {
//	    return errors.FromNetwork(err)
//	}
//	if res.StatusCode >= 400 {
//	    status, err := errors.NewStatusError(ctx, res)
//	    if err != nil {
//	        return err
//	    }
//	    return status
//	}
//
// Structured runtime failures live in package code and enter the umbrella
// through the CodeError leaf.
//
// # The umbrella
//
// Lift turns any leaf, code.Error or network failure into an AnyError:
//
//	if a, ok := errors.Lift(err); ok {
//	    log.Debug().Str("kind", a.Kind().String()).Msg(a.Error())
//	}
//
// The set of leaves is declared in registry.yaml. The Kind enum, Kinds and
// the Leaf assertions in anyerror_gen.go are generated from it by
// cmd/errgen, so adding a leaf without registering it fails to compile
// wherever it is returned as a Leaf.
//
// # Codes and classification
//
// Every leaf has an ErrorCode naming the area of the tool it comes from,
// and every code has a classification (retryable or permanent). Both are
// metadata for callers and for the JSON output; no behavior in this
// package depends on them:
//
//	if errors.IsRetryable(err) {
//	    // offer to retry
//	}
//
// # Standard library compatibility
//
// Is and As are thin wrappers over the standard library. AnyError,
// CodeError and the code tags with a cause implement Unwrap.
package errors
