// Package errors provides the structured error type used across the catalog
// core.
//
// Every failure that crosses a component boundary is an *Error carrying a
// Code, a short message, the wrapped cause, and optional metadata. The code
// is what callers branch on; the message is what a presentation layer shows.
//
// # Basic Usage
//
//	err := errors.NotFound("species not found").
//	    WithMeta("entity_id", 10034)
//
//	if err := gateway.GetSpecies(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to load taxonomy")
//	}
//
// # Remote Failures
//
// The remote gateway converts HTTP outcomes with FromHTTPStatus, so a 404
// becomes CodeNotFound and a 503 becomes CodeUnavailable. IsRetryable tells
// a view whether offering "try again" makes sense.
//
// # Layer Guidelines
//
// Gateway:
//   - Map transport and status failures to codes
//   - Attach the request URL and status as metadata
//
// Services and orchestrators:
//   - Validate inputs and return InvalidArgument errors
//   - Wrap gateway errors with the operation that failed
//   - Record the error on the operation's own observable state only
//
// # Error Codes
//
//   - NotFound: the remote resource does not exist
//   - InvalidArgument: invalid input provided
//   - FailedPrecondition: operation not valid in the current state
//   - ResourceExhausted: the remote source is throttling
//   - Unavailable: network failure or remote 5xx
//   - DeadlineExceeded: request timed out
//   - Canceled: the caller's context was canceled
//   - DataLoss: a response could not be decoded
//   - Internal: anything else
package errors
