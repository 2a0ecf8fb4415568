package errors

import "errors"

// Engine error kinds. Callers match them with errors.Is; producers wrap them
// with fmt.Errorf("...: %w", Err...) to add context.
var (
	// ErrNotFound: a required entity or relation cannot be located.
	ErrNotFound = errors.New("not found")

	// ErrDataIntegrity: a loaded entity lacks data the conversion requires.
	ErrDataIntegrity = errors.New("data integrity violation")

	// ErrCacheUnavailable: the cache gateway could not be reached.
	ErrCacheUnavailable = errors.New("cache unavailable")

	// ErrExternalLookup: the external catalog failed to resolve metadata.
	ErrExternalLookup = errors.New("external lookup failed")

	// ErrUnknownKind: no aggregation is registered for the requested kind.
	ErrUnknownKind = errors.New("unknown aggregation kind")
)

const (
	HttpInternalError       = "internal_error"
	HttpInvalidRequestError = "invalid_request"
	HttpNotFoundError       = "not_found"
	HttpDataIntegrityError  = "data_integrity"
	HttpExternalLookupError = "external_lookup_failed"
	HttpUnknownKindError    = "unknown_kind"
)

// ErrorResponse is the error response body for API errors.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
