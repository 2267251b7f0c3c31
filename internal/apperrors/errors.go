package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUpstreamUnavailable indicates a third-party service could not be reached,
// answered with a non-2xx status, or returned a body we could not use.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// ErrConfigurationGap indicates an API key is missing or still a placeholder.
// Callers treat it the same way as ErrUpstreamUnavailable.
var ErrConfigurationGap = errors.New("upstream not configured")

// ErrPersonUnavailable indicates no person could be produced for a request.
// It is the only upstream failure that is surfaced to the client.
var ErrPersonUnavailable = errors.New("failed to fetch random user")
