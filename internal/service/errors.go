package service

import "errors"

var (
	// ErrCaseNotFound is returned when a change must be diffed against the
	// remote case but no server id is known for it, or the remote no longer
	// holds the case.
	ErrCaseNotFound = errors.New("case not found on remote")

	// ErrNoConnectivity aborts the remaining queue of a case: the remote
	// cannot be reached.
	ErrNoConnectivity = errors.New("no connectivity to remote")

	// ErrInvalidSession aborts the remaining queue of a case: the session
	// token is missing, expired or rejected.
	ErrInvalidSession = errors.New("invalid session token")

	// ErrUnsupportedSchemaVersion is returned for a queued change written
	// with a schema version this build cannot decode.
	ErrUnsupportedSchemaVersion = errors.New("unsupported change schema version")

	// ErrMalformedChange is returned when a queued change cannot be decoded.
	ErrMalformedChange = errors.New("malformed queued change")

	// ErrInvalidCaseChange is returned by Enqueue for a change without a case.
	ErrInvalidCaseChange = errors.New("invalid case change")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Development server errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)
