package adapter

import "errors"

// Transport errors. HTTP statuses are wrapped together with the response
// body, e.g. "not found: case 12 does not exist".
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNoConnection is returned when a request produced no HTTP response.
	ErrNoConnection = errors.New("no connection to remote")
)

// ErrEmptyWorkTypeList is returned by claim and unclaim calls given no type
// keys. The remote would read such a request as "all work types".
var ErrEmptyWorkTypeList = errors.New("empty work type list")
