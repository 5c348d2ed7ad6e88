// Package http implements the REST API of the development case authority.
//
// It exposes the routes the sync client's HTTP adapter talks to. Bearer token
// authentication, request tracing, access logging, response compression and
// body fingerprinting for idempotent core pushes are handled here before
// requests reach the service layer.
package http
