// Package server runs the HTTP listener of the development case authority
// and shuts it down gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
