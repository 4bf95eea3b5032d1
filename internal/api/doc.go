// Package api provides the HTTP handlers for the market catalog and the
// error classifier that maps every failure, wherever it arose, onto one
// taxonomy of status codes and stable machine-readable code strings.
//
// Every handler runs the same pipeline: decode and validate the request
// (returning the full list of field violations on failure), make exactly one
// service call, then write exactly one response through the shared envelope
// helpers.
package api
