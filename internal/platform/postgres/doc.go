// Package postgres implements the store interfaces using a PostgreSQL
// database as the storage backend. All database failures are translated
// into store sentinel errors via MapError so that callers never depend on
// driver-specific error types.
package postgres
