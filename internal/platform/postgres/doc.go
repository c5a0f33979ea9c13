// Package postgres provides PostgreSQL implementations of the store
// interfaces, mapping database constraint violations to the structured
// store error types.
package postgres
