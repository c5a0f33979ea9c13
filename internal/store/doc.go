// Package store defines persistence interfaces and the error types that
// store implementations surface to the rest of the application. Error types
// carry identifiers and field names as structured data so response builders
// never re-parse formatted messages.
package store
