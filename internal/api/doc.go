// Package api implements the user service's HTTP handlers and the mapping
// from internal errors to the canonical error taxonomy.
package api
