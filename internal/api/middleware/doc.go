// Package middleware provides the user service's HTTP middleware:
// authentication, per-route authorization, trace IDs, and the top-level
// panic boundary.
package middleware
