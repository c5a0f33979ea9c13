// Package shared provides the canonical error envelope, JSON response
// helpers, request decoding, and request-scoped context values used by both
// the gateway and the user service.
package shared
