// Package gateway implements the edge service: the short-circuiting
// perimeter filter chain, the prefix-based route dispatcher, and the canned
// fallback response for unreachable backends.
package gateway
