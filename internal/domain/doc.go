// Package domain contains the core entities shared by both services:
// the user account model and the structured validation error type.
package domain
