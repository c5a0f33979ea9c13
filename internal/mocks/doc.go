// Package mocks provides hand-written test doubles for the application's
// collaborator interfaces.
package mocks
