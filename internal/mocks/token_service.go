package mocks

import (
	"context"

	"github.com/usergate/usergate/internal/service/auth"
)

// MockTokenService is a configurable mock implementation of
// auth.TokenService for testing.
type MockTokenService struct {
	// Principal is returned by VerifyHeader when VerifyErr is nil.
	Principal *auth.Principal

	// VerifyErr is returned by VerifyHeader when non-nil.
	VerifyErr error

	// Token is returned by Generate when GenerateErr is nil.
	Token string

	// GenerateErr is returned by Generate when non-nil.
	GenerateErr error

	// VerifyCalls counts VerifyHeader invocations.
	VerifyCalls int
}

var _ auth.TokenService = (*MockTokenService)(nil)

func (m *MockTokenService) VerifyHeader(ctx context.Context, rawHeader string) (*auth.Principal, error) {
	m.VerifyCalls++
	if m.VerifyErr != nil {
		return nil, m.VerifyErr
	}
	return m.Principal, nil
}

func (m *MockTokenService) Generate(ctx context.Context, subject string, roles []string) (string, error) {
	if m.GenerateErr != nil {
		return "", m.GenerateErr
	}
	return m.Token, nil
}
