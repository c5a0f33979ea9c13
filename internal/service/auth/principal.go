package auth

import "github.com/usergate/usergate/internal/domain"

// Principal is the authenticated identity derived from a request's
// credential. It is constructed per request by the token verifier and
// discarded when the request completes; it is never persisted.
type Principal struct {
	// Subject is the identity the token was issued for (the `sub` claim).
	Subject string

	// Roles is the normalized role set from the token's `scope` or
	// `authorities` claim.
	Roles map[string]struct{}

	// Authenticated reports whether the principal was derived from a
	// verified credential.
	Authenticated bool
}

// Anonymous returns the unauthenticated principal.
func Anonymous() *Principal {
	return &Principal{Roles: map[string]struct{}{}}
}

// NewPrincipal builds an authenticated principal from a subject and role list.
func NewPrincipal(subject string, roles []string) *Principal {
	p := &Principal{
		Subject:       subject,
		Roles:         make(map[string]struct{}, len(roles)),
		Authenticated: true,
	}
	for _, r := range roles {
		if r != "" {
			p.Roles[r] = struct{}{}
		}
	}
	return p
}

// HasRole reports whether the principal carries the given role.
func (p *Principal) HasRole(role string) bool {
	if p == nil {
		return false
	}
	_, ok := p.Roles[role]
	return ok
}

// IsAdmin reports whether the principal carries the unconditional admin role.
func (p *Principal) IsAdmin() bool {
	return p.HasRole(domain.RoleAdmin)
}
