package authz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RuleKind tags the authorization rule variants.
type RuleKind int

const (
	// KindRequireRole is the zero value on purpose: an operation bound to
	// the zero Rule requires an authenticated principal. No operation ever
	// defaults to public access.
	KindRequireRole RuleKind = iota
	KindPublic
	KindRequireRoleOrOwner
)

// ResourceIDExtractor pulls the target resource identifier out of a request.
// It returns the raw string; format validation happens in the engine.
type ResourceIDExtractor func(r *http.Request) string

// Rule is the authorization policy bound statically to a protected
// operation. It is a tagged variant: dispatch happens on Kind.
type Rule struct {
	Kind RuleKind

	// Role is the role that satisfies the rule. For KindRequireRole an
	// empty role means any authenticated principal.
	Role string

	// ResourceID extracts the target resource id for ownership rules.
	ResourceID ResourceIDExtractor
}

// Public returns the rule that allows every request.
func Public() Rule {
	return Rule{Kind: KindPublic}
}

// RequireAuthenticated returns the rule satisfied by any authenticated
// principal.
func RequireAuthenticated() Rule {
	return Rule{Kind: KindRequireRole}
}

// RequireRole returns the rule satisfied by principals carrying the given
// role (or the unconditional admin role).
func RequireRole(role string) Rule {
	return Rule{Kind: KindRequireRole, Role: role}
}

// RequireRoleOrOwner returns the rule satisfied by principals carrying the
// given role, or by the owner of the resource identified by the extractor.
func RequireRoleOrOwner(role string, extract ResourceIDExtractor) Rule {
	return Rule{Kind: KindRequireRoleOrOwner, Role: role, ResourceID: extract}
}

// PathIDExtractor extracts a URL path parameter as the resource identifier.
func PathIDExtractor(param string) ResourceIDExtractor {
	return func(r *http.Request) string {
		return chi.URLParam(r, param)
	}
}
