package authz

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/usergate/usergate/internal/domain"
	"github.com/usergate/usergate/internal/service/auth"
	"github.com/usergate/usergate/internal/store"
)

// OwnerResolver resolves the owning subject of a protected resource. It is
// the only collaborator the engine talks to, and only for ownership rules.
type OwnerResolver interface {
	// FindOwnerSubject returns the subject that owns the resource.
	// Returns a store NotFoundError when the resource does not exist.
	FindOwnerSubject(ctx context.Context, resourceID uuid.UUID) (string, error)
}

// Engine evaluates authorization rules against a principal. It holds no
// per-request state and is safe for concurrent use.
type Engine struct {
	resolver OwnerResolver
	logger   *slog.Logger
}

// NewEngine creates an authorization engine backed by the given resolver.
// If logger is nil, the process default logger is used.
func NewEngine(resolver OwnerResolver, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		resolver: resolver,
		logger:   logger.With(slog.String("component", "authz")),
	}
}

// Authorize evaluates the rule for the principal and request. It returns nil
// when the request is allowed, and otherwise one of:
//
//   - ErrUnauthenticated: no valid credential on a non-public rule
//   - domain.ValidationError: malformed resource identifier (checked before
//     any ownership lookup)
//   - store NotFoundError: the target resource does not exist; this is never
//     downgraded to ErrForbidden, so "no such thing" and "may not touch it"
//     stay distinguishable
//   - ErrForbidden: the principal does not satisfy the rule
//
// Unexpected resolver failures map to ErrForbidden: an authorization check
// must fail closed, never open.
func (e *Engine) Authorize(
	ctx context.Context,
	p *auth.Principal,
	rule Rule,
	r *http.Request,
) error {
	if rule.Kind == KindPublic {
		return nil
	}

	if p == nil || !p.Authenticated {
		return ErrUnauthenticated
	}

	switch rule.Kind {
	case KindRequireRole:
		if rule.Role == "" || p.HasRole(rule.Role) || p.IsAdmin() {
			return nil
		}
		return ErrForbidden

	case KindRequireRoleOrOwner:
		if p.HasRole(rule.Role) || p.IsAdmin() {
			return nil
		}
		return e.authorizeOwner(ctx, p, rule, r)

	default:
		e.logger.Error("unknown rule kind, denying", "kind", int(rule.Kind))
		return ErrForbidden
	}
}

func (e *Engine) authorizeOwner(
	ctx context.Context,
	p *auth.Principal,
	rule Rule,
	r *http.Request,
) error {
	raw := ""
	if rule.ResourceID != nil {
		raw = rule.ResourceID(r)
	}

	// Identifier format is checked before any lookup so a malformed id is a
	// validation failure, not an authorization failure.
	resourceID, err := uuid.Parse(raw)
	if err != nil {
		e.logger.Warn("malformed resource identifier in ownership check", "value", raw)
		return domain.NewInvalidIDError(raw)
	}

	owner, err := e.resolver.FindOwnerSubject(ctx, resourceID)
	if err != nil {
		if store.IsNotFoundError(err) {
			e.logger.Warn("resource not found during ownership check",
				"resource_id", resourceID)
			return err
		}
		// Fail closed: any unexpected resolver failure denies access.
		e.logger.Error("unexpected error during ownership check, denying",
			"error", err,
			"resource_id", resourceID)
		return ErrForbidden
	}

	if owner != p.Subject {
		e.logger.Debug("ownership check denied",
			"subject", p.Subject,
			"resource_id", resourceID)
		return ErrForbidden
	}

	return nil
}
