// Package authz implements the per-operation authorization decision engine.
// Rules are a tagged variant (public, role-required, role-or-owner) bound
// statically to each protected operation; ownership is resolved through the
// OwnerResolver collaborator. The engine fails closed: unexpected resolver
// errors deny access rather than propagate.
package authz
