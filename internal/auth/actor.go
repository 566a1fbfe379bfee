// Package auth carries the authenticated identity through request contexts.
// Handlers never pass identity explicitly; middleware stores an Actor on the
// request context and the service and repository layers read it back for
// policy checks and audit columns.
package auth

import "context"

// Actor is the authenticated identity attached to a request.  Subject is the
// token subject (an operator or partner account name), Role is the RBAC role
// carried in the token, and PartnerID is the owning partner for
// THEATRE_OWNER tokens (zero for ADMIN tokens).
type Actor struct {
	Subject   string
	Role      string
	PartnerID uint64
}

// Roles accepted on mutating endpoints.
const (
	RoleAdmin        = "ADMIN"
	RoleTheatreOwner = "THEATRE_OWNER"
)

type ctxKey struct{}

// WithActor returns a context carrying the given actor.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

// ActorFrom extracts the actor from the context.  The second return value is
// false when no actor is present (unauthenticated requests).
func ActorFrom(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(ctxKey{}).(Actor)
	return a, ok
}

// SubjectFrom returns the actor's subject or "system" when the request is
// unauthenticated.  Repositories use it to fill audit columns.
func SubjectFrom(ctx context.Context) string {
	if a, ok := ActorFrom(ctx); ok && a.Subject != "" {
		return a.Subject
	}
	return "system"
}
