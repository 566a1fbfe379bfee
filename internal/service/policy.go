package service

import (
	"github.com/cinebook/movie-show-booking/internal/auth"
	"github.com/cinebook/movie-show-booking/internal/repository"
)

// Policy decides whether an actor may mutate shows belonging to a theatre.
// It is injected into the show lifecycle so deployments can swap the rule
// without touching the service.
type Policy interface {
	AllowMutate(actor auth.Actor, theatre *repository.Theatre) error
}

// PartnerPolicy is the default rule: ADMIN may mutate anything, a
// THEATRE_OWNER only theatres owned by its own partner. Anything else is
// forbidden. Unauthenticated callers never reach this point because
// routing requires a role, but an absent actor is rejected anyway.
type PartnerPolicy struct{}

// AllowMutate implements Policy.
func (PartnerPolicy) AllowMutate(actor auth.Actor, theatre *repository.Theatre) error {
	switch actor.Role {
	case auth.RoleAdmin:
		return nil
	case auth.RoleTheatreOwner:
		if theatre != nil && actor.PartnerID != 0 && actor.PartnerID == theatre.PartnerID {
			return nil
		}
	}
	return repository.ErrForbidden
}
