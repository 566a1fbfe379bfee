package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cinebook/movie-show-booking/internal/auth"
	"github.com/cinebook/movie-show-booking/internal/repository"
)

func TestPartnerPolicy(t *testing.T) {
	theatre := &repository.Theatre{ID: 2, PartnerID: 7}
	p := PartnerPolicy{}

	cases := []struct {
		name    string
		actor   auth.Actor
		wantErr error
	}{
		{"admin always allowed", auth.Actor{Subject: "root", Role: auth.RoleAdmin}, nil},
		{"owner of same partner allowed", auth.Actor{Subject: "ops", Role: auth.RoleTheatreOwner, PartnerID: 7}, nil},
		{"owner of other partner denied", auth.Actor{Subject: "ops", Role: auth.RoleTheatreOwner, PartnerID: 8}, repository.ErrForbidden},
		{"owner without partner denied", auth.Actor{Subject: "ops", Role: auth.RoleTheatreOwner}, repository.ErrForbidden},
		{"unknown role denied", auth.Actor{Subject: "guest", Role: "CUSTOMER"}, repository.ErrForbidden},
		{"anonymous denied", auth.Actor{}, repository.ErrForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := p.AllowMutate(tc.actor, theatre)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}
