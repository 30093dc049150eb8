package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saywin/airport-api-service/internal/access"
)

func TestAllowed(t *testing.T) {
	anonymous := access.Caller{}
	user := access.Caller{ID: 7, Authenticated: true}
	staff := access.Caller{ID: 1, Authenticated: true, IsStaff: true}

	tests := []struct {
		name   string
		policy access.Policy
		caller access.Caller
		write  bool
		want   access.Decision
	}{
		{"public read by anyone", access.Public, anonymous, false, access.Allow},
		{"public write by anyone", access.Public, anonymous, true, access.Allow},

		{"read-only denies anonymous", access.AuthenticatedReadOnly, anonymous, false, access.DenyUnauthorized},
		{"read-only allows authenticated read", access.AuthenticatedReadOnly, user, false, access.Allow},
		{"read-only forbids writes even for staff", access.AuthenticatedReadOnly, staff, true, access.DenyForbidden},

		{"admin-write denies anonymous read", access.AdminWrite, anonymous, false, access.DenyUnauthorized},
		{"admin-write denies anonymous write", access.AdminWrite, anonymous, true, access.DenyUnauthorized},
		{"admin-write allows user read", access.AdminWrite, user, false, access.Allow},
		{"admin-write forbids user write", access.AdminWrite, user, true, access.DenyForbidden},
		{"admin-write allows staff write", access.AdminWrite, staff, true, access.Allow},

		{"owner-scoped denies anonymous", access.OwnerScoped, anonymous, false, access.DenyUnauthorized},
		{"owner-scoped allows user read", access.OwnerScoped, user, false, access.Allow},
		{"owner-scoped allows user write", access.OwnerScoped, user, true, access.Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, access.Allowed(tt.policy, tt.caller, tt.write))
		})
	}
}

func TestAllowed_MissingCredentialsNeverForbidden(t *testing.T) {
	// An anonymous caller must always be told to authenticate, never that
	// its role is insufficient.
	for _, p := range []access.Policy{
		access.AuthenticatedReadOnly,
		access.AdminWrite,
		access.OwnerScoped,
	} {
		for _, write := range []bool{false, true} {
			got := access.Allowed(p, access.Caller{}, write)
			assert.Equal(t, access.DenyUnauthorized, got)
		}
	}
}
