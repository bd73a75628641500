package access

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/snipvault/backend/pkg/auth"
)

func TestPolicyTable(t *testing.T) {
	authorID := uuid.New()
	author := Actor{ID: authorID, Role: auth.RoleUser}
	stranger := Actor{ID: uuid.New(), Role: auth.RoleUser}
	admin := Actor{ID: uuid.New(), Role: auth.RoleAdmin}
	anon := Anonymous()

	approved := Resource{AuthorID: authorID, Approved: true}
	unapproved := Resource{AuthorID: authorID, Approved: false}

	tests := []struct {
		name   string
		actor  Actor
		action Action
		res    Resource
		want   bool
	}{
		// view snippet: approved is public
		{"anon views approved", anon, ViewSnippet, approved, true},
		{"stranger views approved", stranger, ViewSnippet, approved, true},
		// unapproved is visible only to admin and author
		{"admin views unapproved", admin, ViewSnippet, unapproved, true},
		{"author views unapproved", author, ViewSnippet, unapproved, true},
		{"stranger views unapproved", stranger, ViewSnippet, unapproved, false},
		{"anon views unapproved", anon, ViewSnippet, unapproved, false},

		// listing all/pending is admin-only
		{"admin lists all", admin, ListAllSnippets, Resource{}, true},
		{"user lists all", stranger, ListAllSnippets, Resource{}, false},
		{"anon lists all", anon, ListAllSnippets, Resource{}, false},
		{"admin lists pending", admin, ListPendingSnippets, Resource{}, true},
		{"user lists pending", stranger, ListPendingSnippets, Resource{}, false},

		// own listing and creation need any authenticated actor
		{"user lists own", stranger, ListOwnSnippets, Resource{}, true},
		{"admin lists own", admin, ListOwnSnippets, Resource{}, true},
		{"anon lists own", anon, ListOwnSnippets, Resource{}, false},
		{"user creates", stranger, CreateSnippet, Resource{}, true},
		{"anon creates", anon, CreateSnippet, Resource{}, false},

		// edit/delete are author-only; admins get no bypass
		{"author edits", author, EditSnippet, unapproved, true},
		{"stranger edits", stranger, EditSnippet, unapproved, false},
		{"admin edits others content", admin, EditSnippet, unapproved, false},
		{"author deletes approved", author, DeleteSnippet, approved, true},
		{"admin deletes others content", admin, DeleteSnippet, approved, false},
		{"anon deletes", anon, DeleteSnippet, approved, false},

		// status changes are admin-only
		{"admin changes status", admin, ChangeSnippetStatus, unapproved, true},
		{"author changes own status", author, ChangeSnippetStatus, unapproved, false},
		{"anon changes status", anon, ChangeSnippetStatus, unapproved, false},

		// profile needs authentication
		{"user views profile", stranger, ViewOwnProfile, Resource{}, true},
		{"anon views profile", anon, ViewOwnProfile, Resource{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Allowed(tc.actor, tc.action, tc.res))
			if tc.want {
				assert.NoError(t, Authorize(tc.actor, tc.action, tc.res))
			} else {
				assert.ErrorIs(t, Authorize(tc.actor, tc.action, tc.res), ErrDenied)
			}
		})
	}
}

func TestAnonymousAdminRoleIsNotAdmin(t *testing.T) {
	// A forged actor with an admin role but no identity stays powerless.
	forged := Actor{Role: auth.RoleAdmin}
	assert.True(t, forged.IsAnonymous())
	assert.False(t, forged.IsAdmin())
	assert.False(t, Allowed(forged, ChangeSnippetStatus, Resource{}))
}
