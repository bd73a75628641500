// Package access evaluates authorization as one ordered policy. Every
// protected operation asks this package instead of carrying its own checks,
// so who-can-do-what is changed in exactly one place.
package access

import (
	"errors"

	"github.com/google/uuid"

	"github.com/snipvault/backend/pkg/auth"
)

// ErrDenied is returned whenever the policy denies an action.
var ErrDenied = errors.New("not authorized")

// Actor is the caller attempting an operation. The zero value is anonymous.
type Actor struct {
	ID   uuid.UUID
	Role auth.Role
}

// Anonymous returns the unauthenticated actor.
func Anonymous() Actor { return Actor{} }

func (a Actor) IsAnonymous() bool { return a.ID == uuid.Nil }

func (a Actor) IsAdmin() bool { return !a.IsAnonymous() && a.Role == auth.RoleAdmin }

// Action is a closed enumeration of the protected operations.
type Action int

const (
	ViewSnippet Action = iota
	ListAllSnippets
	ListPendingSnippets
	ListOwnSnippets
	CreateSnippet
	EditSnippet
	DeleteSnippet
	ChangeSnippetStatus
	ViewOwnProfile
)

// Resource is the narrow view of a snippet the policy needs. Actions that do
// not target a particular snippet pass the zero Resource.
type Resource struct {
	AuthorID uuid.UUID
	Approved bool
}

// rule is one row of the policy table: it either produces a verdict or
// abstains (ok=false) so evaluation falls through to the next row.
type rule func(a Actor, res Resource) (allowed, ok bool)

// policy holds the ordered rules per action; the first rule that produces a
// verdict wins.
var policy = map[Action][]rule{
	ViewSnippet: {
		func(a Actor, res Resource) (bool, bool) { return true, res.Approved },
		func(a Actor, res Resource) (bool, bool) { return true, a.IsAdmin() },
		func(a Actor, res Resource) (bool, bool) {
			return true, !a.IsAnonymous() && a.ID == res.AuthorID
		},
		deny,
	},
	ListAllSnippets:     {adminOnly},
	ListPendingSnippets: {adminOnly},
	ListOwnSnippets:     {authenticatedOnly},
	CreateSnippet:       {authenticatedOnly},
	EditSnippet:         {authorOnly},
	DeleteSnippet:       {authorOnly},
	ChangeSnippetStatus: {adminOnly},
	ViewOwnProfile:      {authenticatedOnly},
}

func deny(Actor, Resource) (bool, bool) { return false, true }

func adminOnly(a Actor, _ Resource) (bool, bool) { return a.IsAdmin(), true }

func authenticatedOnly(a Actor, _ Resource) (bool, bool) { return !a.IsAnonymous(), true }

// Admins do NOT bypass this: they may change status, not others' content.
func authorOnly(a Actor, res Resource) (bool, bool) {
	return !a.IsAnonymous() && a.ID == res.AuthorID, true
}

// Allowed evaluates the policy for one action.
func Allowed(a Actor, action Action, res Resource) bool {
	for _, r := range policy[action] {
		if allowed, ok := r(a, res); ok {
			return allowed
		}
	}
	return false
}

// Authorize is Allowed expressed as an error for use in call chains.
func Authorize(a Actor, action Action, res Resource) error {
	if !Allowed(a, action, res) {
		return ErrDenied
	}
	return nil
}
