// Package policy holds the access-control rules for posts and comments as a
// pure predicate, so handlers and services share one decision function.
package policy

import "errors"

// ErrPermissionDenied is returned when a principal attempts a mutating
// action on a resource it does not own, or is anonymous where
// authentication is required.
var ErrPermissionDenied = errors.New("permission denied")

// Action is a named operation on a resource.
type Action string

const (
	ActionView          Action = "view"
	ActionEditPost      Action = "edit_post"
	ActionDeletePost    Action = "delete_post"
	ActionEditComment   Action = "edit_comment"
	ActionDeleteComment Action = "delete_comment"
)

// Principal is the identity attached to a request. The zero value is the
// anonymous principal.
type Principal struct {
	UserID uint
}

// Anonymous is the principal of an unauthenticated request.
var Anonymous = Principal{}

func (p Principal) Authenticated() bool { return p.UserID != 0 }

// Resource is anything with a single owning author.
type Resource interface {
	OwnerID() uint
}

// Can reports whether the principal may perform the action on the resource.
// Viewing is open to everyone, including anonymous visitors; every mutating
// action requires an authenticated principal that owns the resource.
func Can(p Principal, action Action, r Resource) bool {
	switch action {
	case ActionView:
		return true
	case ActionEditPost, ActionDeletePost, ActionEditComment, ActionDeleteComment:
		return p.Authenticated() && r != nil && p.UserID == r.OwnerID()
	default:
		return false
	}
}
