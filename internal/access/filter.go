// Package access decides which content rows a principal may see or change.
// Every content operation goes through ScopeFor so the owner-or-admin rule
// lives in one place.
package access

import (
	"errors"
	"fmt"

	"content_manager/internal/model"
)

// Operation is the class of content operation being authorized
type Operation int

const (
	OpList Operation = iota
	OpRead
	OpCreate
	OpUpdate
	OpDelete
)

func (op Operation) String() string {
	switch op {
	case OpList:
		return "list"
	case OpRead:
		return "read"
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	}
	return fmt.Sprintf("operation(%d)", int(op))
}

// ErrNoPrincipal is returned when an operation needs an authenticated user
var ErrNoPrincipal = errors.New("no authenticated principal")

// Scope is the subset of content rows visible to a principal.
// The zero value matches nothing.
type Scope struct {
	All     bool
	OwnerID int
}

// ScopeFor computes the scope of op for principal. Administrators get every
// row; ordinary users get only rows they own; a nil principal gets nothing.
func ScopeFor(principal *model.User, op Operation) Scope {
	if principal == nil || principal.ID <= 0 {
		return Scope{}
	}
	if principal.Admin {
		return Scope{All: true}
	}
	return Scope{OwnerID: principal.ID}
}

// OwnerFor returns the owner to record on newly created content. Any owner
// the client might have supplied is ignored.
func OwnerFor(principal *model.User) (int, error) {
	if principal == nil || principal.ID <= 0 {
		return 0, ErrNoPrincipal
	}
	return principal.ID, nil
}

// Restricted reports whether the scope filters by owner
func (s Scope) Restricted() bool {
	return !s.All
}

// Predicate renders the scope as a SQL condition on the user_id column.
// argPos is the placeholder number to use for the owner argument. The
// returned condition is empty for an unrestricted scope.
func (s Scope) Predicate(argPos int) (string, []interface{}) {
	switch {
	case s.All:
		return "", nil
	case s.OwnerID > 0:
		return fmt.Sprintf("user_id = $%d", argPos), []interface{}{s.OwnerID}
	default:
		return "FALSE", nil
	}
}

// Allows reports whether c falls inside the scope. Rows without an owner
// are visible to administrators only.
func (s Scope) Allows(c *model.Content) bool {
	if c == nil {
		return false
	}
	if s.All {
		return true
	}
	return s.OwnerID > 0 && c.UserID != nil && *c.UserID == s.OwnerID
}
