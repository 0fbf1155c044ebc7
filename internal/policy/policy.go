// Package policy decides whether a principal may act on a resource.
package policy

import "net/http"

type Action string

const (
	ActionViewAny Action = "view_any"
	ActionView    Action = "view"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
)

// Resource is anything owned by exactly one account.
type Resource interface {
	OwnerID() uint64
}

// CanAccess reports whether principal may perform action on resource.
// Listing and creating only require an authenticated principal; every other
// action requires the principal to own the resource.
func CanAccess(principal uint64, resource Resource, action Action) bool {
	if principal == 0 {
		return false
	}

	switch action {
	case ActionViewAny, ActionCreate:
		return true
	case ActionView, ActionUpdate, ActionDelete:
		if resource == nil {
			return false
		}
		owner := resource.OwnerID()
		return owner != 0 && owner == principal
	default:
		return false
	}
}

// ActionForMethod maps an HTTP method on a single resource to an action.
func ActionForMethod(method string) Action {
	switch method {
	case http.MethodGet, http.MethodHead:
		return ActionView
	case http.MethodDelete:
		return ActionDelete
	default:
		return ActionUpdate
	}
}
