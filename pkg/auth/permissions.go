package auth

import "strings"

// Actions
const (
	ActionRead  = "read"
	ActionAdmin = "admin"
	ActionAll   = "*"
)

// Resources exposed by the back-office API
const (
	ResourceBookings = "bookings"
	ResourceTickets  = "tickets"
	ResourceStatuses = "statuses"
)

// Permission formats an "action:resource" permission string
func Permission(action, resource string) string {
	return action + ":" + resource
}

// HasPermission checks if a client holds the required permission, wildcards included
func HasPermission(granted []string, required string) bool {
	for _, perm := range granted {
		if matchesPermission(perm, required) {
			return true
		}
	}
	return false
}

// matchesPermission handles exact match, "*:*", "admin:<res>", "<action>:*" and "*:<res>"
func matchesPermission(granted, required string) bool {
	if granted == required || granted == "*:*" {
		return true
	}

	grantedAction, grantedResource, ok := strings.Cut(granted, ":")
	if !ok {
		return false
	}
	requiredAction, requiredResource, ok := strings.Cut(required, ":")
	if !ok {
		return false
	}

	switch {
	case grantedAction == ActionAdmin && grantedResource == requiredResource:
		return true
	case grantedAction == requiredAction && grantedResource == ActionAll:
		return true
	case grantedAction == ActionAll && grantedResource == requiredResource:
		return true
	}
	return false
}
