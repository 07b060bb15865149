package models

type UserRole string
type ModerationStatus string

const (
	UserRoleVisitor UserRole = "visitor"
	UserRoleModel   UserRole = "model"
	UserRoleAdmin   UserRole = "admin"

	// ModerationStatus applies to profiles and photos alike. PENDING is the
	// initial state; admins may overwrite any state with any other.
	StatusPending  ModerationStatus = "PENDING"
	StatusApproved ModerationStatus = "APPROVED"
	StatusRejected ModerationStatus = "REJECTED"
)

// ValidUserRole reports whether r is one of the known roles.
func ValidUserRole(r UserRole) bool {
	switch r {
	case UserRoleVisitor, UserRoleModel, UserRoleAdmin:
		return true
	default:
		return false
	}
}

// ValidModerationStatus reports whether s is one of the three known states.
func ValidModerationStatus(s ModerationStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}
