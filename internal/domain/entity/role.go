package entity

// Role represents the kind of account a user holds.
type Role string

const (
	// RoleOrganization publishes and manages events.
	RoleOrganization Role = "organization"
	// RoleConsumer draws geofences and attends events.
	RoleConsumer Role = "consumer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleOrganization, RoleConsumer:
		return true
	default:
		return false
	}
}

// RoleFromString parses s, falling back to RoleConsumer for unknown values.
func RoleFromString(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}

	return RoleConsumer
}
