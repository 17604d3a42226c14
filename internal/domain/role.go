package domain

import "fmt"

// Role ranks an employee's authority. Lower value = more authority.
type Role int

const (
	RoleDirector Role = 1
	RoleLeader   Role = 2
	RoleEmployee Role = 3
)

func (r Role) String() string {
	switch r {
	case RoleDirector:
		return "Director"
	case RoleLeader:
		return "Leader"
	case RoleEmployee:
		return "Employee"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// IsValid reports whether r is one of the defined roles.
func (r Role) IsValid() bool {
	return r >= RoleDirector && r <= RoleEmployee
}

// OutranksOrEquals reports whether r has at least the authority of other.
func (r Role) OutranksOrEquals(other Role) bool {
	return r <= other
}

// Outranks reports whether r has strictly more authority than other.
func (r Role) Outranks(other Role) bool {
	return r < other
}

// ParseRole maps a role name back to its enum value. Unknown names fall
// back to the least-privileged role.
func ParseRole(name string) Role {
	switch name {
	case "Director":
		return RoleDirector
	case "Leader":
		return RoleLeader
	default:
		return RoleEmployee
	}
}
