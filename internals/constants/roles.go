package constants

// Application roles. Stored on the user row and carried in the JWT
// "role" claim; route groups check against these.
const (
	RoleAdmin        = "admin"
	RoleStaff        = "staff"
	RoleStudent      = "student"
	RoleParent       = "parent"
	RoleReceptionist = "receptionist"
	RoleHR           = "hr"
)

var AllRoles = []string{
	RoleAdmin,
	RoleStaff,
	RoleStudent,
	RoleParent,
	RoleReceptionist,
	RoleHR,
}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
