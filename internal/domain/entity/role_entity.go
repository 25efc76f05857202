package entity

// Roles assignable to an account. Signup always uses RoleUser;
// anything else is set out of band (see cmd/seed).
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

func IsKnownRole(role string) bool {
	switch role {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}
