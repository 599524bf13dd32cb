package domain

// Role enumerates the access levels recognized by the dashboard.
type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleTechnician Role = "TECHNICIAN"
	RoleUser       Role = "USER"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTechnician, RoleUser:
		return true
	}
	return false
}

// User is the session identity: who is acting and under which role.
type User struct {
	ID    string
	Name  string
	Email string
	Role  Role
}
