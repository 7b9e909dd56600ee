package domain

// Role is the closed set of roles a user account can hold
type Role string

// Supported roles
const (
	RoleAdmin Role = "ADMIN" // Administrator: full user management access
	RoleUser  Role = "USER"  // Regular user: transaction access only
)

// Authority maps a role to the single authority token the security
// layer attaches to a principal. Unknown roles carry no authority.
func (r Role) Authority() string {
	switch r {
	case RoleAdmin:
		return "ADMIN" // Administrator authority
	case RoleUser:
		return "USER" // Regular user authority
	default:
		return "" // No authority for unknown roles
	}
}

// Valid reports whether the role is one of the supported values
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`                 // Primary key
	Username string `gorm:"unique;not null" json:"username"`      // Unique username
	Password string `gorm:"not null" json:"password"`             // Hashed password
	FullName string `json:"fullName"`                             // Display name
	Email    string `json:"email"`                                // Contact email
	Role     Role   `gorm:"type:varchar(16)" json:"role"`         // Role: ADMIN or USER
	Enabled  bool   `gorm:"not null" json:"enabled"` // Account enabled flag
}
