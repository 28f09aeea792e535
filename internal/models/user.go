package models

type Role string

const (
	RoleWorker Role = "worker"
	RoleAdmin  Role = "admin"
)

// User is the credential-free shape handed to callers. Credentials live only
// on UserRecord and are stripped before a user leaves the store.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"created_at"`
}

// IsAdmin reports whether the user has the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserRecord is the storage shape: a user plus login credentials. Workers
// added by name only carry empty credentials and can never sign in.
type UserRecord struct {
	User
	Username string `json:"username"`
	Password string `json:"password"`
}
