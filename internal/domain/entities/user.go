package entities

// UserRole represents which side of the portal a user acts on.
type UserRole string

const (
	UserRoleCustomer UserRole = "CUSTOMER"
	UserRoleAdmin    UserRole = "ADMIN"
)

// IsValid reports whether r is one of the known roles.
func (r UserRole) IsValid() bool {
	return r == UserRoleCustomer || r == UserRoleAdmin
}

// User is the identity bound to the current session.
//
// It is created at login or invite resolution, mutated by profile edits and
// lives until logout clears the session.
type User struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Role    UserRole `json:"role"`
	Phone   string   `json:"phone,omitempty"`
	Address string   `json:"address,omitempty"`
	Avatar  string   `json:"avatar,omitempty"`
}

// IsAdmin reports whether the user acts on the staff side.
func (u User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// ProfilePatch carries the profile fields a customer may edit on their own
// session user. Nil fields are left untouched.
type ProfilePatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// Apply returns a copy of u with the patch merged in.
func (p ProfilePatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	return u
}
