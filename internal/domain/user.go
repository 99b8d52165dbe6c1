package domain

// Role enumerates dashboard user roles. Immutable for the session.
type Role string

const (
	RoleAdmin           Role = "admin"
	RoleNavigator       Role = "navigator"
	RoleDistrictOfficer Role = "district_officer"
)

// User is the identity record for the current session and for lookup caches
// (district officers, admins, navigators fetched on demand).
type User struct {
	ID       string    `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"fullName"`
	Username string    `json:"username,omitempty"`
	Role     Role      `json:"role"`
	District *District `json:"district,omitempty"`
}

// InDistrict reports whether the user serves the given district.
func (u *User) InDistrict(d District) bool {
	return u.District != nil && *u.District == d
}

// DisplayName returns the name shown in action notes, falling back to the id.
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.ID
}
