package model

// Role is the closed set of access levels the platform knows about.
// The backend issues exactly one role per account and the frontend
// only ever compares against these three values.
type Role string

const (
    RoleCustomer Role = "CUSTOMER" // regular client booking services and placing orders
    RoleStaff    Role = "STAFF"    // salon employee managing appointments
    RoleAdmin    Role = "ADMIN"    // administrator with full access
)

// Valid reports whether r is one of the known role tags.
func (r Role) Valid() bool {
    switch r {
    case RoleCustomer, RoleStaff, RoleAdmin:
        return true
    }
    return false
}

// UserProfile is the identity snapshot the backend returns on a
// successful login and that the session layer keeps alongside the
// access token. The session owns the canonical copy; consumers only
// ever see value copies of it.
//
// Fields:
//  ID        – backend account identifier.
//  FirstName – given name.
//  LastName  – family name.
//  Email     – unique email address.
//  Role      – access level (CUSTOMER, STAFF or ADMIN).
type UserProfile struct {
    ID        uint64 `json:"id"`
    FirstName string `json:"first_name"`
    LastName  string `json:"last_name"`
    Email     string `json:"email"`
    Role      Role   `json:"role"`
}

// ProfilePatch carries a partial profile update. Nil fields are left
// untouched by the merge; set fields win over the current value.
type ProfilePatch struct {
    FirstName *string `json:"first_name"`
    LastName  *string `json:"last_name"`
    Email     *string `json:"email"`
}

// Apply merges the patch into a copy of u and returns the result.
func (p ProfilePatch) Apply(u UserProfile) UserProfile {
    if p.FirstName != nil {
        u.FirstName = *p.FirstName
    }
    if p.LastName != nil {
        u.LastName = *p.LastName
    }
    if p.Email != nil {
        u.Email = *p.Email
    }
    return u
}
