package model

import "time"

// UserType is the closed set of account roles. Keeping it a named type
// (rather than a free string) forces access-control branches to be written
// against the two known variants.
type UserType string

const (
    UserTypeUser  UserType = "user"  // regular account, sees only its own shipments
    UserTypeAdmin UserType = "admin" // cross-user visibility and status control
)

// ParseUserType maps a raw string onto one of the known role variants.
// The second return value is false for anything outside the closed set.
func ParseUserType(s string) (UserType, bool) {
    switch UserType(s) {
    case UserTypeUser:
        return UserTypeUser, true
    case UserTypeAdmin:
        return UserTypeAdmin, true
    }
    return "", false
}

// IsAdmin reports whether the role grants administrative access.
func (t UserType) IsAdmin() bool { return t == UserTypeAdmin }

// User represents an account record as stored in the `users` table.
// PasswordHash never leaves the repository/service layers; handlers respond
// with the PublicUser view instead.
//
// Fields:
//  ID           – primary key (UUID string).
//  Email        – unique email address.
//  Username     – unique login name.
//  PasswordHash – bcrypt hashed password.
//  Name         – display name, mutable.
//  Address      – free-text address, mutable.
//  Phone        – free-text phone number, mutable.
//  Usertype     – role variant, immutable after creation.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           string    // users.id
    Email        string    // users.email
    Username     string    // users.username
    PasswordHash string    // users.password
    Name         string    // users.name
    Address      string    // users.address
    Phone        string    // users.phone
    Usertype     UserType  // users.usertype
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}

// PublicUser is the externally visible projection of a User. It carries
// everything a client may see; the password hash is deliberately absent.
type PublicUser struct {
    ID        string    `json:"id"`
    Email     string    `json:"email"`
    Username  string    `json:"username"`
    Name      string    `json:"name"`
    Usertype  UserType  `json:"usertype"`
    Address   string    `json:"address"`
    Phone     string    `json:"phone"`
    CreatedAt time.Time `json:"createdAt"`
    UpdatedAt time.Time `json:"updatedAt"`
}

// Public returns the client-safe view of the user.
func (u User) Public() PublicUser {
    return PublicUser{
        ID:        u.ID,
        Email:     u.Email,
        Username:  u.Username,
        Name:      u.Name,
        Usertype:  u.Usertype,
        Address:   u.Address,
        Phone:     u.Phone,
        CreatedAt: u.CreatedAt,
        UpdatedAt: u.UpdatedAt,
    }
}
