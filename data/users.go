package data

import (
	"regexp"
	"time"

	"github.com/avolkov/mediatheca/internal/validator"
)

// The roles a user account can hold. Moderators may mutate any review or
// comment; admins have full access everywhere.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// UsernameRX restricts usernames to letters, digits and the symbols
// ".", "@", "+" and "-".
var UsernameRX = regexp.MustCompile(`^[\w.@+-]+$`)

var AnonymousUser = &User{}

// User defines a user account.
type User struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Role      string    `json:"role"`
	Superuser bool      `json:"-"`
	Activated bool      `json:"-"`
	Version   int32     `json:"-"`
}

// IsAnonymous checks whether a user instance is the anonymous user.
func (u *User) IsAnonymous() bool {
	return u == AnonymousUser
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsModerator reports whether the user holds the moderator role.
func (u *User) IsModerator() bool {
	return u.Role == RoleModerator
}

func ValidateUsername(v *validator.Validator, username string) {
	v.Check(username != "", "username", "must be provided")
	v.Check(len(username) <= 150, "username", "must not be more than 150 bytes long")
	v.Check(username != "me", "username", "is reserved and cannot be used")
	v.Check(validator.Matches(username, UsernameRX), "username", `must contain only letters, digits and ".", "@", "+", "-"`)
}

func ValidateEmail(v *validator.Validator, email string) {
	v.Check(email != "", "email", "must be provided")
	v.Check(len(email) <= 254, "email", "must not be more than 254 bytes long")
	v.Check(validator.Matches(email, validator.EmailRX), "email", "must be a valid email address")
}

func ValidateRole(v *validator.Validator, role string) {
	v.Check(role != "", "role", "must be provided")
	v.Check(validator.In(role, RoleUser, RoleModerator, RoleAdmin), "role", "must be one of user, moderator or admin")
}

func ValidateUser(v *validator.Validator, user *User) {
	ValidateUsername(v, user.Username)
	ValidateEmail(v, user.Email)
	ValidateRole(v, user.Role)
	v.Check(len(user.FirstName) <= 150, "first_name", "must not be more than 150 bytes long")
	v.Check(len(user.LastName) <= 150, "last_name", "must not be more than 150 bytes long")
}
