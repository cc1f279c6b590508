package dto

import "github.com/avolkov/mediatheca/data"

// SignupRequestBody defines a request body for the SignupUser service.
type SignupRequestBody struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CreateAccessTokenRequestBody defines a request body for the
// CreateAccessToken service.
type CreateAccessTokenRequestBody struct {
	Username         string `json:"username"`
	ConfirmationCode string `json:"confirmation_code"`
}

// CreateUserRequestBody defines a request body for the admin CreateUser
// service.
type CreateUserRequestBody struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Role      string `json:"role"`
}

// UpdateUserRequestBody defines a request body for the UpdateUser and
// UpdateProfile services. Nil fields are left unchanged.
type UpdateUserRequestBody struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	Role      *string `json:"role"`
}

// QsListUsers defines query strings for the ListUsers service.
type QsListUsers struct {
	Filters data.Filters
}
