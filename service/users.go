package service

import (
	"errors"
	"time"

	"github.com/avolkov/mediatheca/data"
	"github.com/avolkov/mediatheca/internal/mailer"
	"github.com/avolkov/mediatheca/internal/validator"
	"github.com/avolkov/mediatheca/repository"
)

type users interface {
	SignupUser(username string, email string) (*data.User, error)
	CreateUser(username, email, firstName, lastName, bio, role string) (*data.User, error)
	ListUsers(filters data.Filters) ([]*data.User, data.Metadata, error)
	ShowUser(username string) (*data.User, error)
	UpdateUser(username string, email, firstName, lastName, bio, role *string) (*data.User, error)
	UpdateProfile(caller *data.User, email, firstName, lastName, bio, role *string) (*data.User, error)
	DeleteUser(username string) error
}

// SignupUser registers a new user account, or re-issues a confirmation code
// when the exact same username and email pair already exists. A username or
// email which collides with a different account fails validation.
func (s *service) SignupUser(username string, email string) (*data.User, error) {
	v := validator.New()
	data.ValidateUsername(v, username)
	data.ValidateEmail(v, email)
	if !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	user, err := s.repo.GetUserByLogin(username, email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			user = &data.User{
				Username: username,
				Email:    email,
				Role:     data.RoleUser,
			}
			err = s.repo.CreateUser(user)
			if err != nil {
				switch {
				case errors.Is(err, repository.ErrDuplicateUsername):
					v.AddError("username", "a user with this username already exists")
					return nil, s.failedValidation(v.Errors)
				case errors.Is(err, repository.ErrDuplicateEmail):
					v.AddError("email", "a user with this email address already exists")
					return nil, s.failedValidation(v.Errors)
				default:
					return nil, err
				}
			}
		default:
			return nil, err
		}
	}
	// Generate a confirmation code for the user. Signing up again simply
	// issues a fresh code for the same account.
	token, err := s.repo.CreateNewToken(user.ID, 3*24*time.Hour, data.ScopeConfirmation)
	if err != nil {
		return nil, err
	}
	// Send the confirmation code email in a background goroutine to speed up
	// response time.
	s.background(func() {
		payload := map[string]string{
			"userName":         user.Username,
			"confirmationCode": token.Plaintext,
		}
		mailer := mailer.New(s.config.Smtp.Host, s.config.Smtp.Port, s.config.Smtp.Username, s.config.Smtp.Password, s.config.Smtp.Sender)
		err := mailer.Send(user.Email, "confirmation_code.tmpl", payload)
		if err != nil {
			s.logger.PrintError(err, nil)
		}
	})
	return user, nil
}

// CreateUser registers a new user account on behalf of an administrator. The
// account starts out activated and receives no confirmation email.
func (s *service) CreateUser(username, email, firstName, lastName, bio, role string) (*data.User, error) {
	if role == "" {
		role = data.RoleUser
	}
	user := &data.User{
		Username:  username,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Bio:       bio,
		Role:      role,
		Activated: true,
	}
	v := validator.New()
	if data.ValidateUser(v, user); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err := s.repo.CreateUser(user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			v.AddError("username", "a user with this username already exists")
			return nil, s.failedValidation(v.Errors)
		case errors.Is(err, repository.ErrDuplicateEmail):
			v.AddError("email", "a user with this email address already exists")
			return nil, s.failedValidation(v.Errors)
		default:
			return nil, err
		}
	}
	return user, nil
}

// ListUsers shows a paginated list of all user accounts.
func (s *service) ListUsers(filters data.Filters) ([]*data.User, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	users, metadata, err := s.repo.GetAllUsers(filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return users, metadata, nil
}

// ShowUser shows the details of a specific user account.
func (s *service) ShowUser(username string) (*data.User, error) {
	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return user, nil
}

// UpdateUser partially updates a user account. Nil fields are left unchanged.
func (s *service) UpdateUser(username string, email, firstName, lastName, bio, role *string) (*data.User, error) {
	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return s.applyUserUpdate(user, email, firstName, lastName, bio, role)
}

// UpdateProfile partially updates the account of the calling user. A role
// change requested by a caller holding the plain user role is dropped
// silently; the rest of the update still applies.
func (s *service) UpdateProfile(caller *data.User, email, firstName, lastName, bio, role *string) (*data.User, error) {
	if caller.Role == data.RoleUser && !caller.Superuser {
		role = nil
	}
	user, err := s.repo.GetUserByUsername(caller.Username)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return s.applyUserUpdate(user, email, firstName, lastName, bio, role)
}

func (s *service) applyUserUpdate(user *data.User, email, firstName, lastName, bio, role *string) (*data.User, error) {
	if email != nil {
		user.Email = *email
	}
	if firstName != nil {
		user.FirstName = *firstName
	}
	if lastName != nil {
		user.LastName = *lastName
	}
	if bio != nil {
		user.Bio = *bio
	}
	if role != nil {
		user.Role = *role
	}
	v := validator.New()
	if data.ValidateUser(v, user); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err := s.repo.UpdateUser(user)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			v.AddError("email", "a user with this email address already exists")
			return nil, s.failedValidation(v.Errors)
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return user, nil
}

// DeleteUser deletes a user account along with its reviews and comments.
func (s *service) DeleteUser(username string) error {
	err := s.repo.DeleteUser(username)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}
