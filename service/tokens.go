package service

import (
	"errors"
	"time"

	"github.com/avolkov/mediatheca/data"
	"github.com/avolkov/mediatheca/internal/validator"
	"github.com/avolkov/mediatheca/repository"
	"github.com/golang-jwt/jwt/v5"
)

type tokens interface {
	CreateAccessToken(username string, confirmationCode string) (string, error)
	VerifyAccessToken(tokenString string) (*data.User, error)
}

// accessClaims defines the claims carried by an access token.
type accessClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// CreateAccessToken exchanges a confirmation code for a signed access token.
// The confirmation code is single use: all outstanding codes for the user are
// deleted once the exchange succeeds.
func (s *service) CreateAccessToken(username string, confirmationCode string) (string, error) {
	v := validator.New()
	data.ValidateUsername(v, username)
	data.ValidateTokenPlaintext(v, confirmationCode)
	if !v.Valid() {
		return "", s.failedValidation(v.Errors)
	}
	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return "", ErrRecordNotFound
		default:
			return "", err
		}
	}
	// The code must resolve to the same user it was requested for. A code
	// belonging to another account is indistinguishable from an invalid one.
	tokenUser, err := s.repo.GetUserForToken(data.ScopeConfirmation, confirmationCode)
	if err != nil || tokenUser.ID != user.ID {
		switch {
		case err == nil, errors.Is(err, repository.ErrRecordNotFound):
			return "", ErrInvalidCredentials
		default:
			return "", err
		}
	}
	if !user.Activated {
		user.Activated = true
		err = s.repo.UpdateUser(user)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrEditConflict):
				return "", ErrEditConflict
			default:
				return "", err
			}
		}
	}
	err = s.repo.DeleteAllTokensForUser(data.ScopeConfirmation, user.ID)
	if err != nil {
		return "", err
	}
	ttl, err := time.ParseDuration(s.config.Jwt.TTL)
	if err != nil {
		return "", err
	}
	claims := accessClaims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Jwt.Issuer,
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Jwt.Secret))
}

// VerifyAccessToken parses and verifies an access token and resolves it to
// the current state of the user account it names.
func (s *service) VerifyAccessToken(tokenString string) (*data.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.config.Jwt.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.config.Jwt.Issuer),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	claims, ok := token.Claims.(*accessClaims)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	user, err := s.repo.GetUserByUsername(claims.Username)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrInvalidCredentials
		default:
			return nil, err
		}
	}
	return user, nil
}
