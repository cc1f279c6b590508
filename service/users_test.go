package service

import (
	"testing"

	"github.com/avolkov/mediatheca/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupUser(t *testing.T) {
	s, repo, wg := newTestService()

	user, err := s.SignupUser("carol", "carol@example.net")
	require.NoError(t, err)
	assert.Equal(t, data.RoleUser, user.Role)
	assert.False(t, user.Activated)

	// Signing up again with the exact same pair reuses the account.
	again, err := s.SignupUser("carol", "carol@example.net")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
	assert.Len(t, repo.users, 1)

	// A taken username with a different email fails validation.
	_, err = s.SignupUser("carol", "other@example.net")
	assert.ErrorIs(t, err, ErrFailedValidation)

	// So does a taken email with a different username.
	_, err = s.SignupUser("beaver", "carol@example.net")
	assert.ErrorIs(t, err, ErrFailedValidation)

	wg.Wait()
}

func TestSignupUserValidation(t *testing.T) {
	s, _, _ := newTestService()

	_, err := s.SignupUser("me", "me@example.net")
	assert.ErrorIs(t, err, ErrFailedValidation)

	_, err = s.SignupUser("has space", "x@example.net")
	assert.ErrorIs(t, err, ErrFailedValidation)

	_, err = s.SignupUser("carol", "not-an-email")
	assert.ErrorIs(t, err, ErrFailedValidation)
}

func TestCreateUserDefaultsRole(t *testing.T) {
	s, _, _ := newTestService()

	user, err := s.CreateUser("mod", "mod@example.net", "", "", "", data.RoleModerator)
	require.NoError(t, err)
	assert.Equal(t, data.RoleModerator, user.Role)
	assert.True(t, user.Activated)

	user, err = s.CreateUser("plain", "plain@example.net", "", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, data.RoleUser, user.Role)

	_, err = s.CreateUser("bad", "bad@example.net", "", "", "", "owner")
	assert.ErrorIs(t, err, ErrFailedValidation)
}

func TestUpdateProfileDropsRoleChange(t *testing.T) {
	s, _, _ := newTestService()

	user, err := s.CreateUser("plain", "plain@example.net", "", "", "", data.RoleUser)
	require.NoError(t, err)

	role := data.RoleAdmin
	bio := "hello"
	updated, err := s.UpdateProfile(user, nil, nil, nil, &bio, &role)
	require.NoError(t, err)
	assert.Equal(t, data.RoleUser, updated.Role)
	assert.Equal(t, "hello", updated.Bio)
}

func TestUpdateUserAppliesRoleChange(t *testing.T) {
	s, _, _ := newTestService()

	_, err := s.CreateUser("plain", "plain@example.net", "", "", "", data.RoleUser)
	require.NoError(t, err)

	role := data.RoleModerator
	updated, err := s.UpdateUser("plain", nil, nil, nil, nil, &role)
	require.NoError(t, err)
	assert.Equal(t, data.RoleModerator, updated.Role)

	_, err = s.UpdateUser("ghost", nil, nil, nil, nil, &role)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestDeleteUser(t *testing.T) {
	s, repo, _ := newTestService()

	_, err := s.CreateUser("doomed", "doomed@example.net", "", "", "", "")
	require.NoError(t, err)

	err = s.DeleteUser("doomed")
	require.NoError(t, err)
	assert.Empty(t, repo.users)

	err = s.DeleteUser("doomed")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
