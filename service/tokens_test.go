package service

import (
	"testing"

	"github.com/avolkov/mediatheca/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccessToken(t *testing.T) {
	s, repo, wg := newTestService()

	user, err := s.SignupUser("carol", "carol@example.net")
	require.NoError(t, err)
	wg.Wait()

	// Grab the plaintext confirmation code from the mock token store.
	var code string
	for key := range repo.tokens {
		code = key[len(data.ScopeConfirmation)+1:]
	}
	require.NotEmpty(t, code)

	token, err := s.CreateAccessToken("carol", code)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The exchange activates the account and burns the code.
	stored, err := repo.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.True(t, stored.Activated)
	assert.Empty(t, repo.tokens)

	_, err = s.CreateAccessToken("carol", code)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// The issued token resolves back to the user.
	verified, err := s.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, verified.ID)
}

func TestCreateAccessTokenUnknownUsername(t *testing.T) {
	s, _, _ := newTestService()

	_, err := s.CreateAccessToken("ghost", "AAAAAAAAAAAAAAAAAAAAAAAAAA")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestCreateAccessTokenWrongUser(t *testing.T) {
	s, repo, wg := newTestService()

	_, err := s.SignupUser("alice", "alice@example.net")
	require.NoError(t, err)
	_, err = s.SignupUser("bob", "bob@example.net")
	require.NoError(t, err)
	wg.Wait()

	// Find alice's code and try to spend it as bob.
	alice, err := repo.GetUserByUsername("alice")
	require.NoError(t, err)
	var aliceCode string
	for key, userID := range repo.tokens {
		if userID == alice.ID {
			aliceCode = key[len(data.ScopeConfirmation)+1:]
		}
	}
	require.NotEmpty(t, aliceCode)

	_, err = s.CreateAccessToken("bob", aliceCode)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyAccessTokenRejectsGarbage(t *testing.T) {
	s, _, _ := newTestService()

	_, err := s.VerifyAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.VerifyAccessToken("")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
