package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailedValidationListsEveryField(t *testing.T) {
	s, _, _ := newTestService()

	err := s.failedValidation(map[string]string{
		"username": "must be provided",
		"email":    "must be a valid email address",
	})
	assert.ErrorIs(t, err, ErrFailedValidation)
	assert.Equal(t, `failed validation: "email" must be a valid email address; "username" must be provided`, err.Error())
}

func TestFailedValidationEmptyMap(t *testing.T) {
	s, _, _ := newTestService()

	err := s.failedValidation(nil)
	assert.ErrorIs(t, err, ErrFailedValidation)
}
