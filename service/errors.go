package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrFailedValidation   = errors.New("failed validation")
	ErrRecordNotFound     = errors.New("record not found")
	ErrEditConflict       = errors.New("edit conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateRecord    = errors.New("duplicate record")
	ErrNotPermitted       = errors.New("not permitted")
)

// failedValidation turns a validation error map into an error wrapping
// ErrFailedValidation, keeping the field name and message of every entry.
// Fields are sorted so the message is stable across calls.
func (s *service) failedValidation(errorMap map[string]string) error {
	if len(errorMap) == 0 {
		return ErrFailedValidation
	}
	fields := make([]string, 0, len(errorMap))
	for k := range errorMap {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	messages := make([]string, 0, len(fields))
	for _, k := range fields {
		messages = append(messages, fmt.Sprintf("%q %s", k, errorMap[k]))
	}
	return fmt.Errorf("%w: %s", ErrFailedValidation, strings.Join(messages, "; "))
}
