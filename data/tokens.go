package data

import (
	"time"

	"github.com/avolkov/mediatheca/internal/validator"
)

// ScopeConfirmation marks tokens issued as emailed confirmation codes during
// registration. Only the sha256 hash is stored; the plaintext is emailed to
// the user once and never persisted.
const ScopeConfirmation = "confirmation"

// Token defines a one-time credential tied to a user account.
type Token struct {
	Plaintext string    `json:"confirmation_code"`
	Hash      []byte    `json:"-"`
	UserID    int64     `json:"-"`
	Expiry    time.Time `json:"expiry"`
	Scope     string    `json:"-"`
}

func ValidateTokenPlaintext(v *validator.Validator, tokenPlaintext string) {
	v.Check(tokenPlaintext != "", "confirmation_code", "must be provided")
	v.Check(len(tokenPlaintext) == 26, "confirmation_code", "must be 26 bytes long")
}
