package policy

import (
	"localizebackend/cmd/internal/utils"
	"localizebackend/cmd/internal/utils/apierror"
	"unicode/utf8"
)

const PasswordMinLength = 6

type PasswordHasher interface {
	Digest(plain string) string
}

// PasswordPolicy encapsulates the rules for changing an account password.
// It returns apierror.ErrorResponse directly for seamless integration with handlers.
type PasswordPolicy struct {
	hasher PasswordHasher
}

func NewPasswordPolicy(hasher PasswordHasher) *PasswordPolicy {
	return &PasswordPolicy{hasher: hasher}
}

// Matches reports whether plain hashes to storedDigest.
func (p *PasswordPolicy) Matches(plain, storedDigest string) bool {
	return p.hasher.Digest(plain) == storedDigest
}

// CheckChange validates a password change request and returns the digest to
// persist. An empty digest with a nil error means no change was requested.
//
// The checks run in a fixed order, so a caller with a wrong current password
// never learns anything about the new one.
func (p *PasswordPolicy) CheckChange(current, next, confirm, storedDigest string) (string, apierror.ErrorResponse) {
	if utils.IsBlank(next) && utils.IsBlank(confirm) {
		return "", nil
	}

	if utils.IsBlank(current) {
		return "", apierror.MissingCurrentPasswordError
	}

	if !p.Matches(current, storedDigest) {
		return "", apierror.WrongCurrentPasswordError
	}

	if utf8.RuneCountInString(next) < PasswordMinLength {
		return "", apierror.PasswordTooShortError
	}

	if next != confirm {
		return "", apierror.PasswordConfirmationMismatchError
	}
	return p.hasher.Digest(next), nil
}
