package service

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/cortex-bank-server/internal/storage/mongoconfig"
)

// User represents a user in the service layer. Password carries the raw
// password only on registration input; it is stored hashed and never read back.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Password  string
	CreatedAt time.Time
}

// IsValid reports whether the user has all required fields and a password
// that satisfies the strength policy.
func (u User) IsValid() bool {
	if u.Username == "" || u.Email == "" || u.Password == "" {
		return false
	}
	return IsPasswordStrong(u.Password)
}

const passwordSpecialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// IsPasswordStrong reports whether the password is at least 8 characters and
// contains at least one ASCII letter, one digit, and one special character.
func IsPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}

	hasLetter := strings.ContainsFunc(password, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	})
	if !hasLetter {
		return false
	}

	hasNumber := strings.ContainsAny(password, "0123456789")
	if !hasNumber {
		return false
	}

	return strings.ContainsAny(password, passwordSpecialChars)
}

func userFromStorage(doc *mongoconfig.User) User {
	return User{
		ID:        uuid.FromStringOrNil(doc.ID),
		Username:  doc.Username,
		Email:     doc.Email,
		CreatedAt: doc.CreatedAt,
	}
}
