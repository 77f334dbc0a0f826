package security

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/auth"
)

// bcrypt only reads the first 72 bytes of the input. Longer passwords are
// truncated here so that Hash and Verify agree instead of erroring out.
const maxPasswordBytes = 72

// BcryptHasher hashes passwords with bcrypt at the default cost.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a new bcrypt-backed PasswordHasher implementation
func NewBcryptHasher() auth.PasswordHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(truncatePassword(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password)) == nil
}

func truncatePassword(password string) []byte {
	raw := []byte(password)
	if len(raw) > maxPasswordBytes {
		raw = raw[:maxPasswordBytes]
	}
	return raw
}
