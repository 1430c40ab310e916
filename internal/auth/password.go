package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the work factor for password hashing. 10 keeps login
// latency tolerable while staying well above the library minimum.
const bcryptCost = 10

// dummyHash is a valid bcrypt hash of a random throwaway string. It is
// compared against when a login email doesn't match any user, so that
// lookups against known and unknown accounts take comparable time.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMye1VdLcnzrPC7u5Ub0rlXAO8f3yBkpbhe"

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plaintext password matches the
// stored bcrypt hash.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// VerifyDummy burns a bcrypt comparison against a throwaway hash.
// Called when no account exists for a login email.
func VerifyDummy(password string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
}
