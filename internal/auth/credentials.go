package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// Verifier turns a submitted password into its stored form and checks a
// submitted password against a stored one. The plaintext scheme does an
// exact-string comparison; bcrypt is available behind the same contract and
// selected by configuration.
type Verifier interface {
	Hash(password string) (string, error)
	Verify(stored, submitted string) bool
}

// PlaintextVerifier stores passwords as-is and compares raw strings.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Hash(password string) (string, error) {
	return password, nil
}

func (PlaintextVerifier) Verify(stored, submitted string) bool {
	return stored == submitted
}

// BcryptVerifier stores bcrypt hashes.
type BcryptVerifier struct {
	Cost int
}

func (v BcryptVerifier) cost() int {
	if v.Cost == 0 {
		return bcrypt.DefaultCost
	}
	return v.Cost
}

func (v BcryptVerifier) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), v.cost())
	return string(hash), err
}

func (v BcryptVerifier) Verify(stored, submitted string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted)) == nil
}

// NewVerifier selects a Verifier by scheme name. Anything other than
// "bcrypt" falls back to plaintext, the default.
func NewVerifier(scheme string) Verifier {
	if scheme == "bcrypt" {
		return BcryptVerifier{}
	}
	return PlaintextVerifier{}
}
