// Package passwd is the password-hashing boundary. The interface is fixed;
// the implementation is pluggable.
package passwd

import "golang.org/x/crypto/bcrypt"

type Hasher interface {
	Hash(plain string) (string, error)
	Verify(stored, plain string) bool
}

// BcryptHasher is the default Hasher, a salted adaptive hash.
type BcryptHasher struct {
	// Cost of 0 means bcrypt.DefaultCost. Tests lower it to MinCost.
	Cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{Cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(plain string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}
