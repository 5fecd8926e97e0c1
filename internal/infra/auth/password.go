package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost of 10 keeps issuance and login under ~100ms on small instances.
const bcryptCost = 10

// BcryptHasher satisfies the usecase PasswordHasher contract.
type BcryptHasher struct{}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{}
}

func (BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
