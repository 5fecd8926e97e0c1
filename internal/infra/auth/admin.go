package auth

import "crypto/subtle"

// AdminVerifier checks the operator credentials configured at boot. It is
// injected into the auth middleware so no package-level credential state
// exists.
type AdminVerifier struct {
	user         string
	passwordHash string // bcrypt, preferred
	password     string // plaintext fallback for local development
}

func NewAdminVerifier(user, passwordHash, password string) *AdminVerifier {
	return &AdminVerifier{
		user:         user,
		passwordHash: passwordHash,
		password:     password,
	}
}

func (v *AdminVerifier) Verify(user, password string) bool {
	if v.user == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(user), []byte(v.user)) != 1 {
		return false
	}

	if v.passwordHash != "" {
		return BcryptHasher{}.Verify(v.passwordHash, password)
	}
	if v.password != "" {
		return subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	}
	return false
}
