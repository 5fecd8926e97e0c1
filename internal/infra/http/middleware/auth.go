package middleware

import "net/http"

// CredentialVerifier is the injected admin identity check. The middleware
// only sees pass/fail.
type CredentialVerifier interface {
	Verify(user, password string) bool
}

// BasicAuth gates the admin routes behind HTTP Basic credentials.
func BasicAuth(verifier CredentialVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || !verifier.Verify(user, pass) {
				w.Header().Set("WWW-Authenticate", `Basic realm="Leads Admin"`)
				http.Error(w, "Authentication required", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
