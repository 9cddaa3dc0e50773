// Package auth compares shared secrets for the password-gated routes.
package auth

import "crypto/subtle"

// Matches reports whether candidate equals secret in constant time.
// An empty secret never matches, so an unconfigured deployment stays locked.
func Matches(secret, candidate string) bool {
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(candidate)) == 1
}
