// Package service declares the security services the use cases depend on.
package service

// PasswordHasher hashes account passwords and verifies sign-in attempts.
type PasswordHasher interface {
	// Hash returns the salted hash stored for an account.
	Hash(password string) (string, error)

	// Check reports whether password matches the stored hash. A malformed hash never matches.
	Check(password, hash string) bool
}
