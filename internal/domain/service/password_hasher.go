// Package service defines the ports the use cases call out through:
// hashing, tokens, QR codes, queued notices and notification delivery.
package service

// PasswordHasher hashes passwords at registration and checks them at login.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Any hash error counts as a mismatch.
	Check(password, hash string) bool
}
