// internal/core/ports/hasher.go
package ports

// PasswordHasher hashes and verifies user credentials. Only the user
// write path depends on it.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
