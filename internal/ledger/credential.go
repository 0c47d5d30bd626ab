package ledger

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Credential is the one-way hash of an account secret. The clear secret is
// never stored. Snapshots carry the hash, and reloading goes through
// CredentialFromHash so a stored hash is never hashed a second time.
type Credential struct {
	hash string
}

// CredentialFromSecret hashes a new clear-text secret.
func CredentialFromSecret(secret string) Credential {
	sum := sha256.Sum256([]byte(secret))
	return Credential{hash: hex.EncodeToString(sum[:])}
}

// CredentialFromHash wraps an already-hashed value read from a snapshot.
func CredentialFromHash(hash string) Credential {
	return Credential{hash: hash}
}

// Verify reports whether candidate hashes to the stored value.
func (c Credential) Verify(candidate string) bool {
	sum := sha256.Sum256([]byte(candidate))
	digest := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(digest), []byte(c.hash)) == 1
}

// Hash returns the hex digest for persistence.
func (c Credential) Hash() string {
	return c.hash
}
