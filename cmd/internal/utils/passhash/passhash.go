package passhash

import (
	"crypto/sha256"
	"encoding/base64"
)

// Hasher produces password digests with Digest.
type Hasher struct{}

func New() *Hasher {
	return &Hasher{}
}

func (h *Hasher) Digest(plain string) string {
	return Digest(plain)
}

// Digest returns the base64 encoded SHA-256 of the password. Equal inputs
// always produce equal outputs, so verification compares digests.
func Digest(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return base64.StdEncoding.EncodeToString(sum[:])
}
