package auth

import (
	"crypto/sha256"
	"encoding/base64"
)

// Hasher produces the stored password digest: base64 over a single
// unsalted SHA-256 of the plaintext. The digest format is a compatibility
// contract with existing stored records, so it must stay deterministic.
type Hasher struct{}

func NewHasher() *Hasher {
	return &Hasher{}
}

func (h *Hasher) Digest(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Matches reports whether the plaintext hashes to the stored digest.
func (h *Hasher) Matches(plaintext string, digest string) bool {
	return h.Digest(plaintext) == digest
}
