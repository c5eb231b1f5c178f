// Package gate implements the shared-password access check in front of the
// brief. This is a coordination hurdle for a crew of ~20, not a security
// boundary: one cleartext password, verified against an argon2id hash, with
// a single access-granted flag per browser as the only persisted state.
package gate

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters (OWASP recommended).
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	saltLen      = 16
)

const DefaultSecretFile = "gate.secret"

// HashPassword derives an encoded argon2id hash for the shared password.
// Format: argon2id:<b64 salt>:<b64 key>.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return fmt.Sprintf("argon2id:%s:%s",
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// Verify checks a password attempt against an encoded hash in constant time.
func Verify(password, encoded string) bool {
	parts := strings.Split(strings.TrimSpace(encoded), ":")
	if len(parts) != 3 || parts[0] != "argon2id" {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil {
		return false
	}
	got := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}

// LoadSecret reads the encoded hash from path. A missing file is not an
// error; it returns empty, leaving the gate open for local development.
func LoadSecret(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read secret file: %w", err)
	}
	encoded := strings.TrimSpace(string(data))
	if encoded == "" {
		return "", nil
	}
	if !strings.HasPrefix(encoded, "argon2id:") {
		return "", fmt.Errorf("invalid secret file format (expected argon2id:<salt>:<key>)")
	}
	return encoded, nil
}
