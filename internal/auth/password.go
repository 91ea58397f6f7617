package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrInvalidHash is returned when a stored password hash cannot be parsed.
// Callers must treat this as an internal failure, not a credential mismatch.
var ErrInvalidHash = errors.New("invalid password hash")

// Argon2id parameters. Conservative defaults; hashes embed their own
// parameters so these can be raised without invalidating stored credentials.
const (
	argonMemoryKiB   = 64 * 1024
	argonIterations  = 3
	argonParallelism = 2
	argonSaltLen     = 16
	argonKeyLen      = 32
)

// HashPassword hashes a password with Argon2id and a fresh random salt.
// Output format: $argon2id$v=19$m=<mem>,t=<iter>,p=<par>$<salt_b64>$<key_b64>
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonIterations, argonMemoryKiB, argonParallelism, argonKeyLen)

	b64 := base64.RawStdEncoding
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemoryKiB, argonIterations, argonParallelism,
		b64.EncodeToString(salt), b64.EncodeToString(key)), nil
}

// VerifyPassword reports whether password matches the encoded hash.
// A malformed hash returns ErrInvalidHash; a clean mismatch returns (false, nil).
func VerifyPassword(password, encoded string) (bool, error) {
	mem, iter, par, salt, expected, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	key := argon2.IDKey([]byte(password), salt, iter, mem, par, uint32(len(expected)))
	return subtle.ConstantTimeCompare(key, expected) == 1, nil
}

// decodeHash parses the PHC-encoded hash and returns cost parameters,
// salt, and the expected key.
func decodeHash(encoded string) (mem, iter uint32, par uint8, salt, key []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}

	var p uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iter, &p); err != nil {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}
	if mem == 0 || iter == 0 || p == 0 || p > 255 {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}
	par = uint8(p)

	b64 := base64.RawStdEncoding
	salt, err = b64.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}
	key, err = b64.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}

	return mem, iter, par, salt, key, nil
}
