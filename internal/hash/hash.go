// Package hash produces and verifies the salted password hashes the tool
// prints for storage. The complexity check happens before any of this runs;
// this package never inspects password content.
package hash

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Method selects a hashing algorithm.
type Method string

const (
	MethodBcrypt   Method = "bcrypt"
	MethodArgon2id Method = "argon2id"
)

// BcryptCost is the cost factor for bcrypt hashing
// Higher values are more secure but slower
const BcryptCost = 12

// argon2id parameters, per the RFC 9106 low-memory recommendation.
const (
	argonTime    = 3
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
)

// Methods lists the supported hashing methods.
func Methods() []Method {
	return []Method{MethodBcrypt, MethodArgon2id}
}

// ParseMethod maps a user-supplied method name onto a Method. An empty name
// selects bcrypt.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(MethodBcrypt):
		return MethodBcrypt, nil
	case string(MethodArgon2id), "argon2":
		return MethodArgon2id, nil
	default:
		return "", fmt.Errorf("unknown hashing method %q", name)
	}
}

// Hash generates a salted hash from a plain text password using the given
// method.
func Hash(method Method, password string) (string, error) {
	switch method {
	case MethodBcrypt:
		bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
		if err != nil {
			return "", err
		}
		return string(bytes), nil
	case MethodArgon2id:
		return hashArgon2id(password)
	default:
		return "", fmt.Errorf("unknown hashing method %q", method)
	}
}

// Verify compares a plain text password with an encoded hash. The method is
// detected from the hash prefix.
func Verify(password, encoded string) bool {
	if strings.HasPrefix(encoded, "$argon2id$") {
		return verifyArgon2id(password, encoded)
	}
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
}

func hashArgon2id(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

func verifyArgon2id(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memory, time uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 {
		return false
	}

	got := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1
}
