// Package cryptox holds the password hashers used for stored credentials.
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/interviewdesk/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	SchemePlaintext = "plaintext"
	SchemeArgon2id  = "argon2id"
)

var ErrUnknownScheme = errors.New("unknown password scheme")

// Hasher turns a password into the string kept in a credential record and
// checks candidates against it.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(stored, candidate string) bool
}

// NewHasher returns the hasher for scheme.
func NewHasher(scheme string) (Hasher, error) {
	switch scheme {
	case SchemePlaintext:
		return PlaintextHasher{}, nil
	case SchemeArgon2id, "":
		return NewArgon2idHasher(DefaultArgon2Params()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
	}
}

// PlaintextHasher stores the password as-is. It exists for compatibility
// with stores that kept plain passwords and must not be used beyond demos.
type PlaintextHasher struct{}

func (PlaintextHasher) Hash(password string) (string, error) { return password, nil }

// Verify never accepts an empty stored password; such a record is damaged.
func (PlaintextHasher) Verify(stored, candidate string) bool {
	if stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// Argon2Params controls argon2id cost. Memory is in KiB.
type Argon2Params struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  int
	KeyLength   uint32
}

func DefaultArgon2Params() Argon2Params {
	return Argon2Params{Memory: 64 * 1024, Iterations: 1, Parallelism: 4, SaltLength: 16, KeyLength: 32}
}

// Argon2idHasher produces PHC-style strings:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
type Argon2idHasher struct {
	params Argon2Params
}

func NewArgon2idHasher(p Argon2Params) *Argon2idHasher {
	return &Argon2idHasher{params: p}
}

func (h *Argon2idHasher) Hash(password string) (string, error) {
	salt := common.GenerateRandByteArray(h.params.SaltLength)
	key := DeriveKey([]byte(password), salt, h.params)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.params.Memory, h.params.Iterations, h.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify re-derives the key with the parameters recorded in stored, so
// hashes keep verifying after the configured cost changes.
func (h *Argon2idHasher) Verify(stored, candidate string) bool {
	p, salt, key, err := decodeArgon2id(stored)
	if err != nil {
		return false
	}
	got := DeriveKey([]byte(candidate), salt, p)
	return subtle.ConstantTimeCompare(got, key) == 1
}

// DeriveKey runs argon2id over password and salt.
func DeriveKey(password, salt []byte, p Argon2Params) []byte {
	return argon2.IDKey(password, salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)
}

// Upper bounds accepted from stored hashes.
const (
	maxArgon2Memory     = 1024 * 1024 // KiB, 1 GiB
	maxArgon2Iterations = 64
)

// checkArgon2Params rejects costs argon2.IDKey would panic on or that would
// stall a login.
func checkArgon2Params(p Argon2Params) error {
	switch {
	case p.Iterations == 0 || p.Iterations > maxArgon2Iterations:
		return fmt.Errorf("argon2id params: iterations %d out of range", p.Iterations)
	case p.Parallelism == 0:
		return errors.New("argon2id params: parallelism must be positive")
	case p.Memory == 0 || p.Memory > maxArgon2Memory:
		return fmt.Errorf("argon2id params: memory %d out of range", p.Memory)
	}
	return nil
}

func decodeArgon2id(encoded string) (Argon2Params, []byte, []byte, error) {
	var p Argon2Params

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != SchemeArgon2id {
		return p, nil, nil, errors.New("malformed argon2id hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return p, nil, nil, errors.New("unsupported argon2 version")
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Iterations, &p.Parallelism); err != nil {
		return p, nil, nil, fmt.Errorf("argon2id params: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("argon2id salt: %w", err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("argon2id key: %w", err)
	}
	if len(key) == 0 {
		return p, nil, nil, errors.New("argon2id key: empty")
	}
	if err := checkArgon2Params(p); err != nil {
		return p, nil, nil, err
	}
	p.SaltLength = len(salt)
	p.KeyLength = uint32(len(key))
	return p, salt, key, nil
}
