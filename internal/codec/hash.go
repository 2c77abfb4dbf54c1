package codec

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"strings"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/toolerr"
)

// HashAlgorithm represents the hashing algorithm to use
type HashAlgorithm string

const (
	MD5    HashAlgorithm = "md5"
	SHA1   HashAlgorithm = "sha1"
	SHA256 HashAlgorithm = "sha256"
	SHA512 HashAlgorithm = "sha512"
)

var hashConstructors = map[HashAlgorithm]func() hash.Hash{
	MD5:    md5.New,
	SHA1:   sha1.New,
	SHA256: sha256.New,
	SHA512: sha512.New,
}

// Algorithms lists the supported algorithms in display order.
func Algorithms() []string {
	return []string{string(MD5), string(SHA1), string(SHA256), string(SHA512)}
}

// ParseAlgorithm validates an algorithm name.
func ParseAlgorithm(name string) (HashAlgorithm, error) {
	algo := HashAlgorithm(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := hashConstructors[algo]; !ok {
		return "", toolerr.Unsupported("algorithm", name, Algorithms()...)
	}
	return algo, nil
}

// Hasher computes hex digests with one algorithm
type Hasher struct {
	algorithm HashAlgorithm
	newHash   func() hash.Hash
}

// NewHasher creates a new hasher with the specified algorithm
func NewHasher(name string) (*Hasher, error) {
	algo, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return &Hasher{algorithm: algo, newHash: hashConstructors[algo]}, nil
}

// DefaultHasher returns a hasher with the default algorithm
func DefaultHasher() *Hasher {
	return &Hasher{algorithm: SHA256, newHash: sha256.New}
}

// Algorithm returns the hasher's algorithm.
func (h *Hasher) Algorithm() HashAlgorithm {
	return h.algorithm
}

// Hash computes a lowercase hex digest of data
func (h *Hasher) Hash(data []byte) string {
	digest := h.newHash()
	digest.Write(data)
	return hex.EncodeToString(digest.Sum(nil))
}

// HashString computes a digest of the UTF-8 bytes of s
func (h *Hasher) HashString(s string) string {
	return h.Hash([]byte(s))
}
