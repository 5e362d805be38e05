package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const digestLength = sha256.Size * 2

// SHA256 is a SHA-256 digest rendered as 64 uppercase hex characters.
type SHA256 string

// NewSHA256 validates s as a 64-character hex digest. Lowercase hex is
// accepted and normalized to uppercase.
func NewSHA256(s string) (SHA256, error) {
	if len(s) != digestLength {
		return "", fmt.Errorf("digest %q: %w", s, ErrDigestLength)
	}
	for _, r := range s {
		if !isHexDigit(r) {
			return "", fmt.Errorf("digest %q: %w", s, ErrDigestCharacter)
		}
	}
	return SHA256(strings.ToUpper(s)), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// SHA256FromDigest renders a raw digest as an uppercase hex string.
func SHA256FromDigest(sum [sha256.Size]byte) SHA256 {
	return SHA256(strings.ToUpper(hex.EncodeToString(sum[:])))
}

// SHA256FromReader hashes the contents of r.
func SHA256FromReader(r io.Reader) (SHA256, error) {
	hasher := sha256.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return "", fmt.Errorf("hash reader: %w", err)
	}
	var sum [sha256.Size]byte
	copy(sum[:], hasher.Sum(nil))
	return SHA256FromDigest(sum), nil
}

// SHA256FromFile hashes the contents of the file at path.
func SHA256FromFile(path string) (SHA256, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	defer f.Close()
	return SHA256FromReader(f)
}

// String returns the digest as a plain string.
func (d SHA256) String() string { return string(d) }

// UnmarshalYAML decodes and validates a digest string.
func (d *SHA256) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewSHA256(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
