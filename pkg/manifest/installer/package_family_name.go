package installer

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf16"

	"gopkg.in/yaml.v3"
)

// crockfordAlphabet is the base32 alphabet package identity uses: no I,
// L, O, or U.
const crockfordAlphabet = "0123456789abcdefghjkmnpqrstvwxyz"

const publisherIDLength = 13

// PackageFamilyName is the stable identity of an MSIX package: the
// identity name joined to a hash of the publisher, as in
// "Microsoft.WindowsTerminal_8wekyb3d8bbwe".
type PackageFamilyName string

// NewPackageFamilyName validates s as a package family name.
func NewPackageFamilyName(s string) (PackageFamilyName, error) {
	name, id, found := strings.Cut(s, "_")
	if !found || name == "" || len(id) != publisherIDLength {
		return "", fmt.Errorf("package family name %q: %w", s, ErrInvalidPackageFamilyName)
	}
	for i := 0; i < len(id); i++ {
		if strings.IndexByte(crockfordAlphabet, id[i]) < 0 {
			return "", fmt.Errorf("package family name %q: %w", s, ErrInvalidPackageFamilyName)
		}
	}
	return PackageFamilyName(s), nil
}

// FamilyNameFromIdentity derives the package family name from an MSIX
// identity name and publisher string, the way MSIX tooling does.
func FamilyNameFromIdentity(identityName, publisher string) PackageFamilyName {
	return PackageFamilyName(identityName + "_" + publisherIDHash(publisher))
}

// publisherIDHash hashes the UTF-16 publisher string with SHA-256 and
// encodes the first 64 bits as 13 Crockford base32 characters. The last
// character carries only 4 hash bits, so its low bit is always zero.
func publisherIDHash(publisher string) string {
	units := utf16.Encode([]rune(publisher))
	encoded := make([]byte, len(units)*2)
	for i, unit := range units {
		binary.LittleEndian.PutUint16(encoded[i*2:], unit)
	}
	digest := sha256.Sum256(encoded)
	raw := binary.BigEndian.Uint64(digest[:8])

	var out [publisherIDLength]byte
	out[publisherIDLength-1] = crockfordAlphabet[(raw&0xF)<<1]
	raw >>= 4
	for i := publisherIDLength - 2; i >= 0; i-- {
		out[i] = crockfordAlphabet[raw&0x1F]
		raw >>= 5
	}
	return string(out[:])
}

// String returns the family name as a plain string.
func (n PackageFamilyName) String() string { return string(n) }

// UnmarshalYAML decodes and validates a package family name.
func (n *PackageFamilyName) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := NewPackageFamilyName(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
