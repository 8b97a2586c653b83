package yarsa

import (
	"crypto/sha256"
	"errors"
	"strings"
)

// Padding selects the RSA encryption scheme.
type Padding uint8

const (
	// PaddingOAEP is RSAES-OAEP with SHA-256 and an empty label.
	PaddingOAEP Padding = iota
	// PaddingPKCS1v15 is RSAES-PKCS1-v1_5, the default of embedded pk libraries.
	PaddingPKCS1v15
)

// pkcs1v15Overhead is the minimal PKCS#1 v1.5 padding: 0x00 0x02, 8 random bytes, 0x00.
const pkcs1v15Overhead = 11

var ErrUnknownPadding = errors.New("unknown padding")

func (p Padding) String() string {
	switch p {
	case PaddingOAEP:
		return "oaep"
	case PaddingPKCS1v15:
		return "pkcs1v15"
	default:
		return "unknown"
	}
}

// overhead returns how many bytes of a block the padding consumes.
func (p Padding) overhead() (int, bool) {
	switch p {
	case PaddingOAEP:
		return 2*sha256.Size + 2, true
	case PaddingPKCS1v15:
		return pkcs1v15Overhead, true
	default:
		return 0, false
	}
}

// UnmarshalText reads a padding name from configuration, case-insensitively.
func (p *Padding) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "oaep", "oaep-sha256":
		*p = PaddingOAEP
	case "pkcs1v15", "pkcs1", "v15":
		*p = PaddingPKCS1v15
	default:
		return ErrUnknownPadding
	}

	return nil
}
