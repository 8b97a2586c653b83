// Package yarsa wraps the RSA primitives of the standard library for the key
// volume demo: DER key parsing, single-block encryption and decryption, and a
// seeded deterministic byte generator for the padding randomness.
//
// Key formats accepted:
//   - public:  PKIX SubjectPublicKeyInfo DER ("openssl rsa -pubout -outform DER")
//     or PKCS#1 RSAPublicKey DER
//   - private: PKCS#8 DER ("openssl pkcs8 -topk8 -outform DER -nocrypt")
//     or PKCS#1 RSAPrivateKey DER
//   - ParsePrivateKey additionally accepts PEM and base64 of PEM/DER, which helps
//     when keys are pasted into environment variables. ParsePrivateKeyFile
//     falls back to it when a key file is not DER.
//
// Every failure is a yaerrors.Error whose code tells which step failed.
package yarsa

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"

	"github.com/YaCodeDev/GoYaRSADemo/yaerrors"
)

// ErrNotRSAKey is the cause of every CodeKeyType failure.
var ErrNotRSAKey = errors.New("key is not an RSA key")

// ParsePublicKeyDER parses a DER-encoded RSA public key in PKIX or PKCS#1 form.
func ParsePublicKeyDER(der []byte) (*rsa.PublicKey, yaerrors.Error) {
	if len(der) == 0 {
		return nil, yaerrors.FromString(yaerrors.CodeKeyParse, "[RSA] public key DER is empty")
	}

	parsed, pkixErr := x509.ParsePKIXPublicKey(der)
	if pkixErr == nil {
		key, ok := parsed.(*rsa.PublicKey)
		if !ok {
			return nil, yaerrors.FromError(
				yaerrors.CodeKeyType,
				ErrNotRSAKey,
				fmt.Sprintf("[RSA] PKIX public key is %T", parsed),
			)
		}

		return key, nil
	}

	key, pkcs1Err := x509.ParsePKCS1PublicKey(der)
	if pkcs1Err != nil {
		return nil, yaerrors.FromError(
			yaerrors.CodeKeyParse,
			errors.Join(pkixErr, pkcs1Err),
			"[RSA] DER public key is neither PKIX nor PKCS#1",
		)
	}

	return key, nil
}

// ParsePrivateKeyDER parses a DER-encoded RSA private key in PKCS#8 or PKCS#1 form.
func ParsePrivateKeyDER(der []byte) (*rsa.PrivateKey, yaerrors.Error) {
	if len(der) == 0 {
		return nil, yaerrors.FromString(yaerrors.CodeKeyParse, "[RSA] private key DER is empty")
	}

	key, yaerr := parsePKCS8DER(der)
	if yaerr == nil {
		return key, nil
	}

	if yaerr.Code() == yaerrors.CodeKeyType {
		return nil, yaerr
	}

	key, yaerr = parsePKCS1DER(der)
	if yaerr != nil {
		return nil, yaerr.Wrap("[RSA] DER private key is neither PKCS#8 nor PKCS#1")
	}

	return key, nil
}

// RequireKeyBits checks that the modulus has exactly bits bits.
// Buffers in the demo are sized for one key size only.
func RequireKeyBits(public *rsa.PublicKey, bits int) yaerrors.Error {
	if public == nil || public.N == nil {
		return yaerrors.FromString(yaerrors.CodeBadInput, "[RSA] public key is nil")
	}

	if got := public.N.BitLen(); got != bits {
		return yaerrors.FromString(
			yaerrors.CodeKeySizeMismatch,
			fmt.Sprintf("[RSA] key has %d-bit modulus, expected %d", got, bits),
		)
	}

	return nil
}

// ParsePrivateKeyFile parses the content of a private key file. DER is tried
// first, then the text forms ParsePrivateKey accepts, so a PEM key saved under
// a .der name still loads. When neither works the DER error is returned.
func ParsePrivateKeyFile(data []byte) (*rsa.PrivateKey, yaerrors.Error) {
	key, derErr := ParsePrivateKeyDER(data)
	if derErr == nil || derErr.Code() != yaerrors.CodeKeyParse {
		return key, derErr
	}

	key, textErr := ParsePrivateKey(string(data))
	if textErr == nil {
		return key, nil
	}

	if textErr.Code() == yaerrors.CodeKeyType {
		return nil, textErr
	}

	return nil, derErr
}

// ParsePrivateKey parses an RSA private key given as text:
//   - PEM, "RSA PRIVATE KEY" (PKCS#1) or "PRIVATE KEY" (PKCS#8) blocks
//   - base64 of such PEM
//   - base64 of DER
//
// Base64 may use the standard or URL alphabet, with or without padding, and
// may be wrapped over several lines.
func ParsePrivateKey(text string) (*rsa.PrivateKey, yaerrors.Error) {
	input := strings.TrimSpace(text)

	if hasPrivateKeyPEMHeader(input) {
		return parsePrivateKeyPEM([]byte(input))
	}

	raw, yaerr := decodeBase64(StripCRLF(input))
	if yaerr != nil {
		return nil, yaerr.Wrap("[RSA] private key text is neither PEM nor base64")
	}

	if hasPrivateKeyPEMHeader(string(raw)) {
		return parsePrivateKeyPEM(raw)
	}

	key, yaerr := ParsePrivateKeyDER(raw)
	if yaerr != nil {
		return nil, yaerr.Wrap("[RSA] base64 payload is not a private key")
	}

	return key, nil
}

// StripCRLF drops line breaks and surrounding spaces from a wrapped base64 payload.
func StripCRLF(s string) string {
	return strings.TrimSpace(strings.NewReplacer("\r", "", "\n", "").Replace(s))
}

func hasPrivateKeyPEMHeader(s string) bool {
	upper := strings.ToUpper(s)

	return strings.Contains(upper, "-----BEGIN ") && strings.Contains(upper, "PRIVATE KEY-----")
}

var base64Encodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

func decodeBase64(s string) ([]byte, yaerrors.Error) {
	if s == "" {
		return nil, yaerrors.FromString(yaerrors.CodeKeyParse, "[RSA] key text is empty")
	}

	var lastErr error

	for _, enc := range base64Encodings {
		raw, err := enc.DecodeString(s)
		if err == nil {
			return raw, nil
		}

		lastErr = err
	}

	return nil, yaerrors.FromError(yaerrors.CodeKeyParse, lastErr, "[RSA] decode base64")
}

func parsePrivateKeyPEM(data []byte) (*rsa.PrivateKey, yaerrors.Error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, yaerrors.FromString(yaerrors.CodeKeyParse, "[RSA] no PEM block found")
	}

	var (
		key   *rsa.PrivateKey
		yaerr yaerrors.Error
	)

	switch block.Type {
	case "RSA PRIVATE KEY":
		key, yaerr = parsePKCS1DER(block.Bytes)
	case "PRIVATE KEY":
		key, yaerr = parsePKCS8DER(block.Bytes)
	default:
		return nil, yaerrors.FromString(yaerrors.CodeKeyParse, "[RSA] unsupported PEM block "+block.Type)
	}

	if yaerr != nil {
		return nil, yaerr.Wrap("[RSA] PEM " + block.Type)
	}

	return key, nil
}

func parsePKCS1DER(der []byte) (*rsa.PrivateKey, yaerrors.Error) {
	key, err := x509.ParsePKCS1PrivateKey(der)
	if err != nil {
		return nil, yaerrors.FromError(yaerrors.CodeKeyParse, err, "[RSA] DER PKCS#1 parse failed")
	}

	return key, nil
}

func parsePKCS8DER(der []byte) (*rsa.PrivateKey, yaerrors.Error) {
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, yaerrors.FromError(yaerrors.CodeKeyParse, err, "[RSA] DER PKCS#8 parse failed")
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, yaerrors.FromError(
			yaerrors.CodeKeyType,
			ErrNotRSAKey,
			fmt.Sprintf("[RSA] PKCS#8 key is %T", parsed),
		)
	}

	return key, nil
}
