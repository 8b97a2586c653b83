package yarsa

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"io"

	"github.com/YaCodeDev/GoYaRSADemo/yaerrors"
	"golang.org/x/crypto/hkdf"
)

const (
	// DefaultPersonalization is mixed into the generator seed, the same string
	// the device firmware passes to its CTR-DRBG.
	DefaultPersonalization = "rsa_encrypt"

	// SeedEntropySize is how many bytes NewSeededReader draws from the entropy source.
	SeedEntropySize = 48

	seedSize = sha256.Size
)

// DeterministicReader is a deterministic byte stream backed by
// HMAC-SHA256(seed, counter). For a fixed seed it produces the same sequence of
// bytes on every run. The 64-bit counter is big-endian encoded and incremented
// once per 32-byte block.
//
// It is not concurrency-safe, use one instance per goroutine.
//
// Usage:
//
//	r := yarsa.NewDeterministicReader([]byte("seed"))
//	buf := make([]byte, 64)
//	_, _ = r.Read(buf)
type DeterministicReader struct {
	seed    []byte
	counter uint64
	buf     [sha256.Size]byte
	pos     int
}

// NewDeterministicReader constructs a reader from seed. The seed is copied.
func NewDeterministicReader(seed []byte) *DeterministicReader {
	return &DeterministicReader{
		seed: append([]byte{}, seed...),
		pos:  sha256.Size,
	}
}

// NewSeededReader draws SeedEntropySize bytes from entropy, derives a seed with
// HKDF-SHA256 using personalization as the info string, and returns a
// DeterministicReader over it. An empty personalization uses DefaultPersonalization.
//
// Example:
//
//	drbg, err := yarsa.NewSeededReader(rand.Reader, yarsa.DefaultPersonalization)
//	if err != nil {
//	    // err.Code() == yaerrors.CodeSeed
//	}
func NewSeededReader(entropy io.Reader, personalization string) (*DeterministicReader, yaerrors.Error) {
	if entropy == nil {
		return nil, yaerrors.FromString(yaerrors.CodeSeed, "[DRBG] entropy source is nil")
	}

	if personalization == "" {
		personalization = DefaultPersonalization
	}

	material := make([]byte, SeedEntropySize)
	if _, err := io.ReadFull(entropy, material); err != nil {
		return nil, yaerrors.FromError(yaerrors.CodeSeed, err, "[DRBG] failed to gather entropy")
	}

	seed := make([]byte, seedSize)

	kdf := hkdf.New(sha256.New, material, nil, []byte(personalization))
	if _, err := io.ReadFull(kdf, seed); err != nil {
		return nil, yaerrors.FromError(yaerrors.CodeSeed, err, "[DRBG] failed to derive seed")
	}

	return NewDeterministicReader(seed), nil
}

// Read fills p with deterministic bytes and always returns len(p), nil.
func (r *DeterministicReader) Read(p []byte) (int, error) {
	written := 0
	for written < len(p) {
		if r.pos >= len(r.buf) {
			r.refill()
		}

		n := copy(p[written:], r.buf[r.pos:])

		r.pos += n
		written += n
	}

	return written, nil
}

// refill computes the next block = HMAC-SHA256(seed, bigEndian(counter)).
func (r *DeterministicReader) refill() {
	mac := hmac.New(sha256.New, r.seed)

	var ctrBytes [8]byte
	binary.BigEndian.PutUint64(ctrBytes[:], r.counter)
	mac.Write(ctrBytes[:])

	copy(r.buf[:], mac.Sum(nil))

	r.pos = 0
	r.counter++
}
