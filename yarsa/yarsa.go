package yarsa

import (
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/YaCodeDev/GoYaRSADemo/yaerrors"
)

// MaxMessageSize returns the longest plaintext a single block of public can
// carry with the given padding.
func MaxMessageSize(public *rsa.PublicKey, padding Padding) (int, yaerrors.Error) {
	if public == nil || public.N == nil {
		return 0, yaerrors.FromString(yaerrors.CodeBadInput, "[RSA] public key is nil")
	}

	overhead, ok := padding.overhead()
	if !ok {
		return 0, yaerrors.FromError(
			yaerrors.CodeBadInput,
			ErrUnknownPadding,
			fmt.Sprintf("[RSA] padding %d", padding),
		)
	}

	size := public.Size() - overhead
	if size <= 0 {
		return 0, yaerrors.FromString(
			yaerrors.CodeBadInput,
			fmt.Sprintf("[RSA] %d-byte modulus is too small for %s", public.Size(), padding),
		)
	}

	return size, nil
}

// Encrypt encrypts plaintext into exactly one RSA block with the public key.
// random feeds the padding, pass a reader from NewSeededReader or crypto/rand.Reader.
//
// Example:
//
//	ct, err := yarsa.Encrypt(drbg, pub, []byte("hello"), yarsa.PaddingOAEP)
//	if err != nil {
//	    fmt.Println(err.Code())
//	}
func Encrypt(
	random io.Reader,
	public *rsa.PublicKey,
	plaintext []byte,
	padding Padding,
) ([]byte, yaerrors.Error) {
	maxSize, yaerr := MaxMessageSize(public, padding)
	if yaerr != nil {
		return nil, yaerr.Wrap("[RSA] encrypt")
	}

	if len(plaintext) > maxSize {
		return nil, yaerrors.FromString(
			yaerrors.CodeBadInput,
			fmt.Sprintf(
				"[RSA] message of %d bytes exceeds %d-byte limit for %s",
				len(plaintext),
				maxSize,
				padding,
			),
		)
	}

	var (
		ciphertext []byte
		err        error
	)

	switch padding {
	case PaddingOAEP:
		ciphertext, err = rsa.EncryptOAEP(sha256.New(), random, public, plaintext, nil)
	case PaddingPKCS1v15:
		ciphertext, err = rsa.EncryptPKCS1v15(random, public, plaintext)
	}

	if err != nil {
		return nil, yaerrors.FromError(yaerrors.CodeEncrypt, err, "[RSA] encrypt")
	}

	return ciphertext, nil
}

// Decrypt decrypts a single RSA block with the private key.
// The recovered plaintext must fit into capacity bytes, a non-positive capacity
// disables the check. Any tampering with the block is reported as CodeDecrypt.
func Decrypt(
	random io.Reader,
	private *rsa.PrivateKey,
	ciphertext []byte,
	padding Padding,
	capacity int,
) ([]byte, yaerrors.Error) {
	if private == nil || private.N == nil {
		return nil, yaerrors.FromString(yaerrors.CodeBadInput, "[RSA] private key is nil")
	}

	blockSize := private.Size()
	if len(ciphertext) != blockSize {
		return nil, yaerrors.FromString(
			yaerrors.CodeBadInput,
			fmt.Sprintf(
				"[RSA] ciphertext is %d bytes, expected exactly %d",
				len(ciphertext),
				blockSize,
			),
		)
	}

	var (
		plaintext []byte
		err       error
	)

	switch padding {
	case PaddingOAEP:
		plaintext, err = rsa.DecryptOAEP(sha256.New(), random, private, ciphertext, nil)
	case PaddingPKCS1v15:
		plaintext, err = rsa.DecryptPKCS1v15(random, private, ciphertext)
	default:
		return nil, yaerrors.FromError(
			yaerrors.CodeBadInput,
			ErrUnknownPadding,
			fmt.Sprintf("[RSA] padding %d", padding),
		)
	}

	if err != nil {
		return nil, yaerrors.FromError(yaerrors.CodeDecrypt, err, "[RSA] decrypt")
	}

	if capacity > 0 && len(plaintext) > capacity {
		return nil, yaerrors.FromString(
			yaerrors.CodeOutputTooLarge,
			fmt.Sprintf(
				"[RSA] plaintext of %d bytes does not fit into %d-byte buffer",
				len(plaintext),
				capacity,
			),
		)
	}

	return plaintext, nil
}
