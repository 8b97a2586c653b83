package yaerrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/YaCodeDev/GoYaRSADemo/yaerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYaErrorFromString_Code(t *testing.T) {
	t.Parallel()

	err := yaerrors.FromString(yaerrors.CodeFileOpen, "open /public.der")

	require.NotNil(t, err)
	assert.Equal(t, yaerrors.CodeFileOpen, err.Code())
}

func TestYaErrorFromString_Error(t *testing.T) {
	t.Parallel()

	err := yaerrors.FromString(yaerrors.CodeFileOpen, "open /public.der")

	assert.Equal(t, "-0x0011 | open /public.der", err.Error())
}

func TestYaErrorFromError_Error(t *testing.T) {
	t.Parallel()

	err := yaerrors.FromError(yaerrors.CodeDecrypt, yaerrors.ErrTeapot, "decrypt")

	assert.Equal(t, "-0x0042 | decrypt: backend developer is a teapot", err.Error())
}

func TestYaError_Wrap(t *testing.T) {
	t.Parallel()

	err := yaerrors.FromString(yaerrors.CodeKeyParse, "bad tag").Wrap("parse public key")

	assert.Equal(t, "-0x0020 | parse public key -> bad tag", err.Error())
	assert.Equal(t, "parse public key", err.UnwrapLastError())
}

func TestYaErrorUnwrap_Works(t *testing.T) {
	t.Parallel()

	err := yaerrors.FromError(yaerrors.CodeSeed, yaerrors.ErrTeapot, "seed")

	assert.True(t, errors.Is(err, yaerrors.ErrTeapot))
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	t.Run("[Nil] ok", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, yaerrors.CodeOK, yaerrors.CodeOf(nil))
	})

	t.Run("[Coded] wrapped by fmt", func(t *testing.T) {
		t.Parallel()

		inner := yaerrors.FromString(yaerrors.CodeEncrypt, "encrypt")
		outer := fmt.Errorf("run: %w", inner)

		assert.Equal(t, yaerrors.CodeEncrypt, yaerrors.CodeOf(outer))
	})

	t.Run("[Plain] unknown", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, yaerrors.CodeUnknown, yaerrors.CodeOf(errors.New("plain")))
	})
}

func TestCode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "success", yaerrors.CodeOK.String())
	assert.Equal(
		t,
		"RSA - the private key operation failed",
		yaerrors.CodeDecrypt.String(),
	)
	assert.Equal(t, "UNKNOWN ERROR CODE (-0777)", yaerrors.Code(-0x777).String())
	assert.Equal(t, "UNKNOWN ERROR CODE (0005)", yaerrors.Code(5).String())
}

func TestYaError_ErrorFormatsSign(t *testing.T) {
	t.Parallel()

	tests := map[yaerrors.Code]string{
		yaerrors.CodeDecrypt: "-0x0042 | x",
		yaerrors.CodeOK:      "0x0000 | x",
		yaerrors.Code(5):     "0x0005 | x",
		yaerrors.CodeTeapot:  "-0x0418 | x",
	}

	for code, want := range tests {
		assert.Equal(t, want, yaerrors.FromString(code, "x").Error())
	}
}
