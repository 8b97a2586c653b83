package yarsa_test

import (
	"crypto/rand"
	"crypto/rsa"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const testKeyBits = 2048

var (
	sharedKeysOnce sync.Once
	sharedKeys     [2]*rsa.PrivateKey
	sharedKeysErr  error
)

// testKeys returns two distinct 2048-bit keys shared by the whole package.
func testKeys(t *testing.T) (*rsa.PrivateKey, *rsa.PrivateKey) {
	t.Helper()

	sharedKeysOnce.Do(func() {
		for i := range sharedKeys {
			sharedKeys[i], sharedKeysErr = rsa.GenerateKey(rand.Reader, testKeyBits)
			if sharedKeysErr != nil {
				return
			}
		}
	})

	require.NoError(t, sharedKeysErr, "failed to generate RSA keys")

	return sharedKeys[0], sharedKeys[1]
}
