package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletgg/internal/crypto"
)

var fastParams = crypto.ScryptParams{N: 1 << 10, R: 8, P: 1}

func TestSeal_OpenRoundTrip(t *testing.T) {
	sealed, err := crypto.SealWith(fastParams, "hunter2", []byte(`{"token":"abc123"}`))
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "abc123")

	pt, err := crypto.Open("hunter2", sealed)
	require.NoError(t, err)
	assert.Equal(t, `{"token":"abc123"}`, string(pt))
}

func TestOpen_WrongPassphrase(t *testing.T) {
	sealed, err := crypto.SealWith(fastParams, "right", []byte("secret"))
	require.NoError(t, err)

	_, err = crypto.Open("wrong", sealed)
	assert.ErrorIs(t, err, crypto.ErrWrongPassphrase)
}

func TestSeal_FreshSaltEachTime(t *testing.T) {
	a, err := crypto.SealWith(fastParams, "p", []byte("same"))
	require.NoError(t, err)
	b, err := crypto.SealWith(fastParams, "p", []byte("same"))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestOpen_RejectsFutureVersion(t *testing.T) {
	_, err := crypto.Open("p", []byte(`{"v":99}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestFingerprint(t *testing.T) {
	fp := crypto.Fingerprint([]byte("abc123"))
	assert.Len(t, fp, 20)
	assert.Equal(t, fp, crypto.Fingerprint([]byte("abc123")))
	assert.NotEqual(t, fp, crypto.Fingerprint([]byte("abc124")))
	assert.Empty(t, crypto.Fingerprint(nil))
}

func TestWipe(t *testing.T) {
	b := []byte("sensitive")
	crypto.Wipe(b)
	assert.Equal(t, make([]byte, len("sensitive")), b)
}
