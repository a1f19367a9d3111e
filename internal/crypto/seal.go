package crypto

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// sealFormatVersion is the current version of the sealed blob stored on disk.
const sealFormatVersion = 1

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// ciphertext has been modified.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted storage")

// blob is the on-disk JSON structure holding the ciphertext and KDF parameters.
type blob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// ScryptParams are the scrypt cost parameters used by Seal.
type ScryptParams struct{ N, R, P int }

// DefaultScryptParams is the interactive-login cost recommended by scrypt.
var DefaultScryptParams = ScryptParams{N: 1 << 15, R: 8, P: 1}

// Seal derives a key from passphrase and seals plaintext into a JSON blob.
func Seal(passphrase string, plaintext []byte) ([]byte, error) {
	return SealWith(DefaultScryptParams, passphrase, plaintext)
}

// SealWith is Seal with explicit scrypt parameters.
func SealWith(params ScryptParams, passphrase string, plaintext []byte) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(passphrase), salt[:], params.N, params.R, params.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; the salt makes every key unique
	ct := aead.Seal(nil, nonce[:], plaintext, salt[:])

	return json.Marshal(blob{
		V:      sealFormatVersion,
		Salt:   salt[:],
		N:      params.N,
		R:      params.R,
		P:      params.P,
		Cipher: ct,
	})
}

// Open reverses Seal.
func Open(passphrase string, sealed []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(sealed, &bl); err != nil {
		return nil, fmt.Errorf("decode sealed blob: %w", err)
	}
	if bl.V > sealFormatVersion {
		return nil, fmt.Errorf("unsupported sealed blob version %d", bl.V)
	}

	key, err := scrypt.Key([]byte(passphrase), bl.Salt, bl.N, bl.R, bl.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	defer Wipe(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], bl.Cipher, bl.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

// Wipe zeroes b in place. Go gives no guarantee that copies made elsewhere
// are gone, so this only narrows how long a key stays in memory.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	runtime.KeepAlive(&b)
}
