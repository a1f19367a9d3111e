// Package crypto exposes the minimal primitives used by walletgg.
//
// Contents
//
//   - Passphrase sealing of durable client storage (Seal, Open), using scrypt
//     for key derivation and ChaCha20-Poly1305 for authenticated encryption
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//   - Short fingerprints of tokens for display/logging (Fingerprint)
package crypto
