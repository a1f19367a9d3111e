// Package store provides durable client-side key-value storage for walletgg.
//
// It is the Go counterpart of a browser's local storage: a small string map
// that survives restarts and holds the session credential ("token",
// "username") and the finance profile. Implementations:
//   - FileKV via NewFileKV: plain JSON in <home>/storage.json
//   - FileKV via NewSealedKV: the same map sealed with a passphrase in
//     <home>/storage.sealed
//   - MemoryKV: process memory only
//
// All methods are concurrency-safe via internal locking. File writes go through
// a temp file and rename and use mode 0600.
package store
