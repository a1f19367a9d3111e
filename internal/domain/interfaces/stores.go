package interfaces

// KeyValueStore is durable client-side storage that survives restarts.
// A missing key is not an error.
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	// Put writes every entry or none of them.
	Put(entries map[string]string) error
	// Delete removes the keys; absent keys are ignored.
	Delete(keys ...string) error
}
