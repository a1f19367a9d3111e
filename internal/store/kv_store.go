package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"walletgg/internal/crypto"
	"walletgg/internal/domain"
)

const (
	plainFilename  = "storage.json"
	sealedFilename = "storage.sealed"
)

// codec turns the key-value map into file bytes and back.
type codec interface {
	encode(entries map[string]string) ([]byte, error)
	decode(b []byte) (map[string]string, error)
}

type plainCodec struct{}

func (plainCodec) encode(entries map[string]string) ([]byte, error) {
	return json.MarshalIndent(entries, "", "  ")
}

func (plainCodec) decode(b []byte) (map[string]string, error) {
	entries := map[string]string{}
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

type sealedCodec struct{ passphrase string }

func (c sealedCodec) encode(entries map[string]string) ([]byte, error) {
	raw, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(raw)
	return crypto.Seal(c.passphrase, raw)
}

func (c sealedCodec) decode(b []byte) (map[string]string, error) {
	raw, err := crypto.Open(c.passphrase, b)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(raw)
	return plainCodec{}.decode(raw)
}

// FileKV persists client storage as a single file under dir. Every write
// rewrites the whole file through a temp file and rename, so a crash never
// leaves a half-written credential behind.
type FileKV struct {
	path  string
	codec codec
	mu    sync.Mutex
}

// NewFileKV returns a FileKV storing plain JSON in dir/storage.json.
func NewFileKV(dir string) *FileKV {
	return &FileKV{path: filepath.Join(dir, plainFilename), codec: plainCodec{}}
}

// NewSealedKV returns a FileKV whose file dir/storage.sealed is encrypted
// under passphrase.
func NewSealedKV(dir, passphrase string) *FileKV {
	return &FileKV{path: filepath.Join(dir, sealedFilename), codec: sealedCodec{passphrase: passphrase}}
}

// Path returns the backing file.
func (s *FileKV) Path() string { return s.path }

// Get returns the value stored under key.
func (s *FileKV) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := entries[key]
	return v, ok, nil
}

// Put writes all entries in a single file replacement.
func (s *FileKV) Put(entries map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return err
	}
	for k, v := range entries {
		current[k] = v
	}
	return s.save(current)
}

// Delete removes keys. The file is left untouched when none were present.
func (s *FileKV) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return err
	}
	changed := false
	for _, k := range keys {
		if _, ok := current[k]; ok {
			delete(current, k)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.save(current)
}

func (s *FileKV) load() (map[string]string, error) {
	b, err := readIfExists(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	if b == nil { // file didn't exist
		return map[string]string{}, nil
	}
	entries, err := s.codec.decode(b)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return entries, nil
}

func (s *FileKV) save(entries map[string]string) error {
	b, err := s.codec.encode(entries)
	if err != nil {
		return err
	}
	return replaceFile(s.path, b, 0o600)
}

// Compile-time assertion that FileKV implements domain.KeyValueStore.
var _ domain.KeyValueStore = (*FileKV)(nil)
