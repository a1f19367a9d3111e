// Package servicetest holds fakes shared by the service tests.
package servicetest

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"walletgg/internal/api"
	"walletgg/internal/domain"
	"walletgg/internal/store"
)

// Notifications records everything sent to it.
type Notifications struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (n *Notifications) Notify(msg domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
}

// All returns a copy of the recorded notifications.
func (n *Notifications) All() []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]domain.Notification(nil), n.sent...)
}

// Levels returns the level of each recorded notification.
func (n *Notifications) Levels() []domain.Level {
	var out []domain.Level
	for _, m := range n.All() {
		out = append(out, m.Level)
	}
	return out
}

// KV wraps a MemoryKV, counts writes and can be told to fail them.
type KV struct {
	*store.MemoryKV

	mu      sync.Mutex
	Puts    int
	Deletes int
	FailPut bool
}

// NewKV returns a KV seeded with seed.
func NewKV(seed map[string]string) *KV {
	return &KV{MemoryKV: store.NewMemoryKV(seed)}
}

// ErrInjected is returned by a KV configured to fail.
var ErrInjected = errors.New("injected storage failure")

func (k *KV) Put(entries map[string]string) error {
	k.mu.Lock()
	k.Puts++
	fail := k.FailPut
	k.mu.Unlock()
	if fail {
		return ErrInjected
	}
	return k.MemoryKV.Put(entries)
}

func (k *KV) Delete(keys ...string) error {
	k.mu.Lock()
	k.Deletes++
	k.mu.Unlock()
	return k.MemoryKV.Delete(keys...)
}

// Creds is a fixed CredentialProvider.
type Creds struct{ Token string }

func (c Creds) Credential() (domain.Credential, bool) {
	cred := domain.Credential{Token: c.Token, Username: "alice"}
	return cred, cred.Valid()
}

// Calls counts requests per "METHOD path".
type Calls struct {
	mu sync.Mutex
	n  map[string]int
}

func (c *Calls) record(r *http.Request) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.n == nil {
		c.n = map[string]int{}
	}
	c.n[r.Method+" "+r.URL.Path]++
}

// Count returns how often key was requested.
func (c *Calls) Count(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n[key]
}

// Total returns the number of requests seen.
func (c *Calls) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, v := range c.n {
		total += v
	}
	return total
}

// Server starts h behind httptest, counting requests.
func Server(t *testing.T, h http.Handler) (*httptest.Server, *Calls) {
	t.Helper()
	calls := &Calls{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.record(r)
		h.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

// Clients returns the anonymous and credential-aware clients for srv.
func Clients(t *testing.T, srv *httptest.Server, p domain.CredentialProvider) (anon, auth *api.Client) {
	t.Helper()
	anon, auth, err := api.NewClients(srv.URL, p, api.WithLogger(Logger()))
	require.NoError(t, err)
	return anon, auth
}

// Logger returns a logger that keeps output out of test logs.
func Logger() *logrus.Logger {
	l, _ := test.NewNullLogger()
	return l
}
