package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletgg/internal/domain"
	"walletgg/internal/events"
	"walletgg/internal/services/servicetest"
	"walletgg/internal/services/session"
)

// loginAPI accepts alice/secret and rejects everything else with 400.
func loginAPI() http.Handler {
	mux := chi.NewRouter()
	mux.Post("/accounts/login/", func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "alice" || req.Password != "secret" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"non_field_errors":["Unable to log in with provided credentials."]}`))
			return
		}
		_, _ = w.Write([]byte(`{"key":"abc123"}`))
	})
	mux.Post("/accounts/signup/", func(w http.ResponseWriter, r *http.Request) {
		var req domain.SignUpRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password1 == "" || req.Password1 != req.Password2 {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"password2":["The two password fields didn't match."]}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"key":"ignored"}`))
	})
	return mux
}

type fixture struct {
	svc    *session.Service
	kv     *servicetest.KV
	notes  *servicetest.Notifications
	events []domain.Event
	calls  *servicetest.Calls
}

func newFixture(t *testing.T, seed map[string]string) *fixture {
	t.Helper()
	srv, calls := servicetest.Server(t, loginAPI())
	anon, _ := servicetest.Clients(t, srv, nil)

	f := &fixture{kv: servicetest.NewKV(seed), notes: &servicetest.Notifications{}, calls: calls}
	bus := events.NewBus()
	bus.SubscribeAll(func(e domain.Event) { f.events = append(f.events, e) })
	f.svc = session.New(anon, f.kv, bus, f.notes, servicetest.Logger())
	return f
}

func TestRestore_FromStorageWithoutNetwork(t *testing.T) {
	f := newFixture(t, map[string]string{"token": "abc123", "username": "alice"})
	assert.False(t, f.svc.IsAuthenticated())

	f.svc.Restore()

	assert.True(t, f.svc.IsAuthenticated())
	assert.Equal(t, domain.Username("alice"), f.svc.Username())
	cred, ok := f.svc.Credential()
	assert.True(t, ok)
	assert.Equal(t, "Token abc123", cred.AuthorizationHeader())
	assert.Zero(t, f.calls.Total())
}

func TestRestore_EmptyStorageIsAnonymous(t *testing.T) {
	f := newFixture(t, nil)
	f.svc.Restore()
	assert.False(t, f.svc.IsAuthenticated())
	assert.Empty(t, f.svc.Username())
}

func TestLogInThenLogOut(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	require.NoError(t, f.svc.LogIn(ctx, domain.LoginRequest{Username: "alice", Password: "secret"}))
	assert.True(t, f.svc.IsAuthenticated())
	assert.Equal(t, domain.Username("alice"), f.svc.Username())
	assert.Equal(t, map[string]string{"token": "abc123", "username": "alice"}, f.kv.Snapshot())

	require.NoError(t, f.svc.LogOut())
	assert.False(t, f.svc.IsAuthenticated())
	assert.Empty(t, f.svc.Username())
	assert.Empty(t, f.kv.Snapshot(), "no credential may survive log-out")

	require.Len(t, f.events, 2)
	assert.Equal(t, domain.EventLoggedIn, f.events[0].Kind)
	assert.Equal(t, domain.Event{Kind: domain.EventSessionCleared, Username: "alice"}, f.events[1])
}

func TestLogIn_RejectedLeavesStateUntouched(t *testing.T) {
	f := newFixture(t, nil)

	err := f.svc.LogIn(context.Background(), domain.LoginRequest{Username: "bob", Password: "wrong"})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindServer))
	assert.Equal(t, http.StatusBadRequest, domain.StatusOf(err))

	assert.False(t, f.svc.IsAuthenticated())
	_, ok := f.svc.Credential()
	assert.False(t, ok)
	assert.Zero(t, f.kv.Puts, "a failed log-in must not write storage")
	assert.Empty(t, f.kv.Snapshot())
	assert.Empty(t, f.events)
}

func TestLogIn_FailureKeepsPreviousSession(t *testing.T) {
	f := newFixture(t, map[string]string{"token": "old", "username": "carol"})
	f.svc.Restore()
	before := f.kv.Snapshot()

	err := f.svc.LogIn(context.Background(), domain.LoginRequest{Username: "bob", Password: "wrong"})
	require.Error(t, err)

	cred, ok := f.svc.Credential()
	assert.True(t, ok)
	assert.Equal(t, domain.Credential{Token: "old", Username: "carol"}, cred)
	assert.Equal(t, before, f.kv.Snapshot())
}

func TestLogIn_StorageFailureLeavesMemoryAnonymous(t *testing.T) {
	f := newFixture(t, nil)
	f.kv.FailPut = true

	err := f.svc.LogIn(context.Background(), domain.LoginRequest{Username: "alice", Password: "secret"})
	require.ErrorIs(t, err, servicetest.ErrInjected)
	assert.False(t, f.svc.IsAuthenticated())
	assert.Empty(t, f.events)
}

func TestSignUp_Success(t *testing.T) {
	f := newFixture(t, nil)

	err := f.svc.SignUp(context.Background(), domain.SignUpRequest{
		Username: "dave", Password1: "pw12345!", Password2: "pw12345!", Nickname: "Dave",
	})
	require.NoError(t, err)

	assert.False(t, f.svc.IsAuthenticated(), "sign-up must not log in")
	assert.Equal(t, []domain.Level{domain.LevelSuccess}, f.notes.Levels())
	require.Len(t, f.events, 1)
	assert.Equal(t, domain.EventSignedUp, f.events[0].Kind)
	assert.Equal(t, 1, f.calls.Count("POST /accounts/signup/"))
}

func TestSignUp_FailureNotifies(t *testing.T) {
	f := newFixture(t, nil)

	err := f.svc.SignUp(context.Background(), domain.SignUpRequest{
		Username: "dave", Password1: "a", Password2: "b",
	})
	assert.True(t, domain.IsKind(err, domain.KindServer))
	assert.Equal(t, []domain.Level{domain.LevelError}, f.notes.Levels())
	assert.Empty(t, f.events)
	assert.Zero(t, f.kv.Puts)
}

func TestLogOut_WhenAnonymous(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.svc.LogOut())
	require.Len(t, f.events, 1)
	assert.Equal(t, domain.EventSessionCleared, f.events[0].Kind)
}
