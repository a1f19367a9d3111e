package articles_test

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletgg/internal/domain"
	"walletgg/internal/services/articles"
	"walletgg/internal/services/servicetest"
)

// board is a tiny in-memory article endpoint.
type board struct {
	mu       sync.Mutex
	articles []map[string]any
	fail     bool
	empty    bool
	auth     []string
}

func (b *board) find(id int) (int, bool) {
	for i, a := range b.articles {
		if a["id"] == id {
			return i, true
		}
	}
	return 0, false
}

func (b *board) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fail {
		http.Error(w, `{"detail":"boom"}`, http.StatusInternalServerError)
		return
	}
	if b.empty {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet {
		b.auth = append(b.auth, r.Header.Get("Authorization"))
	}
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/articles/articles/":
		_ = json.NewEncoder(w).Encode(b.articles)
	case r.Method == http.MethodGet && r.URL.Path == "/articles/articles/1/":
		i, ok := b.find(1)
		if !ok {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(b.articles[i])
	case r.Method == http.MethodPost && r.URL.Path == "/articles/articles/":
		var p domain.ArticlePayload
		_ = json.NewDecoder(r.Body).Decode(&p)
		a := map[string]any{"id": len(b.articles) + 1, "user": "alice", "title": p.Title, "content": p.Content}
		b.articles = append(b.articles, a)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(a)
	case r.Method == http.MethodPut && r.URL.Path == "/articles/articles/1/":
		var p domain.ArticlePayload
		_ = json.NewDecoder(r.Body).Decode(&p)
		i, _ := b.find(1)
		b.articles[i]["title"] = p.Title
		b.articles[i]["content"] = p.Content
		_ = json.NewEncoder(w).Encode(b.articles[i])
	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/articles/articles/"):
		id, _ := strconv.Atoi(strings.Trim(strings.TrimPrefix(r.URL.Path, "/articles/articles/"), "/"))
		i, ok := b.find(id)
		if !ok {
			http.NotFound(w, r)
			return
		}
		b.articles = append(b.articles[:i], b.articles[i+1:]...)
		w.WriteHeader(http.StatusNoContent)
	case r.Method == http.MethodPost && r.URL.Path == "/articles/articles/1/comments/":
		var p domain.CommentPayload
		_ = json.NewDecoder(r.Body).Decode(&p)
		i, _ := b.find(1)
		b.articles[i]["comments"] = []map[string]any{{"id": 7, "article": 1, "content": p.Content}}
		w.WriteHeader(http.StatusCreated)
	case r.Method == http.MethodDelete && r.URL.Path == "/articles/comments/7/":
		i, _ := b.find(1)
		b.articles[i]["comments"] = []map[string]any{}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.NotFound(w, r)
	}
}

func (b *board) setFail(v bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fail = v
}

func (b *board) setEmpty(v bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.empty = v
}

func (b *board) authHeaders() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.auth...)
}

func seeded() *board {
	return &board{articles: []map[string]any{
		{"id": 1, "user": "alice", "title": "first", "content": "hello"},
	}}
}

func newService(t *testing.T, b *board, token string) (*articles.Service, *servicetest.Calls, *servicetest.Notifications) {
	t.Helper()
	srv, calls := servicetest.Server(t, b)
	creds := servicetest.Creds{Token: token}
	anon, auth := servicetest.Clients(t, srv, creds)
	notes := &servicetest.Notifications{}
	return articles.New(anon, auth, creds, notes, servicetest.Logger()), calls, notes
}

func TestFetchAll(t *testing.T) {
	svc, _, _ := newService(t, seeded(), "")

	require.NoError(t, svc.FetchAll(context.Background()))
	got := svc.Articles()
	require.Len(t, got, 1)
	assert.Equal(t, "first", got[0].Title)
	assert.Equal(t, domain.Username("alice"), got[0].User)
}

func TestFetchAll_FailureKeepsCache(t *testing.T) {
	b := seeded()
	svc, _, _ := newService(t, b, "")
	ctx := context.Background()
	require.NoError(t, svc.FetchAll(ctx))
	before := svc.Articles()

	b.setFail(true)
	err := svc.FetchAll(ctx)
	assert.True(t, domain.IsKind(err, domain.KindServer))
	assert.Equal(t, before, svc.Articles())
}

func TestFetch_EmptyBodyKeepsCache(t *testing.T) {
	b := seeded()
	svc, _, _ := newService(t, b, "")
	ctx := context.Background()
	require.NoError(t, svc.FetchAll(ctx))
	require.NoError(t, svc.FetchOne(ctx, 1))
	list := svc.Articles()
	detail, _ := svc.Article()

	b.setEmpty(true)
	assert.True(t, domain.IsKind(svc.FetchAll(ctx), domain.KindDecode))
	assert.True(t, domain.IsKind(svc.FetchOne(ctx, 1), domain.KindDecode))

	assert.Equal(t, list, svc.Articles())
	got, ok := svc.Article()
	require.True(t, ok)
	assert.Equal(t, detail, got)
}

func TestFetchOne(t *testing.T) {
	svc, _, _ := newService(t, seeded(), "")

	_, ok := svc.Article()
	assert.False(t, ok)

	require.NoError(t, svc.FetchOne(context.Background(), 1))
	a, ok := svc.Article()
	require.True(t, ok)
	assert.Equal(t, domain.ArticleID(1), a.ID)
}

func TestCreate_AnonymousSendsNothing(t *testing.T) {
	svc, calls, notes := newService(t, seeded(), "")

	err := svc.Create(context.Background(), domain.ArticlePayload{Title: "t", Content: "c"})
	require.ErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.Zero(t, calls.Total())
	assert.Empty(t, svc.Articles())
	assert.Equal(t, []domain.Level{domain.LevelWarning}, notes.Levels())
}

func TestCreate_RefetchesOnce(t *testing.T) {
	b := seeded()
	svc, calls, _ := newService(t, b, "abc123")

	require.NoError(t, svc.Create(context.Background(), domain.ArticlePayload{Title: "second", Content: "c"}))

	assert.Equal(t, 1, calls.Count("POST /articles/articles/"))
	assert.Equal(t, 1, calls.Count("GET /articles/articles/"))
	assert.Equal(t, []string{"Token abc123"}, b.authHeaders())

	got := svc.Articles()
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[1].Title)
}

func TestCreate_ServerErrorSkipsRefetch(t *testing.T) {
	b := seeded()
	b.fail = true
	svc, calls, notes := newService(t, b, "abc123")

	err := svc.Create(context.Background(), domain.ArticlePayload{Title: "x"})
	assert.True(t, domain.IsKind(err, domain.KindServer))
	assert.Zero(t, calls.Count("GET /articles/articles/"))
	assert.Equal(t, []domain.Level{domain.LevelError}, notes.Levels())
}

func TestAddComment_RefreshesDetail(t *testing.T) {
	svc, calls, _ := newService(t, seeded(), "abc123")

	require.NoError(t, svc.AddComment(context.Background(), 1, domain.CommentPayload{Content: "nice"}))
	assert.Equal(t, 1, calls.Count("GET /articles/articles/1/"))

	a, ok := svc.Article()
	require.True(t, ok)
	require.Len(t, a.Comments, 1)
	assert.Equal(t, "nice", a.Comments[0].Content)
}

func TestWrites_AnonymousSendNothing(t *testing.T) {
	svc, calls, notes := newService(t, seeded(), "")
	ctx := context.Background()

	for name, write := range map[string]func() error{
		"update": func() error {
			return svc.Update(ctx, 1, domain.ArticlePayload{Title: "t", Content: "c"})
		},
		"delete":         func() error { return svc.Delete(ctx, 1) },
		"delete comment": func() error { return svc.DeleteComment(ctx, 1, 7) },
	} {
		require.ErrorIs(t, write(), domain.ErrNotAuthenticated, name)
	}
	assert.Zero(t, calls.Total())
	assert.Empty(t, svc.Articles())
	assert.Equal(t, []domain.Level{domain.LevelWarning, domain.LevelWarning, domain.LevelWarning}, notes.Levels())
}

func TestUpdate_RefetchesOnce(t *testing.T) {
	b := seeded()
	svc, calls, _ := newService(t, b, "abc123")

	require.NoError(t, svc.Update(context.Background(), 1, domain.ArticlePayload{Title: "edited", Content: "c2"}))

	assert.Equal(t, 1, calls.Count("PUT /articles/articles/1/"))
	assert.Equal(t, 1, calls.Count("GET /articles/articles/"))
	assert.Equal(t, []string{"Token abc123"}, b.authHeaders())

	got := svc.Articles()
	require.Len(t, got, 1)
	assert.Equal(t, "edited", got[0].Title)
	assert.Equal(t, "c2", got[0].Content)
}

func TestDelete_RefetchesAndClearsDetail(t *testing.T) {
	b := seeded()
	svc, calls, _ := newService(t, b, "abc123")
	ctx := context.Background()
	require.NoError(t, svc.FetchAll(ctx))
	require.NoError(t, svc.FetchOne(ctx, 1))

	require.NoError(t, svc.Delete(ctx, 1))

	assert.Equal(t, 1, calls.Count("DELETE /articles/articles/1/"))
	assert.Equal(t, 2, calls.Count("GET /articles/articles/"))
	assert.Empty(t, svc.Articles())
	_, ok := svc.Article()
	assert.False(t, ok)
}

func TestDelete_KeepsOtherDetail(t *testing.T) {
	b := seeded()
	b.articles = append(b.articles, map[string]any{"id": 2, "user": "bob", "title": "second", "content": "c"})
	svc, _, _ := newService(t, b, "abc123")
	ctx := context.Background()
	require.NoError(t, svc.FetchOne(ctx, 1))

	require.NoError(t, svc.Delete(ctx, 2))

	a, ok := svc.Article()
	require.True(t, ok)
	assert.Equal(t, domain.ArticleID(1), a.ID)
	got := svc.Articles()
	require.Len(t, got, 1)
	assert.Equal(t, domain.ArticleID(1), got[0].ID)
}

func TestDeleteComment_RefreshesDetail(t *testing.T) {
	b := seeded()
	svc, calls, _ := newService(t, b, "abc123")
	ctx := context.Background()
	require.NoError(t, svc.AddComment(ctx, 1, domain.CommentPayload{Content: "nice"}))

	require.NoError(t, svc.DeleteComment(ctx, 1, 7))

	assert.Equal(t, 1, calls.Count("DELETE /articles/comments/7/"))
	assert.Equal(t, 2, calls.Count("GET /articles/articles/1/"))
	assert.Zero(t, calls.Count("GET /articles/articles/"))
	a, ok := svc.Article()
	require.True(t, ok)
	assert.Empty(t, a.Comments)
}

func TestReset(t *testing.T) {
	svc, _, _ := newService(t, seeded(), "")
	ctx := context.Background()
	require.NoError(t, svc.FetchAll(ctx))
	require.NoError(t, svc.FetchOne(ctx, 1))

	svc.Reset()
	assert.Empty(t, svc.Articles())
	_, ok := svc.Article()
	assert.False(t, ok)
}
