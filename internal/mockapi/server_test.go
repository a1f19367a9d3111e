package mockapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletgg/internal/domain"
	"walletgg/internal/mockapi"
)

type client struct {
	t     *testing.T
	srv   *httptest.Server
	token string
}

func newClient(t *testing.T, opts ...mockapi.Option) *client {
	t.Helper()
	l, _ := test.NewNullLogger()
	srv := httptest.NewServer(mockapi.New(append(opts, mockapi.WithLogger(l))...).Handler())
	t.Cleanup(srv.Close)
	return &client{t: t, srv: srv}
}

func (c *client) do(method, path string, in, out any) int {
	c.t.Helper()
	var body bytes.Buffer
	if in != nil {
		require.NoError(c.t, json.NewEncoder(&body).Encode(in))
	}
	req, err := http.NewRequest(method, c.srv.URL+path, &body)
	require.NoError(c.t, err)
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode/100 == 2 {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func (c *client) register(user, pass string) {
	c.t.Helper()
	require.Equal(c.t, http.StatusCreated, c.do("POST", "/accounts/signup/", domain.SignUpRequest{
		Username: domain.Username(user), Password1: pass, Password2: pass,
	}, nil))
	var resp domain.LoginResponse
	require.Equal(c.t, http.StatusOK, c.do("POST", "/accounts/login/", domain.LoginRequest{
		Username: domain.Username(user), Password: pass,
	}, &resp))
	c.token = resp.Key
}

func TestAccounts(t *testing.T) {
	c := newClient(t)

	assert.Equal(t, http.StatusBadRequest, c.do("POST", "/accounts/signup/", domain.SignUpRequest{
		Username: "bob", Password1: "a", Password2: "b",
	}, nil))

	c.register("alice", "secret")
	assert.NotEmpty(t, c.token)

	assert.Equal(t, http.StatusBadRequest, c.do("POST", "/accounts/signup/", domain.SignUpRequest{
		Username: "alice", Password1: "x", Password2: "x",
	}, nil), "duplicate username")
	assert.Equal(t, http.StatusBadRequest, c.do("POST", "/accounts/login/", domain.LoginRequest{
		Username: "alice", Password: "wrong",
	}, nil))
}

func TestArticles_RequireToken(t *testing.T) {
	c := newClient(t)
	assert.Equal(t, http.StatusUnauthorized, c.do("POST", "/articles/articles/", domain.ArticlePayload{Title: "t"}, nil))

	c.token = "forged"
	assert.Equal(t, http.StatusUnauthorized, c.do("GET", "/articles/articles/", nil, nil))
}

func TestArticles_Lifecycle(t *testing.T) {
	c := newClient(t)
	c.register("alice", "secret")

	var a domain.Article
	require.Equal(t, http.StatusCreated, c.do("POST", "/articles/articles/", domain.ArticlePayload{Title: "hello", Content: "world"}, &a))
	assert.Equal(t, domain.Username("alice"), a.User)

	require.Equal(t, http.StatusCreated, c.do("POST", "/articles/articles/1/comments/", domain.CommentPayload{Content: "first"}, nil))

	var got domain.Article
	require.Equal(t, http.StatusOK, c.do("GET", "/articles/articles/1/", nil, &got))
	require.Len(t, got.Comments, 1)

	other := &client{t: t, srv: c.srv}
	other.register("mallory", "pw")
	assert.Equal(t, http.StatusForbidden, other.do("DELETE", "/articles/articles/1/", nil, nil))
	assert.Equal(t, http.StatusForbidden, other.do("DELETE", "/articles/comments/1/", nil, nil))

	assert.Equal(t, http.StatusNoContent, c.do("DELETE", "/articles/comments/1/", nil, nil))
	assert.Equal(t, http.StatusOK, c.do("PUT", "/articles/articles/1/", domain.ArticlePayload{Title: "edited"}, nil))
	assert.Equal(t, http.StatusNoContent, c.do("DELETE", "/articles/articles/1/", nil, nil))

	var list []domain.Article
	require.Equal(t, http.StatusOK, c.do("GET", "/articles/articles/", nil, &list))
	assert.Empty(t, list)
}

func TestProducts_FilterAndSort(t *testing.T) {
	c := newClient(t)

	var loans []domain.Product
	require.Equal(t, http.StatusOK, c.do("GET", "/products/deposit-products/?type=loan&sort=top_rate", nil, &loans))
	require.Len(t, loans, 3)
	for _, p := range loans {
		assert.True(t, p.Type.IsLoan())
	}
	assert.Equal(t, domain.ProductTypeRent, loans[0].Type, "lowest base rate first")

	var deposits []domain.Product
	require.Equal(t, http.StatusOK, c.do("GET", "/products/deposit-products/?type=deposit&term=24", nil, &deposits))
	require.Len(t, deposits, 1)
	assert.Equal(t, "국민은행", deposits[0].Company)
}

func TestProducts_EmptyCatalogLoadsOnFirstList(t *testing.T) {
	c := newClient(t, mockapi.WithEmptyCatalog())

	var st domain.CatalogStatus
	require.Equal(t, http.StatusOK, c.do("GET", "/products/check-status/", nil, &st))
	assert.Zero(t, st.TotalProducts)

	var all []domain.Product
	require.Equal(t, http.StatusOK, c.do("GET", "/products/deposit-products/", nil, &all))
	assert.NotEmpty(t, all)
}

func TestProducts_LikeToggle(t *testing.T) {
	c := newClient(t)
	c.register("alice", "secret")

	var resp map[string]any
	require.Equal(t, http.StatusOK, c.do("POST", "/products/deposit-products/1/like/", nil, &resp))
	assert.Equal(t, true, resp["is_liked"])

	var p map[string]any
	require.Equal(t, http.StatusOK, c.do("GET", "/products/deposit-products/1/", nil, &p))
	assert.Equal(t, true, p["is_liked"])
	assert.Equal(t, false, p["is_joined"])

	var liked []domain.Product
	require.Equal(t, http.StatusOK, c.do("GET", "/products/liked-list/", nil, &liked))
	assert.Len(t, liked, 1)
}

func TestServices(t *testing.T) {
	c := newClient(t)

	var gs map[string][]domain.GoldPrice
	require.Equal(t, http.StatusOK, c.do("GET", "/services/gold-silver/", nil, &gs))
	assert.NotEmpty(t, gs["gold"])
	assert.NotEmpty(t, gs["silver"])

	var yt struct {
		Items []domain.Video `json:"items"`
	}
	require.Equal(t, http.StatusOK, c.do("GET", "/services/youtube/?keyword=etf", nil, &yt))
	require.Len(t, yt.Items, 1)
	assert.Equal(t, "g6H7i8J9k0L", yt.Items[0].ID)
}
