package mockapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"walletgg/internal/domain"
)

type account struct {
	username domain.Username
	hash     []byte
	nickname string
	email    string
}

// Server holds the mock's state. The zero value is not usable; call New.
type Server struct {
	log logrus.FieldLogger
	now func() time.Time

	mu          sync.RWMutex
	accounts    map[domain.Username]*account
	tokens      map[string]domain.Username
	articles    []*domain.Article
	nextArticle domain.ArticleID
	nextComment domain.CommentID
	products    []domain.Product
	liked       map[domain.Username]map[domain.ProductID]bool
	joined      map[domain.Username]map[domain.ProductID]bool
	gold        []domain.GoldPrice
	silver      []domain.GoldPrice
	videos      []domain.Video
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the access logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Server) { s.log = l }
}

// WithClock replaces time.Now for article timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithEmptyCatalog starts without products, so that the first listing or an
// explicit import loads them.
func WithEmptyCatalog() Option {
	return func(s *Server) { s.products = nil }
}

// New returns a Server seeded with sample market data and products.
func New(opts ...Option) *Server {
	s := &Server{
		log:      logrus.StandardLogger(),
		now:      time.Now,
		accounts: map[domain.Username]*account{},
		tokens:   map[string]domain.Username{},
		liked:    map[domain.Username]map[domain.ProductID]bool{},
		joined:   map[domain.Username]map[domain.ProductID]bool{},
		products: seedProducts(),
		gold:     seedGold(),
		silver:   seedSilver(),
		videos:   seedVideos(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.accessLog)
	r.Use(s.authenticate)

	r.Route("/accounts", func(r chi.Router) {
		r.Post("/signup/", s.signUp)
		r.Post("/login/", s.logIn)
	})

	r.Route("/articles", func(r chi.Router) {
		r.Get("/articles/", s.listArticles)
		r.With(requireUser).Post("/articles/", s.createArticle)
		r.Get("/articles/{id}/", s.getArticle)
		r.With(requireUser).Put("/articles/{id}/", s.updateArticle)
		r.With(requireUser).Delete("/articles/{id}/", s.deleteArticle)
		r.With(requireUser).Post("/articles/{id}/comments/", s.createComment)
		r.With(requireUser).Delete("/comments/{id}/", s.deleteComment)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/deposit-products/", s.listProducts)
		r.Get("/deposit-products/{id}/", s.getProduct)
		r.With(requireUser).Post("/deposit-products/{id}/like/", s.toggleLike)
		r.With(requireUser).Post("/deposit-products/{id}/join/", s.toggleJoin)
		r.With(requireUser).Get("/liked-list/", s.likedList)
		r.With(requireUser).Get("/joined-list/", s.joinedList)
		r.Get("/save-deposit-products/", s.importProducts)
		r.Get("/check-status/", s.catalogStatus)
	})

	r.Route("/services", func(r chi.Router) {
		r.Get("/gold-silver/", s.goldSilver)
		r.Get("/youtube/", s.youtube)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not found.")
	})
	return r
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"remote":     r.RemoteAddr,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"duration":   time.Since(start).Round(time.Microsecond),
			"request_id": r.Header.Get("X-Request-ID"),
		}).Info("request")
	})
}

type userKey struct{}

// authenticate resolves a "Token <key>" header into the request context. An
// unknown token is rejected outright, the way token authentication does.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if h == "" {
			next.ServeHTTP(w, r)
			return
		}
		scheme, key, ok := strings.Cut(h, " ")
		if !ok || scheme != domain.AuthScheme {
			next.ServeHTTP(w, r)
			return
		}
		s.mu.RLock()
		user, found := s.tokens[key]
		s.mu.RUnlock()
		if !found {
			writeDetail(w, http.StatusUnauthorized, "Invalid token.")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey{}, user)))
	})
}

func requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := userFrom(r); !ok {
			writeDetail(w, http.StatusUnauthorized, "Authentication credentials were not provided.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func userFrom(r *http.Request) (domain.Username, bool) {
	u, ok := r.Context().Value(userKey{}).(domain.Username)
	return u, ok
}

func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(v)
}
