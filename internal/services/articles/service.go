package articles

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"walletgg/internal/domain"
)

const pathArticles = "/articles/articles/"

func articlePath(id domain.ArticleID) string {
	return fmt.Sprintf("%s%d/", pathArticles, id)
}

func commentsPath(id domain.ArticleID) string {
	return fmt.Sprintf("%s%d/comments/", pathArticles, id)
}

func commentPath(id domain.CommentID) string {
	return fmt.Sprintf("/articles/comments/%d/", id)
}

// Service owns the article list and the article detail slot.
type Service struct {
	anon    domain.APIClient
	auth    domain.APIClient
	session domain.CredentialProvider
	notify  domain.Notifier
	log     logrus.FieldLogger

	mu       sync.RWMutex
	articles []domain.Article
	detail   *domain.Article
}

// New constructs the articles store. Reads go through anon, writes through
// auth; session is only consulted to refuse writes early.
func New(
	anon, auth domain.APIClient,
	session domain.CredentialProvider,
	notify domain.Notifier,
	log logrus.FieldLogger,
) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{
		anon:    anon,
		auth:    auth,
		session: session,
		notify:  notify,
		log:     log.WithField("component", "articles"),
	}
}

// FetchAll replaces the cached list. On failure the list is left as it was.
func (s *Service) FetchAll(ctx context.Context) error {
	var out []domain.Article
	if err := s.anon.Get(ctx, pathArticles, nil, &out); err != nil {
		return s.readFailed(pathArticles, err)
	}
	if out == nil {
		out = []domain.Article{}
	}
	s.mu.Lock()
	s.articles = out
	s.mu.Unlock()
	return nil
}

// FetchOne replaces the detail slot with article id.
func (s *Service) FetchOne(ctx context.Context, id domain.ArticleID) error {
	path := articlePath(id)
	var out domain.Article
	if err := s.anon.Get(ctx, path, nil, &out); err != nil {
		return s.readFailed(path, err)
	}
	s.mu.Lock()
	s.detail = &out
	s.mu.Unlock()
	return nil
}

// Create posts a new article and then refreshes the list once.
func (s *Service) Create(ctx context.Context, p domain.ArticlePayload) error {
	if err := s.write("create article", func() error {
		return s.auth.Post(ctx, pathArticles, p, nil)
	}); err != nil {
		return err
	}
	return s.FetchAll(ctx)
}

// Update replaces the title and content of article id and refreshes the list.
func (s *Service) Update(ctx context.Context, id domain.ArticleID, p domain.ArticlePayload) error {
	if err := s.write("update article", func() error {
		return s.auth.Put(ctx, articlePath(id), p, nil)
	}); err != nil {
		return err
	}
	return s.FetchAll(ctx)
}

// Delete removes article id and refreshes the list. The detail slot is
// cleared if it held that article.
func (s *Service) Delete(ctx context.Context, id domain.ArticleID) error {
	if err := s.write("delete article", func() error {
		return s.auth.Delete(ctx, articlePath(id))
	}); err != nil {
		return err
	}
	s.mu.Lock()
	if s.detail != nil && s.detail.ID == id {
		s.detail = nil
	}
	s.mu.Unlock()
	return s.FetchAll(ctx)
}

// AddComment posts a comment under article id and refreshes the detail slot.
func (s *Service) AddComment(ctx context.Context, id domain.ArticleID, p domain.CommentPayload) error {
	if err := s.write("add comment", func() error {
		return s.auth.Post(ctx, commentsPath(id), p, nil)
	}); err != nil {
		return err
	}
	return s.FetchOne(ctx, id)
}

// DeleteComment removes a comment and refreshes the detail slot of its article.
func (s *Service) DeleteComment(ctx context.Context, article domain.ArticleID, id domain.CommentID) error {
	if err := s.write("delete comment", func() error {
		return s.auth.Delete(ctx, commentPath(id))
	}); err != nil {
		return err
	}
	return s.FetchOne(ctx, article)
}

// Articles returns a copy of the cached list.
func (s *Service) Articles() []domain.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.articles)
}

// Article returns the detail slot.
func (s *Service) Article() (domain.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.detail == nil {
		return domain.Article{}, false
	}
	return *s.detail, true
}

// Reset drops everything cached.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles = nil
	s.detail = nil
}

// write refuses to send anything without a credential, then runs send.
func (s *Service) write(what string, send func() error) error {
	if _, ok := s.session.Credential(); !ok {
		s.notifyf(domain.LevelWarning, "Please log in first.")
		return fmt.Errorf("%s: %w", what, domain.ErrNotAuthenticated)
	}
	if err := send(); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"kind":   domain.KindOf(err),
			"status": domain.StatusOf(err),
		}).Errorf("%s failed", what)
		s.notifyf(domain.LevelError, "Could not %s.", what)
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}

func (s *Service) readFailed(path string, err error) error {
	s.log.WithError(err).WithFields(logrus.Fields{
		"path":   path,
		"kind":   domain.KindOf(err),
		"status": domain.StatusOf(err),
	}).Error("fetch failed")
	return fmt.Errorf("fetch %s: %w", path, err)
}

func (s *Service) notifyf(level domain.Level, format string, args ...any) {
	if s.notify != nil {
		s.notify.Notify(domain.Notification{Level: level, Message: fmt.Sprintf(format, args...)})
	}
}

var _ domain.ArticleService = (*Service)(nil)
