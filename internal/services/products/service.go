package products

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"walletgg/internal/domain"
)

const (
	pathProducts = "/products/deposit-products/"
	pathImport   = "/products/save-deposit-products/"
	pathStatus   = "/products/check-status/"
	pathLiked    = "/products/liked-list/"
	pathJoined   = "/products/joined-list/"
)

func productPath(id domain.ProductID) string {
	return fmt.Sprintf("%s%d/", pathProducts, id)
}

// toggleResponse is the body of the like and join endpoints.
type toggleResponse struct {
	IsLiked  *bool  `json:"is_liked"`
	IsJoined *bool  `json:"is_joined"`
	Message  string `json:"message"`
}

// Service owns the catalog listing, the detail slot and the personal lists.
type Service struct {
	anon    domain.APIClient
	auth    domain.APIClient
	session domain.CredentialProvider
	notify  domain.Notifier
	log     logrus.FieldLogger

	mu       sync.RWMutex
	filter   domain.ProductFilter
	products []domain.Product
	detail   *domain.Product
	liked    []domain.Product
	joined   []domain.Product
}

// New constructs the products store.
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
		log:     log.WithField("component", "products"),
	}
}

// FetchAll replaces the listing with the products matching f. The filter is
// remembered so that Import can refresh the same view.
func (s *Service) FetchAll(ctx context.Context, f domain.ProductFilter) error {
	var out []domain.Product
	if err := s.anon.Get(ctx, pathProducts, f.Query(), &out); err != nil {
		return s.readFailed(pathProducts, err)
	}
	if out == nil {
		out = []domain.Product{}
	}
	s.mu.Lock()
	s.filter = f
	s.products = out
	s.mu.Unlock()
	return nil
}

// FetchOne replaces the detail slot. When logged in the request carries the
// credential so the server can fill in the liked and joined flags.
func (s *Service) FetchOne(ctx context.Context, id domain.ProductID) error {
	path := productPath(id)
	client := s.anon
	if s.authenticated() {
		client = s.auth
	}
	var out domain.Product
	if err := client.Get(ctx, path, nil, &out); err != nil {
		return s.readFailed(path, err)
	}
	s.mu.Lock()
	s.detail = &out
	s.mu.Unlock()
	return nil
}

// Import asks the server to pull the catalog from its upstream sources, then
// refreshes the listing once.
func (s *Service) Import(ctx context.Context) error {
	if err := s.anon.Get(ctx, pathImport, nil, nil); err != nil {
		s.log.WithError(err).WithField("kind", domain.KindOf(err)).Error("import failed")
		s.notifyf(domain.LevelError, "Could not import products.")
		return fmt.Errorf("import products: %w", err)
	}
	s.notifyf(domain.LevelSuccess, "Products imported.")

	s.mu.RLock()
	f := s.filter
	s.mu.RUnlock()
	return s.FetchAll(ctx, f)
}

// Status reports how many products the server holds, by type.
func (s *Service) Status(ctx context.Context) (domain.CatalogStatus, error) {
	var out domain.CatalogStatus
	if err := s.anon.Get(ctx, pathStatus, nil, &out); err != nil {
		return domain.CatalogStatus{}, s.readFailed(pathStatus, err)
	}
	return out, nil
}

// Like toggles the product on the user's liked list and returns whether it is
// now liked. The liked list is refreshed once.
func (s *Service) Like(ctx context.Context, id domain.ProductID) (bool, error) {
	resp, err := s.toggle(ctx, "like", id)
	if err != nil {
		return false, err
	}
	liked := resp.IsLiked != nil && *resp.IsLiked
	s.mu.Lock()
	if s.detail != nil && s.detail.ID == id {
		s.detail.IsLiked = liked
	}
	s.mu.Unlock()
	return liked, s.FetchLiked(ctx)
}

// Join toggles the product on the user's joined list and returns whether it is
// now joined. The joined list is refreshed once.
func (s *Service) Join(ctx context.Context, id domain.ProductID) (bool, error) {
	resp, err := s.toggle(ctx, "join", id)
	if err != nil {
		return false, err
	}
	joined := resp.IsJoined != nil && *resp.IsJoined
	s.mu.Lock()
	if s.detail != nil && s.detail.ID == id {
		s.detail.IsJoined = joined
	}
	s.mu.Unlock()
	return joined, s.FetchJoined(ctx)
}

// FetchLiked replaces the liked list. It needs a credential.
func (s *Service) FetchLiked(ctx context.Context) error {
	out, err := s.fetchPersonal(ctx, pathLiked)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.liked = out
	s.mu.Unlock()
	return nil
}

// FetchJoined replaces the joined list. It needs a credential.
func (s *Service) FetchJoined(ctx context.Context) error {
	out, err := s.fetchPersonal(ctx, pathJoined)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.joined = out
	s.mu.Unlock()
	return nil
}

// Products returns a copy of the listing.
func (s *Service) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products)
}

// Product returns the detail slot.
func (s *Service) Product() (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.detail == nil {
		return domain.Product{}, false
	}
	return *s.detail, true
}

// Liked returns a copy of the liked list.
func (s *Service) Liked() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.liked)
}

// Joined returns a copy of the joined list.
func (s *Service) Joined() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.joined)
}

// Reset drops everything cached, including the remembered filter.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = domain.ProductFilter{}
	s.products = nil
	s.detail = nil
	s.liked = nil
	s.joined = nil
}

func (s *Service) toggle(ctx context.Context, action string, id domain.ProductID) (toggleResponse, error) {
	var resp toggleResponse
	if !s.authenticated() {
		s.notifyf(domain.LevelWarning, "Please log in first.")
		return resp, fmt.Errorf("%s product %d: %w", action, id, domain.ErrNotAuthenticated)
	}
	if err := s.auth.Post(ctx, productPath(id)+action+"/", nil, &resp); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"product": id,
			"kind":    domain.KindOf(err),
			"status":  domain.StatusOf(err),
		}).Errorf("%s failed", action)
		s.notifyf(domain.LevelError, "Could not %s product %d.", action, id)
		return resp, fmt.Errorf("%s product %d: %w", action, id, err)
	}
	if resp.Message != "" {
		s.notifyf(domain.LevelSuccess, "%s", resp.Message)
	}
	return resp, nil
}

func (s *Service) fetchPersonal(ctx context.Context, path string) ([]domain.Product, error) {
	if !s.authenticated() {
		s.notifyf(domain.LevelWarning, "Please log in first.")
		return nil, fmt.Errorf("fetch %s: %w", path, domain.ErrNotAuthenticated)
	}
	var out []domain.Product
	if err := s.auth.Get(ctx, path, nil, &out); err != nil {
		return nil, s.readFailed(path, err)
	}
	if out == nil {
		out = []domain.Product{}
	}
	return out, nil
}

func (s *Service) authenticated() bool {
	_, ok := s.session.Credential()
	return ok
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

var _ domain.ProductService = (*Service)(nil)
