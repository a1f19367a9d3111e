package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"walletgg/internal/domain"
)

const (
	pathGoldSilver = "/services/gold-silver/"
	pathYouTube    = "/services/youtube/"
)

// Service owns the gold price series and the latest video search.
type Service struct {
	client domain.APIClient
	log    logrus.FieldLogger

	mu      sync.RWMutex
	gold    []domain.GoldPrice
	videos  []domain.Video
	keyword string
}

// New constructs the market store. Every call is anonymous.
func New(client domain.APIClient, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{client: client, log: log.WithField("component", "market")}
}

// FetchGoldPrices replaces the gold series. The response also carries silver
// quotes; they are not kept.
func (s *Service) FetchGoldPrices(ctx context.Context) error {
	var gold []domain.GoldPrice
	if err := s.fetchArray(ctx, pathGoldSilver, nil, "gold", &gold); err != nil {
		return err
	}
	s.mu.Lock()
	s.gold = gold
	s.mu.Unlock()
	return nil
}

// SearchYouTube replaces the video list with the hits for keyword.
func (s *Service) SearchYouTube(ctx context.Context, keyword string) error {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return fmt.Errorf("search youtube: empty keyword")
	}
	var videos []domain.Video
	q := url.Values{"keyword": {keyword}}
	if err := s.fetchArray(ctx, pathYouTube, q, "items", &videos); err != nil {
		return err
	}
	s.mu.Lock()
	s.videos = videos
	s.keyword = keyword
	s.mu.Unlock()
	return nil
}

// GoldPrices returns a copy of the gold series.
func (s *Service) GoldPrices() []domain.GoldPrice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.gold)
}

// Videos returns a copy of the latest search results.
func (s *Service) Videos() []domain.Video {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.videos)
}

// Keyword returns the keyword of the latest successful search.
func (s *Service) Keyword() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keyword
}

// Reset drops everything cached.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gold = nil
	s.videos = nil
	s.keyword = ""
}

// fetchArray GETs path and decodes the array found at field into out.
func (s *Service) fetchArray(ctx context.Context, path string, q url.Values, field string, out any) error {
	body, err := s.client.GetRaw(ctx, path, q)
	if err != nil {
		return s.readFailed(path, err)
	}
	res := gjson.GetBytes(body, field)
	if !res.IsArray() {
		err := &domain.APIError{Kind: domain.KindDecode, Method: "GET", Path: path, Err: fmt.Errorf("%q is not an array", field)}
		return s.readFailed(path, err)
	}
	if err := json.Unmarshal([]byte(res.Raw), out); err != nil {
		return s.readFailed(path, &domain.APIError{Kind: domain.KindDecode, Method: "GET", Path: path, Err: err})
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

var _ domain.MarketService = (*Service)(nil)
