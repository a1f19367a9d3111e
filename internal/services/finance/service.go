package finance

import (
	"encoding/json"
	"fmt"
	"maps"
	"sync"

	"github.com/sirupsen/logrus"

	"walletgg/internal/domain"
)

// KeyProfile is the durable storage key of the profile.
const KeyProfile = "finance"

// Service owns the finance profile.
type Service struct {
	storage domain.KeyValueStore
	log     logrus.FieldLogger

	mu      sync.RWMutex
	profile domain.FinanceProfile
}

// New constructs the finance store. Call Load to read what was saved.
func New(storage domain.KeyValueStore, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{storage: storage, log: log.WithField("component", "finance")}
}

// Load replaces the in-memory profile with the stored one. A missing entry
// yields an empty profile.
func (s *Service) Load() error {
	raw, ok, err := s.storage.Get(KeyProfile)
	if err != nil {
		return fmt.Errorf("load finance profile: %w", err)
	}
	var p domain.FinanceProfile
	if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return fmt.Errorf("decode finance profile: %w", err)
		}
	}
	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()
	return nil
}

// SaveUserInfo records the analysis inputs.
func (s *Service) SaveUserInfo(info map[string]any) error {
	return s.update(func(p *domain.FinanceProfile) { p.UserInfo = maps.Clone(info) })
}

// SaveAnalysis records the latest analysis result.
func (s *Service) SaveAnalysis(result map[string]any) error {
	return s.update(func(p *domain.FinanceProfile) { p.AnalysisResult = maps.Clone(result) })
}

// Profile returns a copy of the profile.
func (s *Service) Profile() domain.FinanceProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.FinanceProfile{
		UserInfo:       maps.Clone(s.profile.UserInfo),
		AnalysisResult: maps.Clone(s.profile.AnalysisResult),
	}
}

// Clear forgets the profile in memory and in storage.
func (s *Service) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = domain.FinanceProfile{}
	if err := s.storage.Delete(KeyProfile); err != nil {
		return fmt.Errorf("clear finance profile: %w", err)
	}
	return nil
}

// update applies fn to a copy and keeps it only once it is stored.
func (s *Service) update(fn func(*domain.FinanceProfile)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.profile
	fn(&next)
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode finance profile: %w", err)
	}
	if err := s.storage.Put(map[string]string{KeyProfile: string(raw)}); err != nil {
		return fmt.Errorf("save finance profile: %w", err)
	}
	s.profile = next
	s.log.Debug("finance profile saved")
	return nil
}

var _ domain.FinanceService = (*Service)(nil)
