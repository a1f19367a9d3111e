package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"walletgg/internal/domain"
)

// Durable storage keys.
const (
	KeyToken    = "token"
	KeyUsername = "username"
)

const (
	pathSignUp = "/accounts/signup/"
	pathLogIn  = "/accounts/login/"
)

// Service tracks the current credential and mirrors it to durable storage.
//
// The zero credential is the anonymous state. Every method is safe for
// concurrent use.
type Service struct {
	client  domain.APIClient
	storage domain.KeyValueStore
	events  domain.EventPublisher
	notify  domain.Notifier
	log     logrus.FieldLogger

	mu   sync.RWMutex
	cred domain.Credential
}

// New constructs a Session Service. client should be the anonymous API
// client; the session never sends its own credential.
func New(
	client domain.APIClient,
	storage domain.KeyValueStore,
	events domain.EventPublisher,
	notify domain.Notifier,
	log logrus.FieldLogger,
) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{
		client:  client,
		storage: storage,
		events:  events,
		notify:  notify,
		log:     log.WithField("component", "session"),
	}
}

// Restore loads the credential saved by a previous LogIn. It does not talk to
// the API. A storage failure is logged and leaves the session anonymous.
func (s *Service) Restore() {
	token, _, err := s.storage.Get(KeyToken)
	if err != nil {
		s.log.WithError(err).Warn("restore session: read token")
		return
	}
	username, _, err := s.storage.Get(KeyUsername)
	if err != nil {
		s.log.WithError(err).Warn("restore session: read username")
		return
	}

	s.mu.Lock()
	s.cred = domain.Credential{Token: token, Username: domain.Username(username)}
	s.mu.Unlock()

	s.log.WithField("authenticated", token != "").Debug("session restored")
}

// SignUp registers a new account. It never logs the user in. The outcome is
// reported through the notifier and, on success, an EventSignedUp; the
// returned error is informational.
func (s *Service) SignUp(ctx context.Context, req domain.SignUpRequest) error {
	if err := s.client.Post(ctx, pathSignUp, req, nil); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"username": req.Username,
			"kind":     domain.KindOf(err),
			"status":   domain.StatusOf(err),
		}).Error("sign up failed")
		s.send(domain.LevelError, "Sign-up failed. Please check the form and try again.")
		return fmt.Errorf("sign up %s: %w", req.Username, err)
	}

	s.send(domain.LevelSuccess, "Sign-up complete. Please log in.")
	s.publish(domain.Event{Kind: domain.EventSignedUp, Username: req.Username})
	return nil
}

// LogIn exchanges a username and password for a token. On failure nothing
// changes, in memory or in storage, and the error is returned to the caller.
func (s *Service) LogIn(ctx context.Context, req domain.LoginRequest) error {
	var resp domain.LoginResponse
	if err := s.client.Post(ctx, pathLogIn, req, &resp); err != nil {
		return fmt.Errorf("log in %s: %w", req.Username, err)
	}
	if resp.Key == "" {
		return fmt.Errorf("log in %s: %w", req.Username, &domain.APIError{
			Kind:   domain.KindDecode,
			Method: "POST",
			Path:   pathLogIn,
			Err:    errors.New("empty key"),
		})
	}

	if err := s.save(req.Username, resp.Key); err != nil {
		return fmt.Errorf("log in %s: save credential: %w", req.Username, err)
	}
	s.log.WithField("username", req.Username).Info("logged in")
	s.publish(domain.Event{Kind: domain.EventLoggedIn, Username: req.Username})
	return nil
}

// save writes storage first so that a failed write leaves the old in-memory
// credential in place.
func (s *Service) save(user domain.Username, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Put(map[string]string{
		KeyToken:    token,
		KeyUsername: user.String(),
	}); err != nil {
		return err
	}
	s.cred = domain.Credential{Token: token, Username: user}
	return nil
}

// LogOut forgets the credential and broadcasts EventSessionCleared. The
// in-memory state is cleared and the event sent even if storage cannot be
// updated; that error is returned.
func (s *Service) LogOut() error {
	s.mu.Lock()
	who := s.cred.Username
	s.cred = domain.Credential{}
	s.mu.Unlock()

	err := s.storage.Delete(KeyToken, KeyUsername)
	if err != nil {
		s.log.WithError(err).Error("log out: clear storage")
		err = fmt.Errorf("log out: %w", err)
	}

	s.log.WithField("username", who).Info("logged out")
	s.publish(domain.Event{Kind: domain.EventSessionCleared, Username: who})
	return err
}

// IsAuthenticated reports whether a token is held right now.
func (s *Service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred.Valid()
}

// Username returns the owner of the current credential, or "".
func (s *Service) Username() domain.Username {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred.Username
}

// Credential implements domain.CredentialProvider.
func (s *Service) Credential() (domain.Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred, s.cred.Valid()
}

func (s *Service) send(level domain.Level, msg string) {
	if s.notify != nil {
		s.notify.Notify(domain.Notification{Level: level, Message: msg})
	}
}

func (s *Service) publish(e domain.Event) {
	if s.events != nil {
		s.events.Publish(e)
	}
}

// Compile-time assertion that Service implements domain.SessionService.
var _ domain.SessionService = (*Service)(nil)
