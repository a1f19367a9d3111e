package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"walletgg/internal/api"
	"walletgg/internal/domain"
	"walletgg/internal/events"
	articlesvc "walletgg/internal/services/articles"
	financesvc "walletgg/internal/services/finance"
	marketsvc "walletgg/internal/services/market"
	productsvc "walletgg/internal/services/products"
	sessionsvc "walletgg/internal/services/session"
	"walletgg/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Config  Config
	Log     logrus.FieldLogger
	Storage domain.KeyValueStore
	Bus     *events.Bus
	Anon    *api.Client
	Auth    *api.Client

	Session  *sessionsvc.Service
	Articles *articlesvc.Service
	Products *productsvc.Service
	Market   *marketsvc.Service
	Finance  *financesvc.Service
}

// NewWire constructs the dependency graph from cfg and restores the session
// saved by a previous run.
func NewWire(cfg Config, notify domain.Notifier, log logrus.FieldLogger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	kv, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	opts := []api.Option{
		api.WithHTTPClient(httpClient),
		api.WithTimeout(cfg.Timeout),
		api.WithLogger(log.WithField("component", "api")),
	}
	if cfg.RateLimit > 0 {
		opts = append(opts, api.WithRateLimit(cfg.RateLimit, cfg.RateBurst))
	}
	anon, err := api.New(cfg.APIURL, opts...)
	if err != nil {
		return nil, err
	}

	bus := events.NewBus()
	sess := sessionsvc.New(anon, kv, bus, notify, log)
	// The credential-aware client reads the session on every call.
	auth := anon.WithCredentials(sess)

	w := &Wire{
		Config:   cfg,
		Log:      log,
		Storage:  kv,
		Bus:      bus,
		Anon:     anon,
		Auth:     auth,
		Session:  sess,
		Articles: articlesvc.New(anon, auth, sess, notify, log),
		Products: productsvc.New(anon, auth, sess, notify, log),
		Market:   marketsvc.New(anon, log),
		Finance:  financesvc.New(kv, log),
	}
	bus.Subscribe(domain.EventSessionCleared, w.resetStores)

	sess.Restore()
	if err := w.Finance.Load(); err != nil {
		log.WithError(err).Warn("finance profile not loaded")
	}
	return w, nil
}

// resetStores drops every cached collection and the finance profile of the
// user who just logged out.
func (w *Wire) resetStores(e domain.Event) {
	w.Articles.Reset()
	w.Products.Reset()
	w.Market.Reset()
	if err := w.Finance.Clear(); err != nil {
		w.Log.WithError(err).Warn("clear finance profile")
	}
	w.Log.WithField("username", e.Username).Debug("stores reset")
}

func openStorage(cfg Config) (domain.KeyValueStore, error) {
	switch cfg.Storage {
	case StorageFile, "":
		return store.NewFileKV(cfg.Home), nil
	case StorageSealed:
		if cfg.Passphrase == "" {
			return nil, errors.New("sealed storage needs a passphrase")
		}
		return store.NewSealedKV(cfg.Home, cfg.Passphrase), nil
	case StorageMemory:
		return store.NewMemoryKV(nil), nil
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}
