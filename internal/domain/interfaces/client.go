package interfaces

import (
	"context"
	"net/url"

	domaintypes "walletgg/internal/domain/types"
)

// APIClient dispatches JSON calls to the remote API. Paths are relative to the
// client's base address.
type APIClient interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	GetRaw(ctx context.Context, path string, query url.Values) ([]byte, error)
	Post(ctx context.Context, path string, in, out any) error
	Put(ctx context.Context, path string, in, out any) error
	Delete(ctx context.Context, path string) error
}

// CredentialProvider yields the current credential at call time.
type CredentialProvider interface {
	Credential() (domaintypes.Credential, bool)
}

// Notifier surfaces messages to the person using the application.
type Notifier interface {
	Notify(n domaintypes.Notification)
}

// EventPublisher broadcasts session lifecycle events.
type EventPublisher interface {
	Publish(e domaintypes.Event)
}
