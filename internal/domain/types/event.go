package types

// EventKind names a session lifecycle event.
type EventKind string

const (
	// EventSignedUp follows a successful registration; the view layer should
	// take the user to the login step.
	EventSignedUp EventKind = "signed-up"
	// EventLoggedIn follows a successful log-in.
	EventLoggedIn EventKind = "logged-in"
	// EventSessionCleared follows log-out. Every store drops its cached state.
	EventSessionCleared EventKind = "session-cleared"
)

// Event is broadcast by the session store.
type Event struct {
	Kind     EventKind
	Username Username
}
