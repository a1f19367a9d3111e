// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (wire/state) and contracts (interfaces) only.
//
// The types subpackage holds the records exchanged with the remote API and the
// typed failure taxonomy; the interfaces subpackage holds the contracts between
// the session store, the domain stores, the HTTP layer and durable storage.
package domain
