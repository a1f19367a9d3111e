// Package events carries session lifecycle events from the session store to
// the rest of the application.
package events
