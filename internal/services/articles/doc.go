// Package articles caches the discussion board and sends authenticated
// writes to it.
package articles
