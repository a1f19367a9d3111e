// Package market caches gold quotes and video search results served by the
// API's /services/ endpoints.
package market
