// Package products caches the financial product catalog and the user's liked
// and joined products.
package products
