// Package finance keeps the asset-analysis inputs and the last analysis
// result in durable storage so they survive restarts.
package finance
