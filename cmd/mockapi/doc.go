// Package main runs the in-memory WALLET.GG API used by walletgg during
// development and tests. See package internal/mockapi for the routes.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Responses are JSON. Errors carry a "detail" message or per-field lists.
//   - Every request is logged with method, path, status, bytes and duration.
//   - The default listen address is 127.0.0.1:8000, the client's default.
package main
