// Package api is the HTTP layer between walletgg and the WALLET.GG REST API.
//
// It produces two request clients bound to the same base address:
//
//   - the anonymous client, used for reads, sign-up and log-in;
//   - the credential-aware client, obtained with WithCredentials, which asks a
//     domain.CredentialProvider for the current token on every request and
//     sends it as "Authorization: Token <token>".
//
// Nothing is stored in process-wide defaults: a log-in or log-out is visible to
// the very next call because the header is derived at call time. A
// credential-aware call made while logged out fails with
// domain.ErrNotAuthenticated before any request is sent.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Failures are returned as *domain.APIError carrying a Kind
// (transport, server, decode), the method, the path and a request ID that is
// also sent as X-Request-ID. Successful bodies of known endpoints are checked
// against the JSON Schemas embedded from schemas/ before they are decoded.
package api
