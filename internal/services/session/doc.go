// Package session owns the authentication credential.
//
// It signs users up and in against the remote API, keeps the credential in
// memory and in durable storage, and publishes lifecycle events so the rest
// of the application can react to log-in and log-out. The Service is the
// CredentialProvider the credential-aware API client reads on every call.
package session
