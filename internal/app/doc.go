// Package app wires application dependencies for the CLI.
//
// It loads Config from defaults, an optional YAML file and the environment,
// builds the storage backend, the API clients, the session and the domain
// stores, and exposes them via the Wire struct for commands to use. Log-out
// is broadcast on the Wire's event bus, which resets every store.
package app
