// Package commands defines the walletgg CLI and wires dependencies for subcommands.
//
// Commands
//
//   - signup, login, logout, whoami      Manage the session
//   - articles list|show|create|update|delete|comment|uncomment
//   - products list|show|import|status|like|join|liked|joined
//   - market gold|youtube                Gold quotes and video search
//   - finance show|set|analysis|clear    Locally kept analysis inputs
//
// # Implementation
//
// The root command resolves configuration (defaults, ~/.walletgg/config.yaml,
// WALLETGG_* environment variables, then flags), builds the dependency graph
// with app.NewWire and restores the saved session before any subcommand runs.
// Notifications go to stderr; results go to stdout.
package commands
