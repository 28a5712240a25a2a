// Package cli provides the interactive interviewdesk command-line client.
//
// It wires configuration, the selected storage backend, the auth service and
// a proctoring overlay into a simple REPL. The auth service is installed in
// the context with services.WithAuth for the lifetime of the REPL; command
// handlers fetch it with services.FromContext.
//
// Key features:
//   - Signup / Login / Logout against the persisted account store
//   - Profile edits: rename, recording interview scores, badges
//   - Proctoring: camera toggle, warnings, violations, overlay panel
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Root and runREPL for details.
package cli
