// Package cli provides the interactive docboard command-line client.
//
// It wires configuration, the durable session store, the in-memory user
// directory, and the document/Q&A services into an interactive REPL.
// Typical flow: restore the previous session (if any), then execute user
// commands until exit.
//
// Key features:
//   - Login / Signup / Logout with a session that survives restarts
//   - Document listing, upload, and removal
//   - FAQ browsing and ad-hoc questions
//   - User administration (admin role only)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
