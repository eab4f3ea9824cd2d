// Package session implements the session gate that decides between the
// signed-out and signed-in dashboard.
//
// # Gate
//
// A Gate starts in Checking and moves exactly once, on Boot, to
// Authenticated or Unauthenticated. The only input is one token read from a
// TokenSource under TokenKey: a non-empty token means Authenticated. The gate
// never validates the token; the REST API rejects bad tokens downstream.
//
// # Session values
//
// Boot produces a Session value that carries the token. It is handed to the
// REST client explicitly instead of the client reading storage on its own.
//
// # Token sources
//
//   - CookieSource: the browser cookie of one HTTP request
//   - FileStore: a JSON key-value file used by the CLI
//   - StaticSource: a fixed token
package session
