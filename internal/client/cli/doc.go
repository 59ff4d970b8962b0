// Package cli provides the interactive Labersaler command-line client.
//
// It wires configuration, local session storage, the API client, and an
// interactive REPL covering the marketplace flows: browsing and publishing
// book listings, reviews, the account profile, and the password recovery
// loop.
//
// Key features:
//   - Register / Login / Logout (the session token survives restarts)
//   - Browse the catalog and categories, inspect a listing with its reviews
//   - Publish a listing with a photo, manage and delete own listings
//   - Add and remove reviews, view and edit the profile
//   - Recover a forgotten password via the e-mailed code or reset link
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// Failed requests surface as throttled alerts; an expired session drops the
// user back to the logged-out prompt.
package cli
