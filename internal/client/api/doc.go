// Package api is the single point of HTTP communication with the LaberSaler
// backend.
//
// # Overview
//
// The package provides:
//  1. A preconfigured client (see Client) owning the base URL, default
//     timeout (10s) and default JSON headers, constructed explicitly and
//     injected into call sites. The thin request surface (see Caller) is
//     what the domain services depend on.
//  2. Automatic credential attachment: the session token is read from the
//     store on every call and sent as a bearer Authorization header;
//     multipart bodies (see Form) switch the content type to the encoder's
//     boundary-carrying multipart type.
//  3. Error classification (see classify): every failed call is rejected
//     with exactly one variant of a closed error set, each carrying a
//     ready-to-display message. A 401 outside the login route deletes the
//     stored token before the error is returned.
//  4. Diagnostic request/response logging at debug level, correlated by a
//     per-call UUID. Intended for development-time tracing, not audit.
//
// # Error Handling
//
// Callers branch on the variant with errors.As or the helpers IsTransport,
// IsValidation, IsAuth, IsPermission, IsNotFound, IsServer, and obtain the
// display text with UserMessage. No retries are performed: every failure is
// surfaced exactly once and is recoverable by the caller.
//
// Concurrency & Contexts
//
// Client is safe for concurrent use. Calls in flight at the same time are
// classified and handled independently; the only shared mutable state is
// the persisted session token, whose deletion is idempotent. All operations
// accept context.Context and honor cancellation; each call is additionally
// bounded by the configured timeout.
package api
