// Package client contains the client side of the remote consultation codes API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): AddCodes,
//     ListCodes, DeleteCode, UpdateNow, GetCodeDetails and Ping.
//  2. A concrete REST implementation (see HTTPClient) that sends JSON over
//     net/http, attaches the bearer token and a request id to every call and
//     maps HTTP status codes to sentinel errors.
//  3. Session helpers (ParseSession) that read the bearer JWT claims without
//     verifying them, so the CLI can show the user id and warn about expiry.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound. Any other non-2xx
// response becomes an *APIError. Nothing is retried: every call is a single
// request and its failure is returned as-is.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept context.Context
// and honor cancellation on top of the configured request timeout.
package client
