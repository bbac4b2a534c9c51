// Package cli provides the interactive command-line front-end for the codes
// service.
//
// It wires configuration, the local preferences database, the API client and
// the submission form, then runs a REPL. A background watcher pings the API
// and switches the prompt between online and offline mode.
//
// Commands:
//   - add / bulk      submit one code or a batch (one "code, name" per line)
//   - check           preview locally which lines of a batch look valid
//   - list            page through codes, optionally filtered by status
//   - delete          remove a code by id
//   - update          ask the service to refresh all statuses
//   - details         show the consultation behind a code
//   - dismiss         hide the notice or a feedback banner
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
