// Package diag defines the diagnostic model shared by the lexer, the driver
// and the CLI.
//
// # Purpose
//
//   - Give every lexer failure kind a stable numeric Code with a string form
//     (FMT1001 ... FMT1005) so tools can match on it.
//   - Let producers hand diagnostics to a Reporter without knowing whether
//     they end up in a Bag, a test closure or nowhere.
//
// # Scope
//
// Package diag performs no formatting and no IO. Rendering lives in
// internal/diagfmt; orchestration lives in internal/driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error.
//   - Code: compact numeric identifier (see codes.go).
//   - Message: short human text.
//   - Primary: the source.Span pointing at the offending bytes.
//   - Notes: optional secondary spans with extra context.
//
// Bag is an append-only container with an optional limit; what the limit
// turns away is still counted by Dropped. It is not safe for
// concurrent use; parallel producers each fill their own Bag and the caller
// merges them afterwards.
package diag
