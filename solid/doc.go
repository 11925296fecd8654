// Package solid is the umbrella for the five SOLID lessons, all told through
// the same toy payment domain:
//
//   - solid/srp: single responsibility — the payment record knows nothing
//     about validating, formatting or book-keeping payments
//   - solid/ocp: open/closed — new payment methods are new Processor
//     implementations, not edits to existing code
//   - solid/lsp: Liskov substitution — every Refunder honors the same
//     contract, so callers never care which one they hold
//   - solid/isp: interface segregation — Notifier and Logger stay separate
//     because their clients are separate
//   - solid/dip: dependency inversion — the service declares the interfaces
//     it needs; concrete types from the other lessons satisfy them
//     structurally and are wired in at the composition root via the di
//     package
//
// The shared flat record lives in solid/payment. Each lesson package is
// otherwise self-contained; the runnable walkthrough is examples/solid.
package solid
