// Package lsp demonstrates the Liskov substitution principle: anything that
// says it is a Refunder must be usable wherever a Refunder is expected,
// without the caller knowing or caring which one it holds.
//
// The contract is behavioral, not just structural. Every implementation
// rejects a refund larger than the original payment with ErrExceedsPayment
// and a non-positive amount with ErrInvalidAmount; none of them panics,
// silently caps the amount, or succeeds where a sibling would fail. The
// substitution test runs the identical scenario table against every
// implementation to hold them to it.
//
// The classic violation this guards against: a StoreCredit refunder that
// "helpfully" refunds whatever amount it is asked for because store credit
// is free to mint. It would pass an interface check and break every caller
// that relied on over-refunds being rejected.
package lsp
