// Package srp demonstrates the single responsibility principle: one reason
// to change per type.
//
// The payment record (solid/payment) stores payment data and nothing else.
// The three types here each own exactly one of the things that happen to
// that data:
//
//   - Validator decides whether a record is acceptable
//   - ReceiptFormatter turns a record into a human-readable receipt
//   - Ledger keeps the running book of recorded payments
//
// The counterexample is the class this package refuses to contain: a Payment
// that validates itself, formats itself and appends itself to a ledger. Such
// a type changes when validation rules change, when receipt layout changes
// and when book-keeping changes — three reasons, three masters, endless merge
// conflicts.
package srp
