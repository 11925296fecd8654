// Package ocp demonstrates the open/closed principle: open for extension,
// closed for modification.
//
// Terminal is the closed part. It processes payments through the Processor
// interface and never changes again. CreditCard and PayPal are the open
// part: adding a payment method means adding another implementation, which
// is exactly what the tests do to prove the point — a bank-transfer
// processor exists only in the test file, and Terminal handles it unmodified.
package ocp
