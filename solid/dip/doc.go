// Package dip demonstrates dependency inversion: the high-level payment
// service depends on abstractions, and it owns those abstractions.
//
// Processor, Notifier, Logger and Repository are declared here, next to the
// code that calls them, sized to exactly what Service needs. The concrete
// types come from elsewhere — ocp.CreditCard, isp.EmailNotifier,
// isp.WriterLogger, this package's Store — and satisfy the interfaces
// structurally, without referencing this package. The arrows point inward;
// that is the inversion.
//
// Wiring happens in the composition root (examples/solid) through the di
// package, so what depends on what is written down in one place and checked
// for mistakes. The tests wire by hand with stubs, which is the other payoff
// of inversion: nothing here knows it is being tested.
package dip
