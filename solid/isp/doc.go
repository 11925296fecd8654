// Package isp demonstrates interface segregation: clients depend on the
// methods they call, not on everything a provider happens to offer.
//
// Notifier and Logger are separate interfaces because their clients are
// separate. A payment service that only sends notifications should not be
// forced to carry Info/Error methods it never calls, and a stub notifier in
// a test should not have to implement logging to compile.
//
// The counterexample is the fat interface this package refuses to declare:
//
//	type Communications interface {
//	    Notify(message string) error
//	    Info(message string)
//	    Error(message string)
//	    // ...and next quarter: metrics, tracing, audit...
//	}
//
// Every implementer of that interface drags dead methods around, and every
// client is coupled to all of it.
package isp
