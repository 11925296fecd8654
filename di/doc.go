// Package di is the explicit dependency-wiring helper behind the DIP lesson
// in solid/dip.
//
// It is deliberately not a container: there is no reflection, no graph
// resolution, no automatic anything. A Service[T] wraps one constructed value
// plus a record of what was wired into it, and Inject builds small wiring
// steps that a composition root applies in order. Mistakes a container would
// hide (wiring the same thing twice, wiring nil, forgetting the bind
// function) surface as typed errors a test can assert on.
//
// That is the whole point of the lesson: dependency inversion is about the
// direction of the abstraction, and the wiring of concrete types into those
// abstractions stays in plain sight in main.
package di
