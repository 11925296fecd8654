// Package oop walks through the four pillars of object-oriented design as Go
// expresses them, one toy domain per pillar:
//
//   - Encapsulation: BankAccount and Employee hide state behind unexported
//     fields; mutation goes through methods that enforce the (tiny) invariants.
//   - Inheritance: Go has none. Embedding gives is-a-shaped reuse instead, and
//     Manager/Developer/SeniorDeveloper show the single, hierarchical and
//     multilevel variants on top of Employee.
//   - Polymorphism: the Worker and Vehicular interfaces dispatch on the
//     dynamic type; SportsCar overrides Car methods through re-declaration.
//     Method overloading does not exist; Calculator shows the idiomatic
//     substitutes (distinct names, variadic any, and a generic Sum).
//   - Abstraction: Vehicular/Drivable/Maintainable are contracts only; any
//     struct with the right method set satisfies them, no declaration needed.
//
// Composition (has-a) gets its own chapter via AdvancedCar, which owns an
// Engine and a GPS rather than embedding them.
//
// Every narration method returns its line instead of printing, so the Example
// tests can pin the documented output; the runnable demo lives in
// examples/oop.
package oop
