// Package oopcontext is a collection of small, self-contained Go lessons on
// object-oriented design: the four OOP pillars and the five SOLID principles.
//
// Each lesson lives in its own package and narrates exactly one idea through a
// deliberately tiny domain (employees, bank accounts, vehicles, payments).
// Nothing here is production machinery; the point of every type is the design
// concept it demonstrates, expressed the way Go actually expresses it
// (embedding instead of class inheritance, small interfaces, explicit wiring).
//
// See subpackages:
//   - oop: encapsulation, inheritance via embedding, polymorphism, abstraction
//   - solid/srp ... solid/dip: one package per SOLID principle, payment domain
//   - solid/payment: the shared flat payment record used by the SOLID lessons
//   - di: the explicit dependency-wiring helper used by the DIP lesson
//   - examples/*: runnable walkthrough mains for each lesson group
//
// Start with the package docs; each doc.go carries the lesson prose, and the
// Example tests pin the documented console output.
package oopcontext
