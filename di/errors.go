package di

import (
	"errors"
	"strconv"
)

// ErrNilTarget is returned when an injector runs against a nil Service or a
// Service holding a nil value.
var ErrNilTarget = errors.New("di: nil target service")

// NilDependencyError is returned by an injector whose dependency Service (or
// its value) is nil.
type NilDependencyError struct{ Key Key }

func (e NilDependencyError) Error() string {
	return "di: nil dependency service for key " + strconv.Quote(string(e.Key))
}

// NilBindError is returned by an injector built without a bind function.
type NilBindError struct{ Key Key }

func (e NilBindError) Error() string {
	return "di: nil bind function for key " + strconv.Quote(string(e.Key))
}

// DuplicateKeyError is returned when the same key is wired into a Service
// twice.
type DuplicateKeyError struct{ Key Key }

func (e DuplicateKeyError) Error() string {
	return "di: duplicate dependency key " + strconv.Quote(string(e.Key))
}

// MissingDependencyError is returned by Dep when no dependency was recorded
// under the key.
type MissingDependencyError struct{ Key Key }

func (e MissingDependencyError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) + " missing"
}

// WrongTypeDependencyError is returned by Dep when the recorded dependency is
// not the requested type. Got holds the stored value's type name.
type WrongTypeDependencyError struct {
	Key Key
	Got string
}

func (e WrongTypeDependencyError) Error() string {
	return "di: dependency " + strconv.Quote(string(e.Key)) + " has wrong type (" + e.Got + ")"
}
