package di

import "fmt"

// Key names a wired dependency inside a Service. Define keys as package-level
// constants next to the composition root so wiring reads consistently:
//
//	const (
//	  KeyProcessor di.Key = "processor"
//	  KeyNotifier  di.Key = "notifier"
//	)
type Key string

// Service wraps a constructed value plus the record of what was wired into
// it. The record exists for introspection: tests and composition roots can
// ask what a service was actually given.
type Service[T any] struct {
	val  *T
	deps map[Key]any
}

// Init constructs a Service by running ctor.
func Init[T any](ctor func() *T) *Service[T] {
	return &Service[T]{val: ctor(), deps: make(map[Key]any)}
}

// Value returns the constructed value.
func (s *Service[T]) Value() *T { return s.val }

// Injector is one wiring step. Injectors mutate the Service in place and
// report invalid wiring instead of applying it.
type Injector[T any] func(*Service[T]) error

// With applies injectors in order, stopping at the first error. Nil
// injectors are skipped.
func (s *Service[T]) With(injectors ...Injector[T]) (*Service[T], error) {
	for _, inj := range injectors {
		if inj == nil {
			continue
		}
		if err := inj(s); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Inject builds an Injector that records dep under key and then binds it to
// the target via bind.
//
// The injector fails with:
//   - ErrNilTarget when the target Service or its value is nil
//   - NilDependencyError when dep or its value is nil
//   - NilBindError when bind is nil
//   - DuplicateKeyError when key was already wired
func Inject[T any, D any](key Key, dep *Service[D], bind func(target *T, dep *D)) Injector[T] {
	return func(s *Service[T]) error {
		if s == nil || s.val == nil {
			return ErrNilTarget
		}
		if dep == nil || dep.val == nil {
			return NilDependencyError{Key: key}
		}
		if bind == nil {
			return NilBindError{Key: key}
		}
		if s.deps == nil {
			s.deps = make(map[Key]any)
		}
		if _, exists := s.deps[key]; exists {
			return DuplicateKeyError{Key: key}
		}
		s.deps[key] = dep.val
		bind(s.val, dep.val)
		return nil
	}
}

// Has reports whether a dependency was wired under key.
func (s *Service[T]) Has(key Key) bool {
	if s == nil || s.deps == nil {
		return false
	}
	_, ok := s.deps[key]
	return ok
}

// Dep returns the dependency recorded under key, typed as *D.
//
// It returns MissingDependencyError when nothing was wired under key and
// WrongTypeDependencyError when the recorded value is not a *D.
func Dep[T any, D any](s *Service[T], key Key) (*D, error) {
	if s == nil || s.deps == nil {
		return nil, MissingDependencyError{Key: key}
	}
	raw, ok := s.deps[key]
	if !ok || raw == nil {
		return nil, MissingDependencyError{Key: key}
	}
	d, ok := raw.(*D)
	if !ok {
		return nil, WrongTypeDependencyError{Key: key, Got: fmt.Sprintf("%T", raw)}
	}
	return d, nil
}

// MustDep is Dep for wiring that cannot be missing; it panics on error.
// Meant for tests and demos.
func MustDep[T any, D any](s *Service[T], key Key) *D {
	d, err := Dep[T, D](s, key)
	if err != nil {
		panic(err)
	}
	return d
}
