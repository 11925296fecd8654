package oop

// Calculator stands in for method overloading, which Go does not have. The
// idiomatic substitutes, in rough order of preference: distinct method names,
// a generic function, and (rarely) a variadic any signature with type
// switching.
type Calculator struct{}

// AddInts adds two ints.
func (Calculator) AddInts(a, b int) int { return a + b }

// AddFloats adds two float64s.
func (Calculator) AddFloats(a, b float64) float64 { return a + b }

// AddThreeInts adds three ints.
func (Calculator) AddThreeInts(a, b, c int) int { return a + b + c }

// AddStrings joins two strings with a space.
func (Calculator) AddStrings(a, b string) string { return a + " " + b }

// Add is the variadic simulation of overloading. It handles exactly two
// values of matching type and returns nil otherwise; the shapelessness of
// the signature is the reason this style is a last resort.
func (Calculator) Add(values ...any) any {
	if len(values) != 2 {
		return nil
	}
	switch a := values[0].(type) {
	case int:
		if b, ok := values[1].(int); ok {
			return a + b
		}
	case float64:
		if b, ok := values[1].(float64); ok {
			return a + b
		}
	case string:
		if b, ok := values[1].(string); ok {
			return a + " " + b
		}
	}
	return nil
}

// Number constrains Sum to the numeric types the lessons use.
type Number interface {
	~int | ~int64 | ~float64
}

// Sum is what the overloading story looks like with generics: one function,
// many numeric types, checked at compile time.
func Sum[T Number](values ...T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}
