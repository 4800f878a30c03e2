package argraph

// Destroyer releases one attribute. A Graph invokes its node Destroyer once
// per node attribute and its edge Destroyer once per edge attribute during
// Destroy; with no Destroyer installed, attributes are treated as non-owned.
type Destroyer[T any] interface {
	Destroy(attr T)
}

// Comparator decides whether two attributes are compatible during matching.
// With no Comparator installed, any two attributes are compatible
// (structural-only matching).
type Comparator[T any] interface {
	Compatible(a, b T) bool
}

// DestroyerFunc adapts a plain function into a Destroyer.
type DestroyerFunc[T any] func(attr T)

// Destroy invokes the wrapped function; a nil function is a no-op.
func (f DestroyerFunc[T]) Destroy(attr T) {
	if f != nil {
		f(attr)
	}
}

// ComparatorFunc adapts a plain function into a Comparator.
type ComparatorFunc[T any] func(a, b T) bool

// Compatible invokes the wrapped function; a nil function reports true.
func (f ComparatorFunc[T]) Compatible(a, b T) bool {
	if f == nil {
		return true
	}
	return f(a, b)
}
