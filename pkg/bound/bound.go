package bound

import "fmt"

type Kind uint8

const (
	KindUnbounded Kind = iota
	KindIncluded
	KindExcluded
)

func (k Kind) String() string {
	switch k {
	case KindIncluded:
		return "Included"
	case KindExcluded:
		return "Excluded"
	case KindUnbounded:
		return "Unbounded"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Bound is one endpoint of a range. The zero value is Unbounded.
type Bound[T any] struct {
	kind  Kind
	value T
}

func Included[T any](v T) Bound[T] {
	return Bound[T]{kind: KindIncluded, value: v}
}

func Excluded[T any](v T) Bound[T] {
	return Bound[T]{kind: KindExcluded, value: v}
}

func Unbounded[T any]() Bound[T] {
	return Bound[T]{kind: KindUnbounded}
}

func (b Bound[T]) Kind() Kind {
	return b.kind
}

// Value returns the payload and whether one is present.
func (b Bound[T]) Value() (T, bool) {
	if b.kind == KindUnbounded {
		var zero T
		return zero, false
	}
	return b.value, true
}

// Ptr returns the address of the payload stored inside b, or nil for
// Unbounded. Writes through the pointer change b.
func (b *Bound[T]) Ptr() *T {
	if b.kind == KindUnbounded {
		return nil
	}
	return &b.value
}

func (b Bound[T]) String() string {
	if b.kind == KindUnbounded {
		return b.kind.String()
	}
	return fmt.Sprintf("%s(%v)", b.kind, b.value)
}
