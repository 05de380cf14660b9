package ranges

import (
	"github.com/hjiayz/MyBound/pkg/bound"
	"github.com/hjiayz/MyBound/pkg/bound/chain"
)

// RangeBounds is implemented by anything with a start and an end bound. The
// returned pointers refer to the range's own storage.
type RangeBounds[T any] interface {
	StartBound() bound.Bound[*T]
	EndBound() bound.Bound[*T]
}

// Start returns the start bound of r wrapped in a chain.Chain
func Start[T any](r RangeBounds[T]) chain.Chain[*T] {
	return chain.Start(r.StartBound())
}

// End returns the end bound of r wrapped in a chain.Chain
func End[T any](r RangeBounds[T]) chain.Chain[*T] {
	return chain.Start(r.EndBound())
}

func Bounds[T any](r RangeBounds[T]) (start, end chain.Chain[*T]) {
	return Start(r), End(r)
}

// Extended exposes the endpoints of a wrapped range as chain.Chain values.
type Extended[T any] struct {
	r RangeBounds[T]
}

func Extend[T any](r RangeBounds[T]) Extended[T] {
	return Extended[T]{r: r}
}

func (e Extended[T]) StartBound() chain.Chain[*T] {
	return Start(e.r)
}

func (e Extended[T]) EndBound() chain.Chain[*T] {
	return End(e.r)
}

// Range returns the underlying range.
func (e Extended[T]) Range() RangeBounds[T] {
	return e.r
}
