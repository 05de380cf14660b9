package ranges

import (
	"github.com/hjiayz/MyBound/pkg/bound"
	"github.com/hjiayz/MyBound/pkg/bound/solo"
)

// Range is the half-open range Start..End.
type Range[T any] struct {
	Start T
	End   T
}

func (r *Range[T]) StartBound() bound.Bound[*T] { return bound.Included(&r.Start) }
func (r *Range[T]) EndBound() bound.Bound[*T] { return bound.Excluded(&r.End) }

// Inclusive is the closed range Start..=End.
type Inclusive[T any] struct {
	Start T
	End   T
}

func (r *Inclusive[T]) StartBound() bound.Bound[*T] { return bound.Included(&r.Start) }
func (r *Inclusive[T]) EndBound() bound.Bound[*T] { return bound.Included(&r.End) }

// From is Start.. with no upper limit.
type From[T any] struct {
	Start T
}

func (r *From[T]) StartBound() bound.Bound[*T] { return bound.Included(&r.Start) }
func (r *From[T]) EndBound() bound.Bound[*T] { return bound.Unbounded[*T]() }

// To is ..End with no lower limit.
type To[T any] struct {
	End T
}

func (r *To[T]) StartBound() bound.Bound[*T] { return bound.Unbounded[*T]() }
func (r *To[T]) EndBound() bound.Bound[*T] { return bound.Excluded(&r.End) }

type ToInclusive[T any] struct {
	End T
}

func (r *ToInclusive[T]) StartBound() bound.Bound[*T] { return bound.Unbounded[*T]() }
func (r *ToInclusive[T]) EndBound() bound.Bound[*T] { return bound.Included(&r.End) }

// Full has no limit on either side.
type Full[T any] struct{}

func (Full[T]) StartBound() bound.Bound[*T] { return bound.Unbounded[*T]() }
func (Full[T]) EndBound() bound.Bound[*T] { return bound.Unbounded[*T]() }

// Pair is a range given by two explicit bounds.
type Pair[T any] struct {
	Lo bound.Bound[T]
	Hi bound.Bound[T]
}

func NewPair[T any](lo, hi bound.Bound[T]) *Pair[T] {
	return &Pair[T]{Lo: lo, Hi: hi}
}

func (p *Pair[T]) StartBound() bound.Bound[*T] { return solo.Ref(&p.Lo) }
func (p *Pair[T]) EndBound() bound.Bound[*T] { return solo.Ref(&p.Hi) }
