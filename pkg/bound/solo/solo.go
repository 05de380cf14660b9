package solo

import (
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"

	"github.com/hjiayz/MyBound/pkg/bound"
)

const unwrapMsg = "called `Unwrap()` on an `Unbounded` value"

func IsIncluded[T any](b *bound.Bound[T]) bool {
	return b.Kind() == bound.KindIncluded
}

func IsExcluded[T any](b *bound.Bound[T]) bool {
	return b.Kind() == bound.KindExcluded
}

func IsUnbounded[T any](b *bound.Bound[T]) bool {
	return b.Kind() == bound.KindUnbounded
}

// Map applies f to the payload, if any, and keeps the variant.
func Map[In any, Out any](b bound.Bound[In], f func(In) Out) bound.Bound[Out] {
	switch b.Kind() {
	case bound.KindIncluded:
		v, _ := b.Value()
		return bound.Included(f(v))
	case bound.KindExcluded:
		v, _ := b.Value()
		return bound.Excluded(f(v))
	default:
		return bound.Unbounded[Out]()
	}
}

// Ref projects a pointer to the payload held by b. The result is a shared
// view: readers must not write through it and must not keep it past b.
func Ref[T any](b *bound.Bound[T]) bound.Bound[*T] {
	return project(b, b.Ptr())
}

// Mut projects a pointer to the payload held by b for in-place modification.
// No other view of the payload may be used while the result is live.
func Mut[T any](b *bound.Bound[T]) bound.Bound[*T] {
	return project(b, b.Ptr())
}

// AsRef projects the shared view the payload exposes through AsRef.
func AsRef[U any, T bound.Referencer[U]](b *bound.Bound[T]) bound.Bound[U] {
	return Map(Ref(b), func(p *T) U { return (*p).AsRef() })
}

// AsMut projects the writable view the payload exposes through AsMut. The
// view is taken on the payload stored in b, not on a copy.
func AsMut[U any, T any, PT bound.MutReferencer[T, U]](b *bound.Bound[T]) bound.Bound[U] {
	return Map(Mut(b), func(p *T) U { return PT(p).AsMut() })
}

func AsPinRef[U any, T bound.Referencer[U]](p bound.Pin[*bound.Bound[T]]) bound.Bound[bound.Pin[U]] {
	return Map(AsRef[U](p.Get()), bound.NewPin[U])
}

func AsPinMut[U any, T any, PT bound.MutReferencer[T, U]](p bound.Pin[*bound.Bound[T]]) bound.Bound[bound.Pin[U]] {
	return Map(AsMut[U, T, PT](p.Get()), bound.NewPin[U])
}

func Unwrap[T any](b bound.Bound[T]) T {
	return Expect(b, unwrapMsg)
}

func UnwrapOr[T any](b bound.Bound[T], def T) T {
	if v, ok := b.Value(); ok {
		return v
	}
	return def
}

func UnwrapOrElse[T any](b bound.Bound[T], orElse func() T) T {
	if v, ok := b.Value(); ok {
		return v
	}
	return orElse()
}

// Expect returns the payload or panics with an error that starts with msg
// and matches bound.ErrUnbounded.
func Expect[T any](b bound.Bound[T], msg string) T {
	return lo.PanicOnErr(extract(b, msg))
}

// Get returns the payload or bound.ErrUnbounded.
func Get[T any](b bound.Bound[T]) (T, error) {
	if v, ok := b.Value(); ok {
		return v, nil
	}
	var zero T
	return zero, bound.ErrUnbounded
}

// Cloned duplicates every referenced payload through Clone. C is usually a
// pointer type, so T has to be given explicitly: Cloned[Key](b).
func Cloned[T any, C constraints.Cloneable[T]](b bound.Bound[C]) bound.Bound[T] {
	return Map(b, func(c C) T { return c.Clone() })
}

func ClonedMut[T any, C constraints.Cloneable[T]](b bound.Bound[C]) bound.Bound[T] {
	return Cloned[T](b)
}

// Copied dereferences the payload. The copy is a plain Go assignment: no
// allocation, and reference-typed fields keep pointing at the same data.
func Copied[T any](b bound.Bound[*T]) bound.Bound[T] {
	return Map(b, func(p *T) T { return *p })
}

func CopiedMut[T any](b bound.Bound[*T]) bound.Bound[T] {
	return Copied(b)
}

func project[T any, P any](b *bound.Bound[T], p P) bound.Bound[P] {
	switch b.Kind() {
	case bound.KindIncluded:
		return bound.Included(p)
	case bound.KindExcluded:
		return bound.Excluded(p)
	default:
		return bound.Unbounded[P]()
	}
}

func extract[T any](b bound.Bound[T], msg string) (T, error) {
	v, err := Get(b)
	if err != nil {
		return v, ierrors.Errorf("%s: %w", msg, err)
	}
	return v, nil
}
