package chain

import (
	"github.com/iotaledger/hive.go/constraints"

	"github.com/hjiayz/MyBound/pkg/bound"
	"github.com/hjiayz/MyBound/pkg/bound/solo"
)

// Chain wraps a bound.Bound to enable fluent chaining
type Chain[T any] struct {
	b bound.Bound[T]
}

// Start wraps b
func Start[T any](b bound.Bound[T]) Chain[T] {
	return Chain[T]{b: b}
}

// Bound returns the underlying bound.Bound
func (c Chain[T]) Bound() bound.Bound[T] {
	return c.b
}

func (c Chain[T]) IsIncluded() bool {
	return solo.IsIncluded(&c.b)
}

func (c Chain[T]) IsExcluded() bool {
	return solo.IsExcluded(&c.b)
}

func (c Chain[T]) IsUnbounded() bool {
	return solo.IsUnbounded(&c.b)
}

// Map transforms the payload without changing its type
func (c Chain[T]) Map(f func(T) T) Chain[T] {
	return Map(c, f)
}

func (c Chain[T]) Unwrap() T {
	return solo.Unwrap(c.b)
}

func (c Chain[T]) UnwrapOr(def T) T {
	return solo.UnwrapOr(c.b, def)
}

func (c Chain[T]) UnwrapOrElse(orElse func() T) T {
	return solo.UnwrapOrElse(c.b, orElse)
}

func (c Chain[T]) Expect(msg string) T {
	return solo.Expect(c.b, msg)
}

func (c Chain[T]) Get() (T, error) {
	return solo.Get(c.b)
}

func (c Chain[T]) String() string {
	return c.b.String()
}

// Map chains a payload transformation T -> U
func Map[T, U any](c Chain[T], f func(T) U) Chain[U] {
	return Chain[U]{b: solo.Map(c.b, f)}
}

// Ref projects a shared pointer to the payload held by c
func Ref[T any](c *Chain[T]) Chain[*T] {
	return Chain[*T]{b: solo.Ref(&c.b)}
}

// Mut projects a writable pointer to the payload held by c
func Mut[T any](c *Chain[T]) Chain[*T] {
	return Chain[*T]{b: solo.Mut(&c.b)}
}

// AsRef chains the shared view exposed by the payload
func AsRef[U any, T bound.Referencer[U]](c *Chain[T]) Chain[U] {
	return Chain[U]{b: solo.AsRef[U](&c.b)}
}

// AsMut chains the writable view exposed by the payload
func AsMut[U any, T any, PT bound.MutReferencer[T, U]](c *Chain[T]) Chain[U] {
	return Chain[U]{b: solo.AsMut[U, T, PT](&c.b)}
}

func AsPinRef[U any, T bound.Referencer[U]](p bound.Pin[*Chain[T]]) Chain[bound.Pin[U]] {
	return Chain[bound.Pin[U]]{b: solo.AsPinRef[U](bound.NewPin(&p.Get().b))}
}

func AsPinMut[U any, T any, PT bound.MutReferencer[T, U]](p bound.Pin[*Chain[T]]) Chain[bound.Pin[U]] {
	return Chain[bound.Pin[U]]{b: solo.AsPinMut[U, T, PT](bound.NewPin(&p.Get().b))}
}

func Cloned[T any, C constraints.Cloneable[T]](c Chain[C]) Chain[T] {
	return Chain[T]{b: solo.Cloned[T](c.b)}
}

func ClonedMut[T any, C constraints.Cloneable[T]](c Chain[C]) Chain[T] {
	return Chain[T]{b: solo.ClonedMut[T](c.b)}
}

func Copied[T any](c Chain[*T]) Chain[T] {
	return Chain[T]{b: solo.Copied(c.b)}
}

func CopiedMut[T any](c Chain[*T]) Chain[T] {
	return Chain[T]{b: solo.CopiedMut(c.b)}
}
