// Package solo contains single-value, synchronous combinators that operate
// on bound.Bound[T]. They are the building blocks the chain wrapper and the
// ranges capability delegate to.
//
// Highlights:
// - IsIncluded/IsExcluded/IsUnbounded: query the active variant
// - Map: transform the payload, keeping the variant
// - Ref/Mut, AsRef/AsMut: project a pointer or a view of the payload in place
// - AsPinRef/AsPinMut: the same projections for a pinned bound
// - Unwrap/Expect: extract the payload, panicking on Unbounded
// - UnwrapOr/UnwrapOrElse/Get: total extraction
// - Cloned/Copied (and the Mut variants): turn a bound of references into an
//   owned bound
package solo
