// Package chain provides a fluent wrapper around bound.Bound[T] so endpoint
// handling reads as a method chain instead of nested solo calls.
//
// Chain[T] holds nothing but the wrapped bound; every method delegates to the
// solo function of the same name. Operations that change the payload type
// (Map, Ref, Mut, AsRef, AsMut, AsPinRef, AsPinMut, Cloned, Copied) are package-level
// functions because Go methods cannot declare type parameters.
//
// Key operations:
// - Start/Bound: convert from and back to bound.Bound[T] without loss
// - IsIncluded/IsExcluded/IsUnbounded: query the variant
// - Map: transform the payload
// - Ref/Mut: project a pointer to the payload
// - Unwrap/Expect/UnwrapOr/UnwrapOrElse/Get: extract the payload
package chain
