// Package bound defines Bound[T], one endpoint of a range: Included(v),
// Excluded(v) or Unbounded.
//
// The package only holds the data type and the small vocabulary shared by the
// subpackages:
// - Included/Excluded/Unbounded: construct a Bound[T]
// - Referencer/MutReferencer: view capabilities used by projections
// - Pin: marks a view whose storage must not be relocated
// - ErrUnbounded/Catch: the single failure kind and a recover helper
//
// Combinators live in package solo, the fluent wrapper in package chain and
// the range capability in package ranges.
package bound
