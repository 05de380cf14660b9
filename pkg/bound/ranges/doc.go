// Package ranges lets any range-like value report its endpoints as
// chain.Chain values instead of raw bounds.
//
// A type only has to implement RangeBounds (StartBound/EndBound returning
// pointers into its own storage); Start, End, Bounds and Extend then work on
// it without further code. The package also ships the usual range shapes:
// Range (a..b), Inclusive (a..=b), From (a..), To (..b), ToInclusive (..=b),
// Full (..) and Pair (two explicit bounds). They hold endpoints only; no
// containment or set arithmetic is provided.
package ranges
