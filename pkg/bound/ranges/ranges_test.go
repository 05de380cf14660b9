package ranges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hjiayz/MyBound/pkg/bound"
	"github.com/hjiayz/MyBound/pkg/bound/chain"
)

func owned[T any](r RangeBounds[T]) (bound.Bound[T], bound.Bound[T]) {
	start, end := Bounds(r)
	return chain.Copied(start).Bound(), chain.Copied(end).Bound()
}

func TestRange_StartIncludedEndExcluded(t *testing.T) {
	t.Parallel()
	r := &Range[int]{Start: 1, End: 10}

	start := Start[int](r)
	require.True(t, start.IsIncluded())
	assert.Same(t, &r.Start, start.Unwrap())
	assert.Equal(t, 1, *start.Unwrap())

	end := End[int](r)
	require.True(t, end.IsExcluded())
	assert.Same(t, &r.End, end.Unwrap())
	assert.Equal(t, 10, *end.Unwrap())
}

func TestShapes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		r         RangeBounds[int]
		wantStart bound.Bound[int]
		wantEnd   bound.Bound[int]
	}{
		{"range", &Range[int]{Start: 1, End: 3}, bound.Included(1), bound.Excluded(3)},
		{"inclusive", &Inclusive[int]{Start: 1, End: 3}, bound.Included(1), bound.Included(3)},
		{"from", &From[int]{Start: 2}, bound.Included(2), bound.Unbounded[int]()},
		{"to", &To[int]{End: 3}, bound.Unbounded[int](), bound.Excluded(3)},
		{"to inclusive", &ToInclusive[int]{End: 3}, bound.Unbounded[int](), bound.Included(3)},
		{"full", Full[int]{}, bound.Unbounded[int](), bound.Unbounded[int]()},
		{"pair", NewPair(bound.Excluded(0), bound.Included(8)), bound.Excluded(0), bound.Included(8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := owned(tt.r)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestPair_PointsIntoBounds(t *testing.T) {
	t.Parallel()
	p := NewPair(bound.Included("a"), bound.Unbounded[string]())

	start := Start[string](p)
	assert.Same(t, p.Lo.Ptr(), start.Unwrap())
	assert.True(t, End[string](p).IsUnbounded())
}

func TestExtend(t *testing.T) {
	t.Parallel()
	r := &Inclusive[string]{Start: "a", End: "z"}
	e := Extend[string](r)

	assert.Equal(t, "a", *e.StartBound().Unwrap())
	assert.True(t, e.EndBound().IsIncluded())
	assert.Equal(t, "z", chain.Copied(e.EndBound()).UnwrapOr("?"))
	assert.Equal(t, RangeBounds[string](r), e.Range())

	// writes through an endpoint view land in the range itself
	*e.StartBound().Unwrap() = "b"
	assert.Equal(t, "b", r.Start)
}

type window struct {
	lo, hi bound.Bound[int]
}

func (w *window) StartBound() bound.Bound[*int] { return bound.Excluded(w.lo.Ptr()) }
func (w *window) EndBound() bound.Bound[*int] {
	if w.hi.Kind() == bound.KindUnbounded {
		return bound.Unbounded[*int]()
	}
	return bound.Included(w.hi.Ptr())
}

func TestCustomRangeGetsCapability(t *testing.T) {
	t.Parallel()
	w := &window{lo: bound.Included(4)}

	start, end := Bounds[int](w)
	assert.True(t, start.IsExcluded())
	assert.Equal(t, 4, chain.Copied(start).Unwrap())
	assert.Equal(t, -1, chain.Copied(end).UnwrapOr(-1))
}
