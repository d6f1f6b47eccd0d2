/*
    Copyright (c) 2026 by the propgraph authors

    Permission is hereby granted, free of charge, to any person obtaining a copy
    of this software and associated documentation files (the "Software"), to deal
    in the Software without restriction, including without limitation the rights
    to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
    copies of the Software, and to permit persons to whom the Software is
    furnished to do so, subject to the following conditions:

    The above copyright notice and this permission notice shall be included in
    all copies or substantial portions of the Software.

    THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
    IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
    FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
    AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
    LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
    OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
    SOFTWARE.
*/

package columnar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRearrangePropertyFollowsPermutation(t *testing.T) {
	src := NewPropertyBuilder("weight", KindFloat64, 3)
	for i, v := range []string{"10", "20", "30"} {
		require.NoError(t, src.Append(v, i))
	}
	src.Finalize(3)

	// perm[csrSlot] = xmlOrderIndex
	perm := []int{2, 0, 1}
	dst := RearrangeProperty(src, perm, 3)

	require.Equal(t, 3, dst.Len())
	require.Equal(t, []float64{30, 10, 20}, dst.chunks[0].Float64s)
}

func TestRearrangeLabelFollowsPermutation(t *testing.T) {
	src := NewLabelBuilder(3)
	src.Append(true, 0)
	src.Append(false, 1)
	src.Append(true, 2)
	src.Finalize(3)

	perm := []int{2, 1, 0}
	dst := RearrangeLabel(src, perm, 3)
	require.Equal(t, []bool{true, false, true}, dst.chunks[0].Bools)
}

func TestRearrangePropertySharesWholeNullChunk(t *testing.T) {
	src := NewPropertyBuilder("w", KindString, 3)
	require.NoError(t, src.Append("x", 0))
	src.Finalize(3) // rows 1,2 padded null

	// perm[0:2] = {1,2} are both null source rows -> dst's first chunk
	// must be the pool's shared NullChunk, not a freshly built one.
	perm := []int{1, 2, 0, 2}
	dst := RearrangeProperty(src, perm, 2)

	require.Same(t, NullChunk(KindString, 2), dst.chunks[0])
	require.NotSame(t, NullChunk(KindString, 2), dst.chunks[1])
}

func TestRearrangeLabelSharesWholeFalseChunk(t *testing.T) {
	src := NewLabelBuilder(3)
	src.Append(false, 0)
	src.Append(false, 1)
	src.Append(true, 2)
	src.Finalize(3)

	// perm[0:2] = {0,1} are both false source rows -> dst's first chunk
	// must be the pool's shared FalseChunk, not a freshly built one.
	perm := []int{0, 1, 2, 1}
	dst := RearrangeLabel(src, perm, 2)

	require.Same(t, FalseChunk(2), dst.chunks[0])
	require.NotSame(t, FalseChunk(2), dst.chunks[1])
}

func TestRearrangePropertyTablePreservesNulls(t *testing.T) {
	tbl := NewPropertyTable(2)
	_, err := tbl.AppendValue("p", "a", KindString)
	require.NoError(t, err)
	tbl.Commit()
	tbl.Commit() // row 1 untouched -> null
	tbl.Finalize()

	perm := []int{1, 0}
	out := RearrangePropertyTable(tbl, perm, 2)
	col := out.Column("p")
	require.False(t, col.chunks[0].Valid[0])
	require.True(t, col.chunks[0].Valid[1])
	require.Equal(t, "a", col.chunks[0].Strings[1])
}
