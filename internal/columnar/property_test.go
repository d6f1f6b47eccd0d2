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

	"github.com/pamvc/propgraph/internal/diag"
	"github.com/stretchr/testify/require"
)

func TestPropertyBuilderAppendAndFlush(t *testing.T) {
	b := NewPropertyBuilder("weight", KindFloat64, 2)
	require.NoError(t, b.Append("2.5", 0))
	require.Equal(t, 1, b.Len())
	require.NoError(t, b.Append("3.5", 1))
	require.Equal(t, 2, b.Len())
	require.Len(t, b.chunks, 1, "buffer should flush once it reaches chunkSize")
	require.Equal(t, []float64{2.5, 3.5}, b.chunks[0].Float64s)
}

func TestPropertyBuilderTypeMismatchIsFatal(t *testing.T) {
	b := NewPropertyBuilder("n", KindInt64, 10)
	err := b.Append("not-a-number", 0)
	require.ErrorIs(t, err, diag.ErrTypeMismatch)
}

func TestPadToSharesWholeNullChunks(t *testing.T) {
	b := NewPropertyBuilder("p", KindString, 25000)
	// Scenario 3: first value appears at row 50007 under ChunkSize=25000:
	// two whole shared-null chunks, then a partial chunk of 7 nulls + value.
	b.PadTo(50007)
	require.NoError(t, b.Append("x", 50007))
	b.Finalize(50008)

	require.Len(t, b.chunks, 3)
	require.Same(t, NullChunk(KindString, 25000), b.chunks[0])
	require.Same(t, NullChunk(KindString, 25000), b.chunks[1])
	require.Equal(t, 8, b.chunks[2].Len())
	require.False(t, b.chunks[2].Valid[0])
	require.True(t, b.chunks[2].Valid[7])
	require.Equal(t, "x", b.chunks[2].Strings[7])
}

func TestLateDiscoveredColumnNullConstantOnly(t *testing.T) {
	tbl := NewPropertyTable(10)
	for i := 0; i < 20; i++ {
		tbl.Commit()
	}
	col := tbl.EnsureColumn("p", KindString)
	require.Equal(t, 20, col.Len())
	tbl.Finalize()
	require.Equal(t, 20, col.Len())
	for _, c := range col.Chunks() {
		require.Same(t, NullChunk(KindString, 10), c)
	}
}

func TestPropertyTableFirstDeclarationWins(t *testing.T) {
	tbl := NewPropertyTable(10)
	a := tbl.EnsureColumn("p", KindInt64)
	b := tbl.EnsureColumn("p", KindString)
	require.Same(t, a, b)
	require.Equal(t, KindInt64, a.Kind)
}

func TestPropertyTableRowAlignment(t *testing.T) {
	tbl := NewPropertyTable(10)
	_, err := tbl.AppendValue("a", "1", KindInt64)
	require.NoError(t, err)
	tbl.Commit()
	_, err = tbl.AppendValue("b", "2", KindInt64)
	require.NoError(t, err)
	tbl.Commit()
	tbl.Finalize()

	require.Equal(t, 2, tbl.Column("a").Len())
	require.Equal(t, 2, tbl.Column("b").Len())
}
