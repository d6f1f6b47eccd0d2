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

func TestLabelTableMultiLabelOneHot(t *testing.T) {
	tbl := NewLabelTable(10)
	tbl.MarkTrue("Person")
	tbl.MarkTrue("Admin")
	tbl.Commit()
	tbl.Finalize()

	require.ElementsMatch(t, []string{"Person", "Admin"}, tbl.Columns())
	require.Equal(t, 1, tbl.Column("Person").Len())
	require.True(t, tbl.Column("Person").chunks[0].Bools[0])
	require.True(t, tbl.Column("Admin").chunks[0].Bools[0])
}

func TestLabelTablePadsFalseForUntouchedColumn(t *testing.T) {
	tbl := NewLabelTable(10)
	tbl.MarkTrue("Person")
	tbl.Commit() // row 0: Person

	tbl.Commit() // row 1: no labels, Person must pad false lazily

	tbl.MarkTrue("Person")
	tbl.Commit() // row 2: Person again

	tbl.Finalize()

	col := tbl.Column("Person")
	require.Equal(t, 3, col.Len())
	bools := col.chunks[0].Bools
	require.Equal(t, []bool{true, false, true}, bools)
}

func TestLabelBuilderSharesWholeFalseChunks(t *testing.T) {
	b := NewLabelBuilder(10)
	b.PadTo(20)
	b.Finalize(20)
	require.Len(t, b.chunks, 2)
	require.Same(t, FalseChunk(10), b.chunks[0])
	require.Same(t, FalseChunk(10), b.chunks[1])
}
