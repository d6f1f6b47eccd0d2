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

import "sync"

// LabelBuilder is the boolean chunked column builder used by the
// label/type table builder (C4). It is the boolean analogue of
// PropertyBuilder: false is its real default value, not a null marker, so
// there is no validity bitmap.
type LabelBuilder struct {
	chunkSize int
	chunks    []*LabelChunk
	buf       *LabelChunk
}

// NewLabelBuilder constructs an empty boolean column builder.
func NewLabelBuilder(chunkSize int) *LabelBuilder {
	return &LabelBuilder{chunkSize: chunkSize, buf: &LabelChunk{}}
}

// Len returns the column's current logical length. Every flushed chunk but
// the last is full-size; the last may be the short tail flushed by Finalize.
func (b *LabelBuilder) Len() int {
	n := b.buf.Len()
	if k := len(b.chunks); k > 0 {
		n += (k-1)*b.chunkSize + b.chunks[k-1].Len()
	}
	return n
}

// Chunks returns the flushed chunks, in order. Only valid after Finalize.
func (b *LabelBuilder) Chunks() []*LabelChunk {
	return b.chunks
}

func (b *LabelBuilder) flushIfFull() {
	if b.buf.Len() == b.chunkSize {
		b.chunks = append(b.chunks, b.buf)
		b.buf = &LabelChunk{}
	}
}

// PadTo appends false until the logical length equals t, sharing the
// pool's all-false chunk for every whole chunk skipped.
func (b *LabelBuilder) PadTo(t int) {
	n := t - b.Len()
	if n <= 0 {
		return
	}
	if b.buf.Len() > 0 {
		room := b.chunkSize - b.buf.Len()
		k := n
		if k > room {
			k = room
		}
		b.buf.Bools = append(b.buf.Bools, make([]bool, k)...)
		b.flushIfFull()
		n -= k
	}
	for n >= b.chunkSize {
		b.chunks = append(b.chunks, FalseChunk(b.chunkSize))
		n -= b.chunkSize
	}
	if n > 0 {
		b.buf.Bools = append(b.buf.Bools, make([]bool, n)...)
	}
}

// Append sets the row at position t to value. The caller must have
// already called PadTo(t).
func (b *LabelBuilder) Append(value bool, t int) {
	_ = t
	b.buf.Bools = append(b.buf.Bools, value)
	b.flushIfFull()
}

// Finalize pads to totalRows and flushes any nonempty in-progress buffer.
func (b *LabelBuilder) Finalize(totalRows int) {
	b.PadTo(totalRows)
	if b.buf.Len() > 0 {
		b.chunks = append(b.chunks, b.buf)
		b.buf = &LabelChunk{}
	}
}

// LabelTable is the label/type table builder (C4): one boolean column per
// distinct label or edge-type string, one-hot encoded per row. Used both
// for node labels (a row may mark several columns true) and for edge
// types (a row marks at most one).
type LabelTable struct {
	chunkSize int
	order     []string
	cols      map[string]*LabelBuilder
	rowCursor int
}

// NewLabelTable constructs an empty table with the given chunk size.
func NewLabelTable(chunkSize int) *LabelTable {
	return &LabelTable{chunkSize: chunkSize, cols: map[string]*LabelBuilder{}}
}

// RowCursor returns the number of rows committed so far.
func (t *LabelTable) RowCursor() int {
	return t.rowCursor
}

// Columns returns the column names in first-declared order.
func (t *LabelTable) Columns() []string {
	return t.order
}

// Column returns the named builder, or nil if it does not exist.
func (t *LabelTable) Column(name string) *LabelBuilder {
	return t.cols[name]
}

func (t *LabelTable) ensureColumn(name string) *LabelBuilder {
	if c, ok := t.cols[name]; ok {
		return c
	}
	c := NewLabelBuilder(t.chunkSize)
	c.PadTo(t.rowCursor)
	t.cols[name] = c
	t.order = append(t.order, name)
	return c
}

// MarkTrue ensures the named column exists, pads it to the row cursor,
// and marks the current row true. Marking the same column twice on one row
// is a no-op the second time.
func (t *LabelTable) MarkTrue(name string) {
	c := t.ensureColumn(name)
	if c.Len() > t.rowCursor {
		return
	}
	c.PadTo(t.rowCursor)
	c.Append(true, t.rowCursor)
}

// Commit advances the row cursor by one. Columns not marked true this row
// are left to be padded with false lazily.
func (t *LabelTable) Commit() {
	t.rowCursor++
}

// Finalize pads and flushes every column to the current row cursor, one
// goroutine per column — the "finalize-all-columns" phase of §5.
func (t *LabelTable) Finalize() {
	var wg sync.WaitGroup
	wg.Add(len(t.order))
	for _, name := range t.order {
		go func(name string) {
			defer wg.Done()
			t.cols[name].Finalize(t.rowCursor)
		}(name)
	}
	wg.Wait()
}
