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
	"fmt"
	"strconv"
	"sync"

	"github.com/pamvc/propgraph/internal/diag"
)

// PropertyBuilder is the chunked column builder (C1) for one typed
// property column: a vector of already-flushed chunks plus an
// in-progress buffer of length 0..chunkSize.
type PropertyBuilder struct {
	Name      string
	Kind      Kind
	chunkSize int
	chunks    []*PropertyChunk
	buf       *PropertyChunk
}

// NewPropertyBuilder constructs an empty builder of the given declared
// Kind. Declared type is fixed at construction; it is never changed later
// (first declaration wins, enforced by the owning PropertyTable).
func NewPropertyBuilder(name string, kind Kind, chunkSize int) *PropertyBuilder {
	return &PropertyBuilder{
		Name:      name,
		Kind:      kind,
		chunkSize: chunkSize,
		buf:       newPropertyBuffer(kind),
	}
}

// Len returns the column's current logical length. Every flushed chunk but
// the last is full-size; the last may be the short tail flushed by Finalize.
func (b *PropertyBuilder) Len() int {
	n := b.buf.Len()
	if k := len(b.chunks); k > 0 {
		n += (k-1)*b.chunkSize + b.chunks[k-1].Len()
	}
	return n
}

// Chunks returns the flushed chunks, in order. Only valid after Finalize.
func (b *PropertyBuilder) Chunks() []*PropertyChunk {
	return b.chunks
}

func (b *PropertyBuilder) flushIfFull() {
	if b.buf.Len() == b.chunkSize {
		b.chunks = append(b.chunks, b.buf)
		b.buf = newPropertyBuffer(b.Kind)
	}
}

// PadTo appends nulls until the logical length equals T, reusing the
// shared null constant for every whole chunk skipped and only touching
// the buffer row-by-row for the partial head/tail (§4.1's null-fill
// algorithm).
func (b *PropertyBuilder) PadTo(t int) {
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
		for i := 0; i < k; i++ {
			b.buf.appendNull()
		}
		b.flushIfFull()
		n -= k
	}
	for n >= b.chunkSize {
		b.chunks = append(b.chunks, NullChunk(b.Kind, b.chunkSize))
		n -= b.chunkSize
	}
	for i := 0; i < n; i++ {
		b.buf.appendNull()
	}
}

// Append parses raw against the declared Kind and appends one valid row
// at logical position t. The caller must have already called PadTo(t).
func (b *PropertyBuilder) Append(raw string, t int) error {
	if got := b.Len(); got != t {
		return fmt.Errorf("%w: column %s: append at %d but length is %d (PadTo not called)", diag.ErrTypeMismatch, b.Name, t, got)
	}
	switch b.Kind {
	case KindString:
		b.buf.Strings = append(b.buf.Strings, raw)
		b.buf.Valid = append(b.buf.Valid, true)
	case KindInt64:
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: column %s: %v", diag.ErrTypeMismatch, b.Name, err)
		}
		b.buf.Int64s = append(b.buf.Int64s, v)
		b.buf.Valid = append(b.buf.Valid, true)
	case KindInt32:
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: column %s: %v", diag.ErrTypeMismatch, b.Name, err)
		}
		b.buf.Int32s = append(b.buf.Int32s, int32(v))
		b.buf.Valid = append(b.buf.Valid, true)
	case KindFloat64:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%w: column %s: %v", diag.ErrTypeMismatch, b.Name, err)
		}
		b.buf.Float64s = append(b.buf.Float64s, v)
		b.buf.Valid = append(b.buf.Valid, true)
	case KindFloat32:
		v, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return fmt.Errorf("%w: column %s: %v", diag.ErrTypeMismatch, b.Name, err)
		}
		b.buf.Float32s = append(b.buf.Float32s, float32(v))
		b.buf.Valid = append(b.buf.Valid, true)
	case KindBool:
		b.buf.Bools = append(b.buf.Bools, ParseBool(raw))
		b.buf.Valid = append(b.buf.Valid, true)
	case KindStringList:
		vals, _, err := ParseStringList(raw)
		if err != nil {
			return fmt.Errorf("column %s: %w", b.Name, err)
		}
		b.buf.StringLists = append(b.buf.StringLists, vals)
		b.buf.Valid = append(b.buf.Valid, true)
	case KindInt64List:
		vals, err := ParseInt64List(raw)
		if err != nil {
			return fmt.Errorf("column %s: %w", b.Name, err)
		}
		b.buf.Int64Lists = append(b.buf.Int64Lists, vals)
		b.buf.Valid = append(b.buf.Valid, true)
	case KindInt32List:
		vals, err := ParseInt32List(raw)
		if err != nil {
			return fmt.Errorf("column %s: %w", b.Name, err)
		}
		b.buf.Int32Lists = append(b.buf.Int32Lists, vals)
		b.buf.Valid = append(b.buf.Valid, true)
	case KindFloat64List:
		vals, err := ParseFloat64List(raw)
		if err != nil {
			return fmt.Errorf("column %s: %w", b.Name, err)
		}
		b.buf.Float64Lists = append(b.buf.Float64Lists, vals)
		b.buf.Valid = append(b.buf.Valid, true)
	case KindFloat32List:
		vals, err := ParseFloat32List(raw)
		if err != nil {
			return fmt.Errorf("column %s: %w", b.Name, err)
		}
		b.buf.Float32Lists = append(b.buf.Float32Lists, vals)
		b.buf.Valid = append(b.buf.Valid, true)
	case KindBoolList:
		vals, err := ParseBooleanList(raw)
		if err != nil {
			return fmt.Errorf("column %s: %w", b.Name, err)
		}
		b.buf.BoolLists = append(b.buf.BoolLists, vals)
		b.buf.Valid = append(b.buf.Valid, true)
	}
	b.flushIfFull()
	return nil
}

// AppendListWarnings re-parses a string-list value purely to surface the
// warnings ParseStringList produced, without re-mutating the builder. The
// table builder calls this once per string-list append alongside Append,
// since Append itself discards warnings to keep its error-only signature
// uniform across Kinds.
func (b *PropertyBuilder) AppendListWarnings(raw string) []diag.Warning {
	if b.Kind != KindStringList {
		return nil
	}
	_, warnings, err := ParseStringList(raw)
	if err != nil {
		return nil
	}
	return warnings
}

// Finalize pads to totalRows and flushes any nonempty in-progress buffer.
func (b *PropertyBuilder) Finalize(totalRows int) {
	b.PadTo(totalRows)
	if b.buf.Len() > 0 {
		b.chunks = append(b.chunks, b.buf)
		b.buf = newPropertyBuffer(b.Kind)
	}
}

// PropertyTable is the property table builder (C3): a name → column
// mapping dispatching typed or string-fallback appends, sharing one
// monotonically increasing row cursor across all its columns.
type PropertyTable struct {
	chunkSize int
	order     []string
	cols      map[string]*PropertyBuilder
	rowCursor int
}

// NewPropertyTable constructs an empty table with the given chunk size.
func NewPropertyTable(chunkSize int) *PropertyTable {
	return &PropertyTable{chunkSize: chunkSize, cols: map[string]*PropertyBuilder{}}
}

// RowCursor returns the number of rows committed so far.
func (t *PropertyTable) RowCursor() int {
	return t.rowCursor
}

// Columns returns the column names in first-declared order.
func (t *PropertyTable) Columns() []string {
	return t.order
}

// Column returns the named builder, or nil if it does not exist.
func (t *PropertyTable) Column(name string) *PropertyBuilder {
	return t.cols[name]
}

// EnsureColumn returns the named column, creating it with the given Kind
// (padded up to the current row cursor) on first use. Later calls for the
// same name are idempotent: the originally declared Kind always wins,
// matching GraphML's <key> header convention.
func (t *PropertyTable) EnsureColumn(name string, kind Kind) *PropertyBuilder {
	if c, ok := t.cols[name]; ok {
		return c
	}
	c := NewPropertyBuilder(name, kind, t.chunkSize)
	c.PadTo(t.rowCursor)
	t.cols[name] = c
	t.order = append(t.order, name)
	return c
}

// AppendValue ensures the named column exists with kind (first-declaration
// wins), pads it up to the row cursor, and appends raw at the row cursor.
func (t *PropertyTable) AppendValue(name, raw string, kind Kind) ([]diag.Warning, error) {
	c := t.EnsureColumn(name, kind)
	c.PadTo(t.rowCursor)
	var warnings []diag.Warning
	if c.Kind == KindStringList {
		warnings = c.AppendListWarnings(raw)
	}
	if err := c.Append(raw, t.rowCursor); err != nil {
		return warnings, err
	}
	return warnings, nil
}

// Commit advances the row cursor by one, closing out the current row.
// Columns untouched by this row are not padded here; padding happens
// lazily on their next append or at Finalize.
func (t *PropertyTable) Commit() {
	t.rowCursor++
}

// Finalize pads and flushes every column to the current row cursor, one
// goroutine per column — the "finalize-all-columns" phase of §5.
func (t *PropertyTable) Finalize() {
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
