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

// appendFromChunk copies row i of chunk directly into the buffer, without
// round-tripping through a string — the in-memory equivalent of §4.7's
// "read the original chunked column... and append accordingly".
func (b *PropertyBuilder) appendFromChunk(c *PropertyChunk, i int) {
	if !c.Valid[i] {
		b.buf.appendNull()
		b.flushIfFull()
		return
	}
	b.buf.Valid = append(b.buf.Valid, true)
	switch b.Kind {
	case KindString:
		b.buf.Strings = append(b.buf.Strings, c.Strings[i])
	case KindInt64:
		b.buf.Int64s = append(b.buf.Int64s, c.Int64s[i])
	case KindInt32:
		b.buf.Int32s = append(b.buf.Int32s, c.Int32s[i])
	case KindFloat64:
		b.buf.Float64s = append(b.buf.Float64s, c.Float64s[i])
	case KindFloat32:
		b.buf.Float32s = append(b.buf.Float32s, c.Float32s[i])
	case KindBool:
		b.buf.Bools = append(b.buf.Bools, c.Bools[i])
	case KindStringList:
		b.buf.StringLists = append(b.buf.StringLists, c.StringLists[i])
	case KindInt64List:
		b.buf.Int64Lists = append(b.buf.Int64Lists, c.Int64Lists[i])
	case KindInt32List:
		b.buf.Int32Lists = append(b.buf.Int32Lists, c.Int32Lists[i])
	case KindFloat64List:
		b.buf.Float64Lists = append(b.buf.Float64Lists, c.Float64Lists[i])
	case KindFloat32List:
		b.buf.Float32Lists = append(b.buf.Float32Lists, c.Float32Lists[i])
	case KindBoolList:
		b.buf.BoolLists = append(b.buf.BoolLists, c.BoolLists[i])
	}
	b.flushIfFull()
}

// segmentAllNull reports whether every row named by seg is null in src.
func segmentAllNull(src *PropertyBuilder, seg []int) bool {
	for _, xmlIdx := range seg {
		chunkIdx := xmlIdx / src.chunkSize
		within := xmlIdx % src.chunkSize
		if src.chunks[chunkIdx].Valid[within] {
			return false
		}
	}
	return true
}

// segmentAllFalse reports whether every row named by seg is false in src.
func segmentAllFalse(src *LabelBuilder, seg []int) bool {
	for _, xmlIdx := range seg {
		chunkIdx := xmlIdx / src.chunkSize
		within := xmlIdx % src.chunkSize
		if src.chunks[chunkIdx].Bools[within] {
			return false
		}
	}
	return true
}

// RearrangeProperty produces a new builder holding src's rows permuted by
// perm: output row j is src's row perm[j]. src must already be finalized.
//
// perm is walked in chunkSize-sized segments aligned to dst's own chunk
// boundaries (dst starts empty, so each segment begins with an empty
// buffer). A segment that is entirely null is pushed as the pool's shared
// NullChunk instead of being rebuilt row by row, so a whole-chunk null run
// surviving the permutation stays reference-identical to
// NullChunk(src.Kind, chunkSize) — the same sharing §4.1 gives the
// forward-append path.
func RearrangeProperty(src *PropertyBuilder, perm []int, chunkSize int) *PropertyBuilder {
	dst := NewPropertyBuilder(src.Name, src.Kind, chunkSize)
	for start := 0; start < len(perm); start += chunkSize {
		end := start + chunkSize
		if end > len(perm) {
			end = len(perm)
		}
		seg := perm[start:end]
		if len(seg) == chunkSize && segmentAllNull(src, seg) {
			dst.chunks = append(dst.chunks, NullChunk(src.Kind, chunkSize))
			continue
		}
		for _, xmlIdx := range seg {
			chunkIdx := xmlIdx / src.chunkSize
			within := xmlIdx % src.chunkSize
			dst.appendFromChunk(src.chunks[chunkIdx], within)
		}
	}
	dst.Finalize(len(perm))
	return dst
}

// RearrangeLabel is RearrangeProperty's boolean analogue for C4 columns,
// sharing FalseChunk for whole-chunk false runs the same way.
func RearrangeLabel(src *LabelBuilder, perm []int, chunkSize int) *LabelBuilder {
	dst := NewLabelBuilder(chunkSize)
	for start := 0; start < len(perm); start += chunkSize {
		end := start + chunkSize
		if end > len(perm) {
			end = len(perm)
		}
		seg := perm[start:end]
		if len(seg) == chunkSize && segmentAllFalse(src, seg) {
			dst.chunks = append(dst.chunks, FalseChunk(chunkSize))
			continue
		}
		for _, xmlIdx := range seg {
			chunkIdx := xmlIdx / src.chunkSize
			within := xmlIdx % src.chunkSize
			dst.Append(src.chunks[chunkIdx].Bools[within], dst.Len())
		}
	}
	dst.Finalize(len(perm))
	return dst
}

// RearrangePropertyTable rearranges every column of src by perm, one
// goroutine per column — the data-parallel-over-columns phase of §5,
// grounded on the teacher's sync.WaitGroup fan-out idiom.
func RearrangePropertyTable(src *PropertyTable, perm []int, chunkSize int) *PropertyTable {
	dst := NewPropertyTable(chunkSize)
	results := make([]*PropertyBuilder, len(src.order))
	var wg sync.WaitGroup
	wg.Add(len(src.order))
	for i, name := range src.order {
		go func(i int, name string) {
			defer wg.Done()
			results[i] = RearrangeProperty(src.cols[name], perm, chunkSize)
		}(i, name)
	}
	wg.Wait()
	for i, name := range src.order {
		dst.cols[name] = results[i]
		dst.order = append(dst.order, name)
	}
	dst.rowCursor = len(perm)
	return dst
}

// RearrangeLabelTable is RearrangePropertyTable's analogue for LabelTable.
func RearrangeLabelTable(src *LabelTable, perm []int, chunkSize int) *LabelTable {
	dst := NewLabelTable(chunkSize)
	results := make([]*LabelBuilder, len(src.order))
	var wg sync.WaitGroup
	wg.Add(len(src.order))
	for i, name := range src.order {
		go func(i int, name string) {
			defer wg.Done()
			results[i] = RearrangeLabel(src.cols[name], perm, chunkSize)
		}(i, name)
	}
	wg.Wait()
	for i, name := range src.order {
		dst.cols[name] = results[i]
		dst.order = append(dst.order, name)
	}
	dst.rowCursor = len(perm)
	return dst
}
