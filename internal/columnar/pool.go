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

// The null/false constant pool (C2). One immutable chunk per (Kind, length)
// pair is built lazily and cached so every caller asking for "the null
// chunk of this Kind and this length" gets back the identical pointer —
// the mechanism behind the "null sharing" invariant: every whole chunk that
// padding or rearrangement skips over is the pool's chunk, never a copy. A
// chunk whose nulls/falses were appended row by row into the in-progress
// buffer is flushed as its own chunk.
//
// Guarded by a mutex rather than left to C6's single-threaded parser
// because the finalize-all-columns phase and C7's rearrange phase (see
// rearrange.go) also ask the pool for constant chunks, concurrently, one
// goroutine per column.
var (
	poolMu      sync.Mutex
	nullChunks  = map[Kind]map[int]*PropertyChunk{}
	falseChunks = map[int]*LabelChunk{}
)

// NullChunk returns the shared immutable all-null chunk of the given Kind
// and length, building it on first request.
func NullChunk(kind Kind, length int) *PropertyChunk {
	poolMu.Lock()
	defer poolMu.Unlock()
	byLen, ok := nullChunks[kind]
	if !ok {
		byLen = map[int]*PropertyChunk{}
		nullChunks[kind] = byLen
	}
	if c, ok := byLen[length]; ok {
		return c
	}
	c := newPropertyBuffer(kind)
	for i := 0; i < length; i++ {
		c.appendNull()
	}
	byLen[length] = c
	return c
}

// FalseChunk returns the shared immutable all-false boolean chunk of the
// given length, building it on first request.
func FalseChunk(length int) *LabelChunk {
	poolMu.Lock()
	defer poolMu.Unlock()
	if c, ok := falseChunks[length]; ok {
		return c
	}
	c := &LabelChunk{Bools: make([]bool, length)}
	falseChunks[length] = c
	return c
}
