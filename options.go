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

package propgraph

// DefaultChunkSize is the default row count of every materialized column
// chunk and of every constant-pool chunk.
const DefaultChunkSize = 25000

// Options configures a call to Convert. The zero value is not usable
// directly: Convert rejects a zero ChunkSize with an error. Use NewOptions
// (or set ChunkSize explicitly).
type Options struct {
	// ChunkSize is the row count of every materialized column chunk.
	// Must be positive.
	ChunkSize int
}

// NewOptions returns Options with ChunkSize set to DefaultChunkSize,
// mirroring the teacher's flag-populated Options struct shape.
func NewOptions() Options {
	return Options{ChunkSize: DefaultChunkSize}
}
