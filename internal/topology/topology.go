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

// Package topology implements the topology builder (C5) and the CSR
// finalizer / edge permuter (C7).
//
// Grounded on the teacher's graph.go: NewGraph's counting-sort pass over
// edges (tally out-degree, prefix-sum into offsets, place each edge by a
// per-source write cursor) is the same shape as the CSR finalizer here,
// generalized to record a reusable edge permutation rather than only the
// destination array.
package topology

// Builder is the topology builder (C5): a node-string-id → dense-index
// map, per-source out-degree counter, and the unordered (source,
// destination) edge list in XML insertion order.
type Builder struct {
	nodeIndex    map[string]uint32
	outDegree    []uint64
	sources      []uint32
	destinations []uint32
}

// NewBuilder constructs an empty topology builder.
func NewBuilder() *Builder {
	return &Builder{nodeIndex: map[string]uint32{}}
}

// NumNodes returns the number of dense node indices assigned so far.
func (b *Builder) NumNodes() int {
	return len(b.outDegree)
}

// NumEdges returns the number of edges accepted so far.
func (b *Builder) NumEdges() int {
	return len(b.sources)
}

// HasNode reports whether id has already been assigned a dense index.
func (b *Builder) HasNode(id string) bool {
	_, ok := b.nodeIndex[id]
	return ok
}

// AddNode assigns the next dense index to id. It returns (index, true) on
// success, or (0, false) if id was already seen — in which case the
// caller must drop the node and all of its data per the DuplicateNodeId
// policy.
func (b *Builder) AddNode(id string) (uint32, bool) {
	if _, ok := b.nodeIndex[id]; ok {
		return 0, false
	}
	idx := uint32(len(b.outDegree))
	b.nodeIndex[id] = idx
	b.outDegree = append(b.outDegree, 0)
	return idx, true
}

// AddEdge appends an edge from srcID to dstID in XML insertion order. It
// returns false, without mutating state, if either endpoint is
// unresolved — the DanglingEdge case, which must not advance the edge
// row cursor.
func (b *Builder) AddEdge(srcID, dstID string) bool {
	s, ok := b.nodeIndex[srcID]
	if !ok {
		return false
	}
	d, ok := b.nodeIndex[dstID]
	if !ok {
		return false
	}
	b.sources = append(b.sources, s)
	b.destinations = append(b.destinations, d)
	b.outDegree[s]++
	return true
}
