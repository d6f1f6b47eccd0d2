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

package topology

// Result is the output of Finalize (C7): the CSR offset array, the CSR
// destination array, and the permutation mapping each CSR slot back to
// the XML-order edge index it came from.
type Result struct {
	OutIndices []uint64 // length NumNodes; out_degree after prefix-sum
	OutDests   []uint32 // length NumEdges; CSR destination list
	Perm       []int    // length NumEdges; Perm[csrSlot] = xmlOrderEdgeIndex
}

// Finalize runs the CSR finalizer and edge permuter. It must run after
// every column of every edge table has been finalized to b.NumEdges()
// rows, since Perm is then used to rearrange those columns into CSR
// order.
//
// Step 1 prefix-sums out-degree into a new slice so OutIndices[u] is the
// exclusive-end offset of node u's out-edges. Step 2 walks edges in XML
// order, placing each into its CSR slot via a per-source write cursor —
// the same counting-sort shape as the teacher's newEdgeSet, generalized
// to also record which XML-order edge landed in each slot.
func Finalize(b *Builder) Result {
	nodes := b.NumNodes()
	edges := b.NumEdges()

	outIndices := make([]uint64, nodes)
	var sum uint64
	for u := 0; u < nodes; u++ {
		sum += b.outDegree[u]
		outIndices[u] = sum
	}

	outDests := make([]uint32, edges)
	perm := make([]int, edges)
	off := make([]uint64, nodes)
	for e := 0; e < edges; e++ {
		s := b.sources[e]
		var base uint64
		if s > 0 {
			base = outIndices[s-1]
		}
		slot := base + off[s]
		off[s]++
		outDests[slot] = b.destinations[e]
		perm[slot] = e
	}

	return Result{OutIndices: outIndices, OutDests: outDests, Perm: perm}
}
