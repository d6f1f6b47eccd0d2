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

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/pamvc/propgraph/internal/columnar"
	"github.com/pamvc/propgraph/internal/graphml"
	"github.com/pamvc/propgraph/internal/topology"
)

// Convert is the Assembly Façade (C8): the one public entry point.
// It streams r through the GraphML parser (C6), pads every column to
// its table's final row count (one goroutine per column), then runs the
// CSR finalizer (C7) and rearranges the edge tables into CSR edge-id
// order.
//
// Convert fails only on a non-positive opts.ChunkSize, a malformed XML
// stream, or a property value that cannot be coerced to its column's
// declared type (a second value for the same property on one element is
// reported with the same ErrTypeMismatch); every other recovered
// condition (an unrecognized element or attribute, a duplicate node id,
// a dangling edge, an unrecognized escape) is returned on
// GraphComponents.Warnings instead.
func Convert(r io.Reader, opts Options) (*GraphComponents, error) {
	if opts.ChunkSize <= 0 {
		return nil, fmt.Errorf("propgraph: ChunkSize must be positive, got %d", opts.ChunkSize)
	}

	p := graphml.NewParser(opts.ChunkSize)
	if err := p.Parse(r); err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	wg.Add(4)
	go func() { defer wg.Done(); p.NodeProperties().Finalize() }()
	go func() { defer wg.Done(); p.NodeLabels().Finalize() }()
	go func() { defer wg.Done(); p.EdgeProperties().Finalize() }()
	go func() { defer wg.Done(); p.EdgeTypes().Finalize() }()
	wg.Wait()

	csr := topology.Finalize(p.Topology())

	edgeProperties := columnar.RearrangePropertyTable(p.EdgeProperties(), csr.Perm, opts.ChunkSize)
	edgeTypes := columnar.RearrangeLabelTable(p.EdgeTypes(), csr.Perm, opts.ChunkSize)

	log.Printf("propgraph: converted %d nodes, %d edges, %d warnings",
		p.Topology().NumNodes(), p.Topology().NumEdges(), len(p.Warnings()))

	return &GraphComponents{
		NodeProperties: p.NodeProperties(),
		NodeLabels:     p.NodeLabels(),
		EdgeProperties: edgeProperties,
		EdgeTypes:      edgeTypes,
		Topology: Topology{
			OutIndices: csr.OutIndices,
			OutDests:   csr.OutDests,
		},
		Warnings: p.Warnings(),
	}, nil
}
