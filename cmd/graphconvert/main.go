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

// Command graphconvert is a thin CLI front-end over propgraph.Convert.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/pamvc/propgraph"
)

func main() {
	chunkSize := flag.Int("chunksize", propgraph.DefaultChunkSize, "row count per materialized column chunk")
	flag.Parse()
	args := flag.Args()

	switch {
	case len(args) == 0:
		log.Fatal("Missing graphml filename")
	case len(args) > 1:
		log.Fatal("Extra args following graphml filename")
	}

	f, err := os.Open(args[0])
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	opts := propgraph.Options{ChunkSize: *chunkSize}
	components, err := propgraph.Convert(f, opts)
	if err != nil {
		log.Fatal(err)
	}

	for _, w := range components.Warnings {
		log.Printf("warning: %s", w)
	}
	log.Printf("nodes=%d edges=%d", len(components.Topology.OutIndices), len(components.Topology.OutDests))
}
