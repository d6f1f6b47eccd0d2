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

package propgraph_test

import (
	"strings"
	"testing"

	"github.com/pamvc/propgraph"
	"github.com/stretchr/testify/require"
)

func TestConvertTwoNodesOneEdgeScalarProperty(t *testing.T) {
	doc := `<graphml>
		<key id="w" for="edge" attr.name="weight" attr.type="double"/>
		<graph>
			<node id="a"/>
			<node id="b"/>
			<edge source="a" target="b"><data key="w">2.5</data></edge>
		</graph>
	</graphml>`

	out, err := propgraph.Convert(strings.NewReader(doc), propgraph.NewOptions())
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 1}, out.Topology.OutIndices)
	require.Equal(t, []uint32{1}, out.Topology.OutDests)
}

func TestConvertUnsortedEdgesRearrangesToCSROrder(t *testing.T) {
	doc := `<graphml>
		<key id="w" for="edge" attr.name="w" attr.type="string"/>
		<graph>
			<node id="a"/>
			<node id="b"/>
			<node id="c"/>
			<edge source="b" target="c"><data key="w">bc</data></edge>
			<edge source="a" target="b"><data key="w">ab</data></edge>
			<edge source="b" target="a"><data key="w">ba</data></edge>
		</graph>
	</graphml>`

	out, err := propgraph.Convert(strings.NewReader(doc), propgraph.NewOptions())
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 3, 3}, out.Topology.OutIndices)
	require.Equal(t, []uint32{1, 2, 0}, out.Topology.OutDests)
	require.Equal(t, "ab", edgeString(t, out, "w", 0))
	require.Equal(t, "bc", edgeString(t, out, "w", 1))
	require.Equal(t, "ba", edgeString(t, out, "w", 2))
}

func edgeString(t *testing.T, out *propgraph.GraphComponents, col string, row int) string {
	t.Helper()
	c := out.EdgeProperties.Column(col)
	require.NotNil(t, c)
	for _, chunk := range c.Chunks() {
		if row < chunk.Len() {
			return chunk.Strings[row]
		}
		row -= chunk.Len()
	}
	t.Fatalf("row %d out of range for column %s", row, col)
	return ""
}

func TestConvertDanglingEdgeSkipped(t *testing.T) {
	doc := `<graphml><graph>
		<node id="a"/>
		<edge source="a" target="ghost"/>
	</graph></graphml>`

	out, err := propgraph.Convert(strings.NewReader(doc), propgraph.NewOptions())
	require.NoError(t, err)
	require.Equal(t, []uint64{0}, out.Topology.OutIndices)
	require.Empty(t, out.Topology.OutDests)
	require.NotEmpty(t, out.Warnings)
}

func TestConvertZeroNodesZeroEdges(t *testing.T) {
	out, err := propgraph.Convert(strings.NewReader(`<graphml><graph></graph></graphml>`), propgraph.NewOptions())
	require.NoError(t, err)
	require.Empty(t, out.Topology.OutIndices)
	require.Empty(t, out.Topology.OutDests)
}

func TestConvertRejectsNonPositiveChunkSize(t *testing.T) {
	_, err := propgraph.Convert(strings.NewReader(`<graphml/>`), propgraph.Options{ChunkSize: 0})
	require.Error(t, err)
}

func TestConvertTypeMismatchIsFatal(t *testing.T) {
	doc := `<graphml>
		<key id="n" for="node" attr.name="n" attr.type="int"/>
		<graph>
			<node id="a"><data key="n">not-a-number</data></node>
		</graph>
	</graphml>`
	_, err := propgraph.Convert(strings.NewReader(doc), propgraph.NewOptions())
	require.ErrorIs(t, err, propgraph.ErrTypeMismatch)
}
