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

// Package propgraph converts a GraphML document describing a labeled,
// typed property graph into an in-memory columnar representation: a CSR
// topology plus four columnar tables (node properties, node labels, edge
// properties, edge types), with edge tables reordered into CSR edge-id
// order.
package propgraph

import (
	"github.com/pamvc/propgraph/internal/columnar"
)

// Kind is re-exported from internal/columnar so callers can inspect a
// PropertyTable's column schemas without reaching into internal packages.
type Kind = columnar.Kind

const (
	KindString      = columnar.KindString
	KindInt64       = columnar.KindInt64
	KindInt32       = columnar.KindInt32
	KindFloat64     = columnar.KindFloat64
	KindFloat32     = columnar.KindFloat32
	KindBool        = columnar.KindBool
	KindStringList  = columnar.KindStringList
	KindInt64List   = columnar.KindInt64List
	KindInt32List   = columnar.KindInt32List
	KindFloat64List = columnar.KindFloat64List
	KindFloat32List = columnar.KindFloat32List
	KindBoolList    = columnar.KindBoolList
)

// PropertyTable is a node- or edge-property table: name → typed, chunked
// column.
type PropertyTable = columnar.PropertyTable

// LabelTable is a node-label or edge-type table: one boolean column per
// distinct label/type string.
type LabelTable = columnar.LabelTable

// Topology is the CSR topology produced by the converter.
type Topology struct {
	// OutIndices holds, for each node dense index u, the exclusive end
	// offset of u's out-edges in OutDests.
	OutIndices []uint64
	// OutDests is the CSR destination list, length = edge count.
	OutDests []uint32
}

// GraphComponents is the result of a successful Convert call.
type GraphComponents struct {
	NodeProperties *PropertyTable
	NodeLabels     *LabelTable
	EdgeProperties *PropertyTable
	EdgeTypes      *LabelTable
	Topology       Topology

	// Warnings collects every recoverable condition encountered during
	// conversion (see WarningKind); Convert still returns a usable
	// GraphComponents alongside a nonempty Warnings slice.
	Warnings []Warning
}
