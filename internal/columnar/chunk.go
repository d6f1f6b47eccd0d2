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

// Package columnar implements the chunked columnar builders (C1), the
// shared null/false constant pool (C2), and the property/label table
// builders (C3, C4) that sit underneath the GraphML converter.
package columnar

// Kind tags the declared element type of a column: one scalar type or its
// list-of-scalar variant. Go has no single runtime-polymorphic array type,
// so every ColumnChunk below is a tagged struct carrying only the slice for
// its own Kind — the substitute for a virtual typed-builder hierarchy.
type Kind int

const (
	KindString Kind = iota
	KindInt64
	KindInt32
	KindFloat64
	KindFloat32
	KindBool
	KindStringList
	KindInt64List
	KindInt32List
	KindFloat64List
	KindFloat32List
	KindBoolList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt64:
		return "int64"
	case KindInt32:
		return "int32"
	case KindFloat64:
		return "float64"
	case KindFloat32:
		return "float32"
	case KindBool:
		return "bool"
	case KindStringList:
		return "string[]"
	case KindInt64List:
		return "int64[]"
	case KindInt32List:
		return "int32[]"
	case KindFloat64List:
		return "float64[]"
	case KindFloat32List:
		return "float32[]"
	case KindBoolList:
		return "bool[]"
	default:
		return "unknown"
	}
}

// IsList reports whether k is a list-of-scalar variant.
func (k Kind) IsList() bool {
	return k >= KindStringList
}

// PropertyChunk is one fixed-length, conceptually immutable slab of a
// property column. Once pushed onto a builder's chunk list it is never
// mutated again — the in-progress buffer that fills it is swapped out for
// a fresh one on flush (see property.go), never reused in place.
type PropertyChunk struct {
	Kind  Kind
	Valid []bool

	Strings  []string
	Int64s   []int64
	Int32s   []int32
	Float64s []float64
	Float32s []float32
	Bools    []bool

	StringLists  [][]string
	Int64Lists   [][]int64
	Int32Lists   [][]int32
	Float64Lists [][]float64
	Float32Lists [][]float32
	BoolLists    [][]bool
}

// Len reports the chunk's row count (equal across every slice it uses).
func (c *PropertyChunk) Len() int {
	return len(c.Valid)
}

func newPropertyBuffer(kind Kind) *PropertyChunk {
	return &PropertyChunk{Kind: kind}
}

// appendNull appends one null row to the buffer, keeping every per-Kind
// slice in lockstep with Valid so direct indexing by row stays valid.
func (c *PropertyChunk) appendNull() {
	c.Valid = append(c.Valid, false)
	switch c.Kind {
	case KindString:
		c.Strings = append(c.Strings, "")
	case KindInt64:
		c.Int64s = append(c.Int64s, 0)
	case KindInt32:
		c.Int32s = append(c.Int32s, 0)
	case KindFloat64:
		c.Float64s = append(c.Float64s, 0)
	case KindFloat32:
		c.Float32s = append(c.Float32s, 0)
	case KindBool:
		c.Bools = append(c.Bools, false)
	case KindStringList:
		c.StringLists = append(c.StringLists, nil)
	case KindInt64List:
		c.Int64Lists = append(c.Int64Lists, nil)
	case KindInt32List:
		c.Int32Lists = append(c.Int32Lists, nil)
	case KindFloat64List:
		c.Float64Lists = append(c.Float64Lists, nil)
	case KindFloat32List:
		c.Float32Lists = append(c.Float32Lists, nil)
	case KindBoolList:
		c.BoolLists = append(c.BoolLists, nil)
	}
}

// LabelChunk is the boolean analogue of PropertyChunk used by the one-hot
// label/type table builder (C4). It has no validity bitmap: false is a
// real value here, not a null marker.
type LabelChunk struct {
	Bools []bool
}

func (c *LabelChunk) Len() int {
	return len(c.Bools)
}
