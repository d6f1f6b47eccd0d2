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

package graphml

import "github.com/pamvc/propgraph/internal/columnar"

// KeyDef is the accumulated state of one <key> element: the property or
// label/type column it declares, grounded on the original's KeyGraphML.
type KeyDef struct {
	ID   string
	For  string // "node" or "edge"
	Name string
	Kind columnar.Kind
}

// ExtractType maps a <key>'s attr.type/attr.list pair to a columnar.Kind.
// attr.list, when present, overrides attr.type and marks the column as a
// list variant. An unrecognized attr.type falls back to KindString and
// reports unknown=true — the source's "warn, treat as string" policy,
// preserved here per the resolved Open Question (see SPEC_FULL.md §3.1).
func ExtractType(attrType, attrList string) (kind columnar.Kind, unknown bool) {
	base := attrType
	isList := false
	if attrList != "" {
		base = attrList
		isList = true
	}
	switch base {
	case "string", "":
		kind = columnar.KindString
	case "long":
		kind = columnar.KindInt64
	case "int":
		kind = columnar.KindInt32
	case "double":
		kind = columnar.KindFloat64
	case "float":
		kind = columnar.KindFloat32
	case "boolean":
		kind = columnar.KindBool
	default:
		kind = columnar.KindString
		unknown = true
	}
	if isList {
		switch kind {
		case columnar.KindString:
			kind = columnar.KindStringList
		case columnar.KindInt64:
			kind = columnar.KindInt64List
		case columnar.KindInt32:
			kind = columnar.KindInt32List
		case columnar.KindFloat64:
			kind = columnar.KindFloat64List
		case columnar.KindFloat32:
			kind = columnar.KindFloat32List
		case columnar.KindBool:
			kind = columnar.KindBoolList
		}
	}
	return kind, unknown
}
