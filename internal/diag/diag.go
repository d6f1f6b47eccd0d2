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

// Package diag holds the warning/error vocabulary shared by the columnar,
// topology, and graphml packages, kept separate from the root package so
// none of them need to import it back.
package diag

import "errors"

// WarningKind classifies a recoverable condition encountered while
// converting a document. Recoverable conditions are logged and the
// offending element, attribute, node, or edge is skipped; the conversion
// continues.
type WarningKind int

const (
	UnknownElement WarningKind = iota
	UnknownAttribute
	DuplicateNodeID
	DanglingEdge
	UnknownEscape
)

func (k WarningKind) String() string {
	switch k {
	case UnknownElement:
		return "UnknownElement"
	case UnknownAttribute:
		return "UnknownAttribute"
	case DuplicateNodeID:
		return "DuplicateNodeId"
	case DanglingEdge:
		return "DanglingEdge"
	case UnknownEscape:
		return "UnknownEscape"
	default:
		return "Unknown"
	}
}

// Warning is a single recoverable condition surfaced from conversion.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string {
	return w.Kind.String() + ": " + w.Message
}

// Sentinel errors for the two fatal conditions. ParseFailure propagates an
// underlying XML reader error; TypeMismatch indicates a property value was
// not coercible to its column's declared type, which corrupts the data
// model and is never silently coerced.
var (
	ErrParseFailure = errors.New("parse failure")
	ErrTypeMismatch = errors.New("type parse error")
)
