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

import "github.com/pamvc/propgraph/internal/diag"

// Sentinel errors returned by Convert. ErrParseFailure wraps an
// underlying XML reader error (fatal, propagated). ErrTypeMismatch wraps
// a property value that could not be coerced to its column's declared
// type (fatal: the data model forbids mixed-type columns).
var (
	ErrParseFailure = diag.ErrParseFailure
	ErrTypeMismatch = diag.ErrTypeMismatch
)

// WarningKind classifies a recoverable condition logged during
// conversion; the kinds are the constants below.
type WarningKind = diag.WarningKind

const (
	UnknownElement   = diag.UnknownElement
	UnknownAttribute = diag.UnknownAttribute
	DuplicateNodeID  = diag.DuplicateNodeID
	DanglingEdge     = diag.DanglingEdge
	UnknownEscape    = diag.UnknownEscape
)

// Warning is one recoverable condition surfaced from a Convert call.
type Warning = diag.Warning
