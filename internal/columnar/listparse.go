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

package columnar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pamvc/propgraph/internal/diag"
)

// escapeTable is the recognized backslash-escape set for string-list
// elements. Anything outside this set is a warn-and-pass-through: the
// backslash is dropped and the following character is emitted literally.
var escapeTable = map[byte]byte{
	'n':  '\n',
	'\\': '\\',
	'r':  '\r',
	'0':  0,
	'b':  '\b',
	'\'': '\'',
	'"':  '"',
	't':  '\t',
	'f':  '\f',
	'v':  '\v',
}

func stripBrackets(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return "", false
	}
	return s[1 : len(s)-1], true
}

// ParseStringList decodes a Neo4j-style bracketed list of double-quoted,
// backslash-escaped string fields, e.g. ["a","b\"c"]. Unrecognized escapes
// are reported as warnings and the escaped character is passed through
// literally.
//
// A malformed literal (missing brackets) is a fatal diag.ErrTypeMismatch,
// not a warn-and-fall-back-to-single-element-list recovery: a type-parse
// failure is always fatal here, never silently coerced.
func ParseStringList(raw string) ([]string, []diag.Warning, error) {
	body, ok := stripBrackets(raw)
	if !ok {
		return nil, nil, fmt.Errorf("%w: malformed list literal %q", diag.ErrTypeMismatch, raw)
	}
	var out []string
	var warnings []diag.Warning
	i, n := 0, len(body)
	for i < n {
		for i < n && (body[i] == ',' || body[i] == ' ' || body[i] == '\t') {
			i++
		}
		if i >= n {
			break
		}
		if body[i] != '"' {
			return nil, nil, fmt.Errorf("%w: expected quoted field in list %q", diag.ErrTypeMismatch, raw)
		}
		i++
		var field strings.Builder
		for i < n && body[i] != '"' {
			if body[i] == '\\' && i+1 < n {
				esc := body[i+1]
				if lit, known := escapeTable[esc]; known {
					field.WriteByte(lit)
				} else {
					warnings = append(warnings, diag.Warning{
						Kind:    diag.UnknownEscape,
						Message: fmt.Sprintf("unknown escape \\%c in string list", esc),
					})
					field.WriteByte(esc)
				}
				i += 2
				continue
			}
			field.WriteByte(body[i])
			i++
		}
		if i < n {
			i++ // closing quote
		}
		out = append(out, field.String())
	}
	return out, warnings, nil
}

func splitListElements(raw string) ([]string, error) {
	body, ok := stripBrackets(raw)
	if !ok {
		return nil, fmt.Errorf("%w: malformed list literal %q", diag.ErrTypeMismatch, raw)
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, nil
	}
	parts := strings.Split(body, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

// ParseInt64List parses a comma-separated bracketed list of integers.
func ParseInt64List(raw string) ([]int64, error) {
	parts, err := splitListElements(raw)
	if err != nil {
		return nil, err
	}
	out := make([]int64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", diag.ErrTypeMismatch, err)
		}
		out[i] = v
	}
	return out, nil
}

// ParseInt32List parses a comma-separated bracketed list of integers.
func ParseInt32List(raw string) ([]int32, error) {
	parts, err := splitListElements(raw)
	if err != nil {
		return nil, err
	}
	out := make([]int32, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", diag.ErrTypeMismatch, err)
		}
		out[i] = int32(v)
	}
	return out, nil
}

// ParseFloat64List parses a comma-separated bracketed list of floats.
func ParseFloat64List(raw string) ([]float64, error) {
	parts, err := splitListElements(raw)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", diag.ErrTypeMismatch, err)
		}
		out[i] = v
	}
	return out, nil
}

// ParseFloat32List parses a comma-separated bracketed list of floats.
func ParseFloat32List(raw string) ([]float32, error) {
	parts, err := splitListElements(raw)
	if err != nil {
		return nil, err
	}
	out := make([]float32, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", diag.ErrTypeMismatch, err)
		}
		out[i] = float32(v)
	}
	return out, nil
}

// ParseBooleanList parses a comma-separated bracketed list of booleans
// using the same leading-t/T convention as scalar booleans.
func ParseBooleanList(raw string) ([]bool, error) {
	parts, err := splitListElements(raw)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(parts))
	for i, p := range parts {
		out[i] = len(p) > 0 && (p[0] == 't' || p[0] == 'T')
	}
	return out, nil
}

// ParseBool applies the scalar boolean convention: the first byte t/T is
// true, anything else (including an empty string) is false.
func ParseBool(raw string) bool {
	return len(raw) > 0 && (raw[0] == 't' || raw[0] == 'T')
}
