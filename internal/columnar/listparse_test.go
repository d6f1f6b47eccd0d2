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
	"testing"

	"github.com/pamvc/propgraph/internal/diag"
	"github.com/stretchr/testify/require"
)

func TestParseStringListBasic(t *testing.T) {
	vals, warnings, err := ParseStringList(`["a","b"]`)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, []string{"a", "b"}, vals)
}

func TestParseStringListEscapes(t *testing.T) {
	vals, warnings, err := ParseStringList(`["a\"b","c\nd"]`)
	require.NoError(t, err)
	require.Empty(t, warnings)
	require.Equal(t, []string{`a"b`, "c\nd"}, vals)
}

func TestParseStringListUnknownEscapePassesThroughLiteral(t *testing.T) {
	vals, warnings, err := ParseStringList(`["a\qb"]`)
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	require.Equal(t, diag.UnknownEscape, warnings[0].Kind)
	require.Equal(t, []string{"aqb"}, vals)
}

func TestParseInt64List(t *testing.T) {
	vals, err := ParseInt64List("[1,2,3]")
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, vals)
}

func TestParseBooleanList(t *testing.T) {
	vals, err := ParseBooleanList("[true,false,T,x]")
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true, false}, vals)
}

func TestParseBool(t *testing.T) {
	require.True(t, ParseBool("true"))
	require.True(t, ParseBool("T"))
	require.False(t, ParseBool(""))
	require.False(t, ParseBool("false"))
}
