// dtile
//
// Copyright (C) 2026 The dtile Authors
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the "Software"),
// to deal in the Software without restriction, including without limitation
// the rights to use, copy, modify, merge, publish, distribute, sublicense,
// and/or sell copies of the Software, and to permit persons to whom the
// Software is furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included
// in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES
// OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM,
// DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE
// OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package drw

import "testing"

func TestParseSize(t *testing.T) {
	tests := []struct {
		def      string
		wantName string
		wantSize float64
	}{
		{"DejaVu Sans Mono:12", "DejaVu Sans Mono", 12},
		{"DejaVu Sans Mono", "DejaVu Sans Mono", 12},
		{"Foo:bogus", "Foo", 12},
	}
	for _, tt := range tests {
		i := -1
		for j := len(tt.def) - 1; j >= 0; j-- {
			if tt.def[j] == ':' {
				i = j
				break
			}
		}
		name, size := parseSize(tt.def, i)
		if name != tt.wantName || size != tt.wantSize {
			t.Errorf("parseSize(%q) = (%q, %v), want (%q, %v)", tt.def, name, size, tt.wantName, tt.wantSize)
		}
	}
}
