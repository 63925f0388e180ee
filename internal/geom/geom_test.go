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

package geom

import "testing"

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want int
	}{
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 10, 10}, 0},
		{"identical", Rect{0, 0, 1920, 1080}, Rect{0, 0, 1920, 1080}, 1920 * 1080},
		{"partial", Rect{0, 0, 100, 100}, Rect{50, 50, 100, 100}, 50 * 50},
		{"touching edges", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersect(tt.a, tt.b); got != tt.want {
				t.Errorf("Intersect(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := Intersect(tt.b, tt.a); got != tt.want {
				t.Errorf("Intersect is not symmetric: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUniqueHeads(t *testing.T) {
	raw := []Rect{
		{0, 0, 1920, 1080},
		{1920, 0, 1920, 1080},
		{0, 0, 1920, 1080}, // duplicate of the first
	}
	got := UniqueHeads(raw)
	if len(got) != 2 {
		t.Fatalf("UniqueHeads returned %d heads, want 2", len(got))
	}
	if got[0].Rect != raw[0] || got[1].Rect != raw[1] {
		t.Errorf("UniqueHeads did not preserve first-seen order: %v", got)
	}
}

func TestHeadsEqual(t *testing.T) {
	a := []Head{{Rect{0, 0, 100, 100}}}
	b := []Head{{Rect{0, 0, 100, 100}}}
	c := []Head{{Rect{0, 0, 200, 100}}}
	if !HeadsEqual(a, b) {
		t.Errorf("expected equal head lists to compare equal")
	}
	if HeadsEqual(a, c) {
		t.Errorf("expected different head lists to compare unequal")
	}
	if HeadsEqual(a, nil) {
		t.Errorf("expected different-length head lists to compare unequal")
	}
}

func TestSnapEdge(t *testing.T) {
	// within snap distance of the left edge -> snaps to it
	if got := SnapEdge(15, 200, 0, 1000, 32); got != 0 {
		t.Errorf("SnapEdge left = %d, want 0", got)
	}
	// within snap distance of the right edge -> snaps so it ends flush
	if got := SnapEdge(790, 200, 0, 1000, 32); got != 800 {
		t.Errorf("SnapEdge right = %d, want 800", got)
	}
	// far from both edges -> unchanged
	if got := SnapEdge(400, 200, 0, 1000, 32); got != 400 {
		t.Errorf("SnapEdge middle = %d, want 400 (unchanged)", got)
	}
}
