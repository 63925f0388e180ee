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

package wm

import "testing"

// TestApplySizeHintsIdempotent checks I7: running applySizeHints twice on
// the geometry it just produced is a no-op the second time.
func TestApplySizeHintsIdempotent(t *testing.T) {
	_, _, m := newTestWM()
	c := newTestClient(1, m)
	c.MinW, c.MinH = 100, 80
	c.IncW, c.IncH = 10, 10
	c.BaseW, c.BaseH = 100, 80

	x, y, w, h := 10, 10, 533, 427
	c.applySizeHints(&x, &y, &w, &h, false, 1920, 1080, 0, true)
	x1, y1, w1, h1 := x, y, w, h
	c.X, c.Y, c.W, c.H = x1, y1, w1, h1 // simulate resizeClient committing the first pass

	changed := c.applySizeHints(&x, &y, &w, &h, false, 1920, 1080, 0, true)

	if changed {
		t.Fatalf("applySizeHints on its own output reported a change: (%d,%d,%d,%d) -> (%d,%d,%d,%d)",
			x1, y1, w1, h1, x, y, w, h)
	}
	if x != x1 || y != y1 || w != w1 || h != h1 {
		t.Fatalf("applySizeHints not idempotent: first pass (%d,%d,%d,%d), second pass (%d,%d,%d,%d)",
			x1, y1, w1, h1, x, y, w, h)
	}
}

// TestApplySizeHintsRespectsMinimum checks that a request smaller than
// MinW/MinH is clamped up to the minimum.
func TestApplySizeHintsRespectsMinimum(t *testing.T) {
	_, _, m := newTestWM()
	c := newTestClient(1, m)
	c.MinW, c.MinH = 200, 150

	x, y, w, h := 0, 0, 50, 40
	c.applySizeHints(&x, &y, &w, &h, false, 1920, 1080, 0, true)

	if w < 200 || h < 150 {
		t.Fatalf("applySizeHints allowed geometry below minimum: (%d,%d), want >= (200,150)", w, h)
	}
}
