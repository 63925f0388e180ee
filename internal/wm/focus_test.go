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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestZoomPromotesSelectedClient maps three windows and zooms while focus is
// on the middle one: it should become master, with the others left in stack
// order (first, third).
func TestZoomPromotesSelectedClient(t *testing.T) {
	w, _, m := newTestWM()
	newTestClient(3, m)
	second := newTestClient(2, m)
	newTestClient(1, m)
	// attach() pushes to head each time, so list order is now 1, 2, 3.

	m.Sel = second
	w.zoom()

	assert.Equal(t, second, m.Clients, "zoom should promote the selection to master")

	order := []int{}
	for c := m.Clients; c != nil; c = c.next {
		order = append(order, int(c.Win))
	}
	assert.Equal(t, []int{2, 1, 3}, order, "tile order after zoom")
}

// TestSetFullscreenRoundTrip checks R1: toggling fullscreen on then off
// restores floating state, border width and geometry.
func TestSetFullscreenRoundTrip(t *testing.T) {
	w, _, m := newTestWM()
	c := newTestClient(1, m)
	// The lone tiled client's own tile slot, so the re-arrange that follows
	// fullscreen-off lands it back where it started.
	c.X, c.Y, c.W, c.H = 10, 10, 1896, 1056
	c.BW = 2
	c.IsFloating = false

	w.setfullscreen(c, true)

	assert.True(t, c.IsFullscreen)
	assert.Equal(t, 0, c.BW)
	assert.Equal(t, [4]int{m.MX, m.MY, m.MW, m.MH}, [4]int{c.X, c.Y, c.W, c.H}, "fullscreen geometry should fill the monitor")

	w.setfullscreen(c, false)

	assert.False(t, c.IsFullscreen)
	assert.False(t, c.IsFloating)
	assert.Equal(t, 2, c.BW)
	assert.Equal(t, [4]int{10, 10, 1896, 1056}, [4]int{c.X, c.Y, c.W, c.H}, "geometry should be restored")
}

// TestDetachStackReassignsSelection checks that removing the selected
// client from the focus stack promotes the next visible stack entry.
func TestDetachStackReassignsSelection(t *testing.T) {
	_, _, m := newTestWM()
	a := newTestClient(1, m)
	b := newTestClient(2, m)
	m.Sel = b // b is head of stack (attached last)

	detachStack(b)

	assert.Equal(t, a, m.Sel, "detachStack should fall back to the remaining visible client")
}
