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

// TestTileSingleClient matches a lone window with no size hints filling the
// usable area inset by the 10px gap on every side.
func TestTileSingleClient(t *testing.T) {
	w, _, m := newTestWM()
	m.GapPx = 10
	c := newTestClient(1, m)

	w.tile(m)

	assert.Equal(t, 10, c.X)
	assert.Equal(t, 10, c.Y)
	assert.Equal(t, 1900, c.W)
	assert.Equal(t, 1060, c.H)
}

// TestTileTwoClients matches a master/stack split at mfact=0.55 on a
// 1920-wide monitor with 10px gaps and zero-width borders.
func TestTileTwoClients(t *testing.T) {
	w, _, m := newTestWM()
	m.GapPx = 10
	m.MFact = 0.55
	m.NMaster = 1
	first := newTestClient(1, m)
	second := newTestClient(2, m)
	// attach() pushes to the head of the list, so second is now first in
	// tile order; reorder back to map-order (first mapped, first in list).
	detach(first)
	attach(first)

	w.tile(m)

	assert.Equal(t, [4]int{10, 10, 1046, 1060}, [4]int{first.X, first.Y, first.W, first.H}, "master tile")
	assert.Equal(t, [4]int{1066, 10, 844, 1060}, [4]int{second.X, second.Y, second.W, second.H}, "stack tile")
}

// TestArrangeHidesInvisibleClients checks that, after arrange, a client
// tagged out of view counts as invisible while one on the viewed tag stays
// visible.
func TestArrangeHidesInvisibleClients(t *testing.T) {
	w, _, m := newTestWM()
	m.TagSet[m.SelTags] = 1 // tag 1 visible
	visible := newTestClient(1, m)
	hidden := newTestClient(2, m)
	hidden.Tags = 2 // tag 2, not in the visible set

	w.arrange(m)

	assert.True(t, visible.visible(), "client tagged into the visible set should be visible")
	assert.False(t, hidden.visible(), "client tagged elsewhere should be invisible")
}
