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

// TestViewRoundTrip checks R2: View(A); View(B); View(A) ends back on
// tagset A, exercising the double-buffered TagSet/SelTags toggle.
func TestViewRoundTrip(t *testing.T) {
	w, _, m := newTestWM()
	m.TagSet[m.SelTags] = 1 // tag 1

	w.View(2) // tag 2
	if m.TagSet[m.SelTags] != 2 {
		t.Fatalf("after View(2), active tagset = %d, want 2", m.TagSet[m.SelTags])
	}

	w.View(1) // tag 1 again
	if m.TagSet[m.SelTags] != 1 {
		t.Fatalf("after View(1), active tagset = %d, want 1", m.TagSet[m.SelTags])
	}
}

// TestViewSameTagsetIsNoop checks that View() of the already-active tagset
// doesn't flip SelTags (which would otherwise surface stale state on the
// next genuinely different View call).
func TestViewSameTagsetIsNoop(t *testing.T) {
	w, _, m := newTestWM()
	m.TagSet[m.SelTags] = 1
	selBefore := m.SelTags

	w.View(1)

	if m.SelTags != selBefore {
		t.Fatalf("View of the active tagset flipped SelTags from %d to %d", selBefore, m.SelTags)
	}
}

// TestToggleViewRefusesEmptyTagset checks I6: XORing away every tag bit
// currently shown must leave the tagset untouched rather than going blank.
func TestToggleViewRefusesEmptyTagset(t *testing.T) {
	w, _, m := newTestWM()
	m.TagSet[m.SelTags] = 1

	w.ToggleView(1) // would clear the only visible tag

	if m.TagSet[m.SelTags] != 1 {
		t.Fatalf("ToggleView emptied the tagset: got %d, want unchanged 1", m.TagSet[m.SelTags])
	}
}

// TestToggleTagIdempotence checks R3: ToggleTag(x); ToggleTag(x) is the
// identity on the selected client's tags.
func TestToggleTagIdempotence(t *testing.T) {
	w, _, m := newTestWM()
	c := newTestClient(1, m)
	c.Tags = 1
	m.Sel = c

	w.ToggleTag(4)
	w.ToggleTag(4)

	if c.Tags != 1 {
		t.Fatalf("ToggleTag(x) twice left Tags = %d, want original 1", c.Tags)
	}
}

// TestToggleTagRefusesEmpty checks I6 on the per-client tag path: toggling
// off a client's only tag must leave it tagged rather than untagged.
func TestToggleTagRefusesEmpty(t *testing.T) {
	w, _, m := newTestWM()
	c := newTestClient(1, m)
	c.Tags = 2
	m.Sel = c

	w.ToggleTag(2)

	if c.Tags != 2 {
		t.Fatalf("ToggleTag emptied client tags: got %d, want unchanged 2", c.Tags)
	}
}
