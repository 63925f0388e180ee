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

// TestComboViewChordsTags covers S6: holding the chord modifier and tapping
// two tag keys without releasing OR's both tags into the viewed set, rather
// than replacing it on the second tap.
func TestComboViewChordsTags(t *testing.T) {
	w, _, m := newTestWM()
	m.TagSet[m.SelTags] = 4 // some unrelated tag showing beforehand

	w.comboView(1) // first tap of the chord: replaces the tagset
	w.comboView(2) // second tap, still chorded: ORs in

	if got := m.TagSet[m.SelTags]; got != 1|2 {
		t.Fatalf("comboView chord produced tagset %d, want %d", got, 1|2)
	}

	w.resetCombo()
	w.comboView(4) // chord released: next tap replaces again

	if got := m.TagSet[m.SelTags]; got != 4 {
		t.Fatalf("comboView after resetCombo produced tagset %d, want 4", got)
	}
}

// TestComboTagChordsClientTags mirrors TestComboViewChordsTags for the
// per-client tag assignment path.
func TestComboTagChordsClientTags(t *testing.T) {
	w, _, m := newTestWM()
	c := newTestClient(1, m)
	m.Sel = c

	w.comboTag(1)
	w.comboTag(2)

	if c.Tags != 1|2 {
		t.Fatalf("comboTag chord left Tags = %d, want %d", c.Tags, 1|2)
	}
}

// TestCleanMaskStripsLockAndNumlock checks that Lock and the discovered
// numlock bit are dropped from a raw event state, leaving only the bits
// bindings are matched against.
func TestCleanMaskStripsLockAndNumlock(t *testing.T) {
	w, _, _ := newTestWM()
	w.numlockMask = 1 << 4 // pretend Mod2 carries Num_Lock on this server

	raw := uint16(1<<6) | uint16(1<<1) | w.numlockMask // Mod4 | Lock | NumLock
	got := w.cleanMask(raw)

	if got != 1<<6 {
		t.Fatalf("cleanMask(%#x) = %#x, want %#x (Mod4 only)", raw, got, uint16(1<<6))
	}
}

// TestClassifyClickRegions checks the tag-bar hit-testing used by
// ButtonPress handling: a click inside a tag label's pixel span reports
// that tag, a click past the status text reports ClkStatusText, and
// anything else in between falls through to ClkWinTitle.
func TestClassifyClickRegions(t *testing.T) {
	tagWidths := []int{20, 20, 20} // three 20px tag labels
	barWidth := 200
	statusWidth := 50

	loc, tag := classifyClick(5, barWidth, tagWidths, statusWidth)
	if loc != ClkTagBar || tag != 1<<0 {
		t.Fatalf("click in first tag = (%v,%d), want (ClkTagBar,1)", loc, tag)
	}

	loc, _ = classifyClick(45, barWidth, tagWidths, statusWidth)
	if loc != ClkTagBar {
		t.Fatalf("click in third tag = %v, want ClkTagBar", loc)
	}

	loc, _ = classifyClick(180, barWidth, tagWidths, statusWidth)
	if loc != ClkStatusText {
		t.Fatalf("click past status boundary = %v, want ClkStatusText", loc)
	}

	loc, _ = classifyClick(100, barWidth, tagWidths, statusWidth)
	if loc != ClkWinTitle {
		t.Fatalf("click between tags and status = %v, want ClkWinTitle", loc)
	}
}
