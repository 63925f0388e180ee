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

	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/assert"
)

// TestApplyRulesFloatsMatchingClass checks S4-style rule application: a
// window whose WM_CLASS matches a compiled-in floating rule starts
// floating.
func TestApplyRulesFloatsMatchingClass(t *testing.T) {
	w, fd, m := newTestWM()
	c := newTestClient(1, m)
	fd.classHint[c.Win] = [2]string{"Gimp", "gimp"}

	w.applyRules(c)

	assert.True(t, c.IsFloating, "window matching the Gimp rule should float")
}

// TestApplyRulesFallsBackToSelectedTags checks that a window matching no
// rule (or a rule that leaves no tag bit set) inherits its monitor's
// currently selected tagset instead of ending up tagless.
func TestApplyRulesFallsBackToSelectedTags(t *testing.T) {
	w, fd, m := newTestWM()
	m.TagSet[m.SelTags] = 1 << 3
	c := newTestClient(1, m)
	fd.classHint[c.Win] = [2]string{"SomeUnmatchedApp", "someunmatchedapp"}

	w.applyRules(c)

	assert.Equal(t, uint32(1<<3), c.Tags, "unmatched window should fall back to the monitor's active tagset")
}

// TestUpdateWindowTypeDialogFloats checks S4: a window announcing
// _NET_WM_WINDOW_TYPE_DIALOG is floated at map time.
func TestUpdateWindowTypeDialogFloats(t *testing.T) {
	w, fd, m := newTestWM()
	c := newTestClient(1, m)
	fd.atomProp[c.Win] = map[xproto.Atom]xproto.Atom{
		w.atoms.netWMWindowType: w.atoms.netWMWindowTypeDialog,
	}

	w.updateWindowType(c)

	assert.True(t, c.IsFloating, "dialog-typed window should float")
}

// TestUpdateWindowTypeFullscreenState checks S5: a window already carrying
// _NET_WM_STATE_FULLSCREEN at map time is put into fullscreen immediately.
func TestUpdateWindowTypeFullscreenState(t *testing.T) {
	w, fd, m := newTestWM()
	c := newTestClient(1, m)
	fd.atomProp[c.Win] = map[xproto.Atom]xproto.Atom{
		w.atoms.netWMState: w.atoms.netWMFullscreen,
	}

	w.updateWindowType(c)

	assert.True(t, c.IsFullscreen)
	assert.Equal(t, [4]int{m.MX, m.MY, m.MW, m.MH}, [4]int{c.X, c.Y, c.W, c.H}, "fullscreen geometry should fill the monitor")
}
