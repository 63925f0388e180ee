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
	"github.com/jezek/xgb/xproto"

	"github.com/distatus/dtile/internal/config"
)

// ClickLocation classifies where a ButtonPress landed, dwm's Clk* enum.
type ClickLocation int

const (
	ClkRootWin ClickLocation = iota
	ClkTagBar
	ClkStatusText
	ClkWinTitle
	ClkClientWin
)

// Key is one configured keyboard binding.
type Key struct {
	Mod    uint16
	Keysym uint32
	Action func(w *WM, arg uint32)
	Arg    uint32
}

// Button is one configured pointer binding.
type Button struct {
	Click  ClickLocation
	Mask   uint16
	Button xproto.Button
	Action func(w *WM, arg uint32)
	Arg    uint32
}

// cleanMask strips Lock and the discovered numlock bit from state, keeping
// only the modifiers bindings are defined in terms of — dwm's CLEANMASK.
func (w *WM) cleanMask(state uint16) uint16 {
	return state &^ (config.LockMask | w.numlockMask) &
		(config.ShiftMask | config.CtrlMask | config.Mod1Mask | config.Mod2Mask | config.Mod3Mask | config.Mod4Mask | config.Mod5Mask)
}

// updateNumlockMask rediscovers which modifier bit the server currently
// assigns to Num_Lock, by scanning the modifier map for the keycode
// Num_Lock is bound to — dwm's updatenumlockmask(). Re-run through
// rebuildKeyTables at Setup and before the key regrab on a keyboard
// MappingNotify, since remapping can move it.
func (w *WM) updateNumlockMask(modmap [8][]xproto.Keycode, numLockKeycode xproto.Keycode) {
	w.numlockMask = 0
	for i, codes := range modmap {
		for _, kc := range codes {
			if kc == numLockKeycode {
				w.numlockMask = 1 << uint(i)
			}
		}
	}
}

// modifierVariants returns the four grab masks every key/button binding is
// registered under, so the binding still fires regardless of whether
// Caps Lock or Num Lock happen to be engaged — dwm's modifiers[] array in
// grabkeys/grabbuttons.
func (w *WM) modifierVariants() [4]uint16 {
	return [4]uint16{0, config.LockMask, w.numlockMask, w.numlockMask | config.LockMask}
}

// grabKeys ungrabs every key on the root window and regrabs the configured
// table across all numlock/capslock variants — dwm's grabkeys(). keycodeOf
// resolves a keysym to the keycode currently bound to it (threaded in
// rather than read from X directly here, so the function stays testable).
func (w *WM) grabKeys(keycodeOf func(keysym uint32) xproto.Keycode) {
	root := w.display.RootWindow()
	_ = w.display.UngrabAllKeys(root)
	variants := w.modifierVariants()
	for _, k := range w.keys {
		code := keycodeOf(k.Keysym)
		if code == 0 {
			continue
		}
		for _, v := range variants {
			_ = w.display.GrabKey(root, k.Mod|v, code)
		}
	}
}

// grabButtons (re)grabs pointer buttons on c: an unfocused client grabs any
// button (so a click both focuses it and is replayed to it), a focused
// client only grabs the configured client-window bindings — dwm's
// grabbuttons().
func (w *WM) grabButtons(c *Client, focused bool) {
	_ = w.display.UngrabAllButtons(c.Win)
	if !focused {
		_ = w.display.GrabButton(c.Win, 0, 0, true)
	}
	variants := w.modifierVariants()
	for _, b := range w.buttons {
		if b.Click != ClkClientWin {
			continue
		}
		for _, v := range variants {
			_ = w.display.GrabButton(c.Win, b.Mask|v, b.Button, false)
		}
	}
}

// comboView implements the "hold modifier, tap several tag keys" chord: the
// first tap replaces the tagset and opens the chord; subsequent taps (while
// combo stays true) OR further tags in, until a KeyRelease resets it —
// dwm's comboview().
func (w *WM) comboView(tagMask uint32) {
	if w.combo {
		w.SelMon.TagSet[w.SelMon.SelTags] |= tagMask
	} else {
		w.SelMon.SelTags ^= 1
		w.SelMon.TagSet[w.SelMon.SelTags] = tagMask
		w.combo = true
	}
	w.focus(nil)
	w.arrange(w.SelMon)
}

// comboTag is comboView's sibling for assigning tags to the selected
// client rather than changing the viewed tagset — dwm's combotag().
func (w *WM) comboTag(tagMask uint32) {
	if w.SelMon.Sel == nil {
		return
	}
	if w.combo {
		w.SelMon.Sel.Tags |= tagMask
	} else {
		w.SelMon.Sel.Tags = tagMask
		w.combo = true
	}
	w.focus(nil)
	w.arrange(w.SelMon)
}

// resetCombo ends the current chord. Called on any KeyRelease or
// ButtonRelease — dwm's keyrelease().
func (w *WM) resetCombo() {
	w.combo = false
}

// classifyClick figures out which region of the tag bar (or elsewhere) a
// ButtonPress on the bar window landed in, given the pixel width of each
// tag label and the status text — dwm's inline loop in buttonpress().
func classifyClick(clickX int, barWidth int, tagWidths []int, statusWidth int) (ClickLocation, uint32) {
	x := 0
	for i, tw := range tagWidths {
		x += tw
		if clickX < x {
			return ClkTagBar, 1 << uint(i)
		}
	}
	if clickX > barWidth-statusWidth {
		return ClkStatusText, 0
	}
	return ClkWinTitle, 0
}
