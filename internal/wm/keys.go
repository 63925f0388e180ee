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

// defaultKeys binds the compile-time keyboard grammar to WM actions,
// mirroring dwm's config.h keys[] table. Tag keys 1-9 use comboTag/
// comboView instead of plain Tag/View so holding Mod and tapping several
// digits accumulates a set (spec.md §4.7's combo chord).
func defaultKeys() []Key {
	ks := []Key{
		{Mod: config.ModKey, Keysym: config.XKP, Action: actionSpawn(config.RunnerCmd)},
		{Mod: config.ModKey, Keysym: config.XKReturn, Action: actionSpawn(config.TermCmd)},
		{Mod: config.ModKey, Keysym: config.XKU, Action: actionSpawn(config.BrowserCmd)},
		{Mod: config.ModKey | config.Mod1Mask, Keysym: config.XKL, Action: actionSpawn(config.LockCmd)},
		{Mod: config.ModKey, Keysym: config.XKZ, Action: actionSpawn(config.ZealCmd)},

		{Mod: config.ModKey, Keysym: config.XKJ, Action: func(w *WM, _ uint32) { w.FocusStack(1) }},
		{Mod: config.ModKey, Keysym: config.XKK, Action: func(w *WM, _ uint32) { w.FocusStack(-1) }},
		{Mod: config.ModKey, Keysym: config.XKI, Action: func(w *WM, _ uint32) { w.IncNMaster(1) }},
		{Mod: config.ModKey, Keysym: config.XKD, Action: func(w *WM, _ uint32) { w.IncNMaster(-1) }},
		{Mod: config.ModKey, Keysym: config.XKH, Action: func(w *WM, _ uint32) { w.SetMFact(-0.05) }},
		{Mod: config.ModKey, Keysym: config.XKL, Action: func(w *WM, _ uint32) { w.SetMFact(0.05) }},
		{Mod: config.ModKey | config.ShiftMask, Keysym: config.XKReturn, Action: func(w *WM, _ uint32) { w.Zoom() }},
		{Mod: config.ModKey, Keysym: config.XKSpace, Action: func(w *WM, _ uint32) { w.ToggleFloating() }},
		{Mod: config.ModKey, Keysym: config.XKF, Action: func(w *WM, _ uint32) { w.ToggleFullscreen() }},
		{Mod: config.ModKey, Keysym: config.XKQ, Action: func(w *WM, _ uint32) { w.KillClient() }},
		{Mod: config.ModKey | config.ShiftMask, Keysym: config.XKQ, Action: func(w *WM, _ uint32) { w.Quit() }},

		{Mod: config.ModKey, Keysym: config.XKPeriod, Action: func(w *WM, _ uint32) { w.FocusMon(1) }},
		{Mod: config.ModKey, Keysym: config.XKComma, Action: func(w *WM, _ uint32) { w.FocusMon(-1) }},
		{Mod: config.ModKey | config.ShiftMask, Keysym: config.XKPeriod, Action: func(w *WM, _ uint32) { w.TagMon(1) }},
		{Mod: config.ModKey | config.ShiftMask, Keysym: config.XKComma, Action: func(w *WM, _ uint32) { w.TagMon(-1) }},

		{Mod: config.ModKey, Keysym: config.XK0, Action: func(w *WM, _ uint32) { w.View(config.TagMask()) }},
		{Mod: config.ModKey | config.ShiftMask, Keysym: config.XK0, Action: func(w *WM, _ uint32) { w.Tag(config.TagMask()) }},
	}

	for i := range config.Tags {
		tagMask := uint32(1) << uint(i)
		keysym := tagDigitKeysym(i)
		ks = append(ks,
			Key{Mod: config.ModKey, Keysym: keysym, Arg: tagMask, Action: func(w *WM, arg uint32) { w.comboView(arg) }},
			Key{Mod: config.ModKey | config.ShiftMask, Keysym: keysym, Arg: tagMask, Action: func(w *WM, arg uint32) { w.comboTag(arg) }},
		)
	}
	return ks
}

// tagDigitKeysym maps a zero-based tag index to its keysym, for the 9
// compile-in tags (XK0 is reserved for the "view/assign all tags" binding).
func tagDigitKeysym(i int) uint32 {
	digits := []uint32{config.XK1, config.XK2, config.XK3, config.XK4, config.XK5, config.XK6, config.XK7, config.XK8, config.XK9}
	if i < len(digits) {
		return digits[i]
	}
	return 0
}

func actionSpawn(argv []string) func(w *WM, _ uint32) {
	return func(w *WM, _ uint32) { w.Spawn(argv) }
}

// defaultButtons mirrors dwm's config.h buttons[] table: Mod+left/right
// drag on a client window moves/resizes it, tag-bar clicks view or
// assign, middle-click on the title area zooms.
func defaultButtons() []Button {
	return []Button{
		{Click: ClkClientWin, Mask: config.ModKey, Button: xproto.ButtonIndex1, Action: func(w *WM, arg uint32) { w.MoveMouse(arg) }},
		{Click: ClkClientWin, Mask: config.ModKey, Button: xproto.ButtonIndex3, Action: func(w *WM, arg uint32) { w.ResizeMouse(arg) }},
		{Click: ClkTagBar, Mask: 0, Button: xproto.ButtonIndex1, Action: func(w *WM, arg uint32) { w.View(arg) }},
		{Click: ClkTagBar, Mask: 0, Button: xproto.ButtonIndex3, Action: func(w *WM, arg uint32) { w.ToggleView(arg) }},
		{Click: ClkTagBar, Mask: config.ModKey, Button: xproto.ButtonIndex1, Action: func(w *WM, arg uint32) { w.Tag(arg) }},
		{Click: ClkTagBar, Mask: config.ModKey, Button: xproto.ButtonIndex3, Action: func(w *WM, arg uint32) { w.ToggleTag(arg) }},
		{Click: ClkWinTitle, Mask: 0, Button: xproto.ButtonIndex2, Action: func(w *WM, _ uint32) { w.Zoom() }},
	}
}
