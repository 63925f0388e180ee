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
	"log"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/distatus/dtile/internal/config"
)

// textMetrics is the sliver of internal/drw that click classification needs:
// how wide a rendered label is. Setup installs internal/drw.Faces via
// SetMetrics; a nil metrics (as in tests that don't call Setup) just makes
// every bar click classify as ClkWinTitle.
type textMetrics interface {
	TextWidth(s string) int
}

// atoms caches every ICCCM/EWMH atom the manager refers to by name, resolved
// once in setup() (spec.md §6).
type atoms struct {
	wmProtocols, wmDelete, wmState, wmTakeFocus xproto.Atom
	wmNormalHints, wmHints, wmName, wmClass, wmTransientFor xproto.Atom

	netActiveWindow, netSupported, netWMName, netWMState xproto.Atom
	netWMCheck, netWMFullscreen                          xproto.Atom
	netWMWindowType, netWMWindowTypeDialog, netClientList xproto.Atom

	utf8String xproto.Atom
}

// WM is the process-wide context spec.md §9 describes as "global mutable
// state ... bundled in a single context value threaded through handlers".
// Everything in this package is a method on *WM so tests can construct one
// around a fake applier instead of a live X connection.
type WM struct {
	display applier
	atoms   atoms

	Mons   *Monitor
	SelMon *Monitor

	Running bool

	numlockMask uint16
	combo       bool

	wmCheckWin xproto.Window

	cursorNormal, cursorMove, cursorResize xproto.Cursor

	keys     []Key
	buttons  []Button
	handlers [numEventKinds]func(xgb.Event)

	screenW, screenH int
	lastMotionMon    *Monitor

	metrics    textMetrics
	statusText string

	keycodeToKeysymTbl map[xproto.Keycode]uint32
	keysymToKeycodeTbl map[uint32]xproto.Keycode

	// Mirrors of internal/config's compile-time knobs, copied in at New so
	// every other method reads them off the receiver like dwm reads
	// file-scope statics.
	BorderPx    int
	GapPx       int
	Snap        int
	MFact       float64
	NMaster     int
	ResizeHints bool
	AltBarClass string
}

// New constructs a WM bound to display, with the compile-time defaults from
// internal/config. It does not talk to X yet; call Setup for that.
func New(display applier) *WM {
	return &WM{
		display:     display,
		Running:     true,
		BorderPx:    config.BorderPx,
		GapPx:       config.GapPx,
		Snap:        config.Snap,
		MFact:       config.MFact,
		NMaster:     config.NMaster,
		ResizeHints: config.ResizeHints,
		AltBarClass: config.AltBarClass,
	}
}

// wintoclient finds the managed client owning win, across all monitors.
func (w *WM) wintoclient(win xproto.Window) *Client {
	for m := w.Mons; m != nil; m = m.next {
		for c := m.Clients; c != nil; c = c.next {
			if c.Win == win {
				return c
			}
		}
	}
	return nil
}

// wintomon returns the monitor win belongs to: the root window resolves via
// pointer position, bar/tray windows resolve directly, a managed client
// resolves to its monitor, and anything else falls back to SelMon.
func (w *WM) wintomon(win xproto.Window) *Monitor {
	if win == w.display.RootWindow() {
		if x, y, err := w.display.QueryPointer(win); err == nil {
			return recttomon(w.Mons, w.SelMon, int(x), int(y), 1, 1)
		}
	}
	for m := w.Mons; m != nil; m = m.next {
		if win == m.BarWin || win == m.TrayWin {
			return m
		}
	}
	if c := w.wintoclient(win); c != nil {
		return c.Mon
	}
	return w.SelMon
}

func (w *WM) logf(format string, args ...interface{}) {
	log.Printf("dtile: "+format, args...)
}

// SetMetrics installs the text-metrics collaborator (internal/drw.Faces in
// production, a stub in tests) used to size tag labels and status text for
// bar-click classification. Called once from Setup; a nil metrics leaves
// bar clicks falling back to ClkWinTitle, which is fine when AltBarClass
// draws its own bar pixels and dtile never measures anything.
func (w *WM) SetMetrics(m textMetrics) {
	w.metrics = m
}

// keycodeOf resolves a keysym to whatever keycode the server currently has
// it bound to, per the table built in Setup via GetKeyboardMapping. Returns
// 0 (no such keycode) if the symbol isn't on the current layout.
func (w *WM) keycodeOf(keysym uint32) xproto.Keycode {
	return w.keysymToKeycodeTbl[keysym]
}

// keycodeToKeysym is keycodeOf's inverse, used to resolve a KeyPress event's
// raw Detail field back to the symbol a binding was registered under.
func (w *WM) keycodeToKeysym(code xproto.Keycode) uint32 {
	return w.keycodeToKeysymTbl[code]
}

// configTags exposes internal/config's tag labels to packages that only
// import wm (dispatch.go's bar-click width lookup).
func configTags() []string {
	return config.Tags
}
