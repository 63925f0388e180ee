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
	"strings"

	"github.com/distatus/dtile/internal/config"
)

// applyRules matches c's class/instance/title against config.Rules in
// order, OR-ing matching tags into c.Tags, applying the floating flag and
// relocating to a named monitor — dwm's applyrules(). If no rule leaves any
// tag bit set, c falls back to its monitor's currently selected tagset.
func (w *WM) applyRules(c *Client) {
	c.IsFloating = false
	c.Tags = 0

	class, instance, err := w.display.GetClassHint(c.Win)
	if err != nil || class == "" {
		class = "broken"
	}
	if instance == "" {
		instance = "broken"
	}

	for _, r := range config.Rules {
		if r.Title != "" && !strings.Contains(c.Name, r.Title) {
			continue
		}
		if r.Class != "" && !strings.Contains(class, r.Class) {
			continue
		}
		if r.Instance != "" && !strings.Contains(instance, r.Instance) {
			continue
		}
		c.IsFloating = r.Floating
		c.Tags |= r.Tags
		if r.Monitor >= 0 {
			for m := w.Mons; m != nil; m = m.next {
				if m.Num == r.Monitor {
					c.Mon = m
					break
				}
			}
		}
	}

	if c.Tags&config.TagMask() != 0 {
		c.Tags &= config.TagMask()
	} else {
		c.Tags = c.Mon.TagSet[c.Mon.SelTags]
	}
}

// wmNormalHintsFlags, matching Xlib's XSizeHints.flags bit layout (ICCCM
// 4.1.2.3); the wire property is 18 CARDINALs in this exact field order.
const (
	flagPMinSize    = 1 << 4
	flagPMaxSize    = 1 << 5
	flagPResizeInc  = 1 << 6
	flagPAspect     = 1 << 7
	flagPBaseSize   = 1 << 8
)

// updateSizeHints refreshes c's cached WM_NORMAL_HINTS fields, mirroring
// dwm's updatesizehints().
func (w *WM) updateSizeHints(c *Client) {
	vals, _, err := w.display.GetProperty32(c.Win, w.atoms.wmNormalHints, 18)
	var flags uint32
	get := func(i int) int {
		if i < len(vals) {
			return int(int32(vals[i]))
		}
		return 0
	}
	if err == nil && len(vals) > 0 {
		flags = vals[0]
	}

	if flags&flagPBaseSize != 0 {
		c.BaseW, c.BaseH = get(15), get(16)
	} else if flags&flagPMinSize != 0 {
		c.BaseW, c.BaseH = get(5), get(6)
	} else {
		c.BaseW, c.BaseH = 0, 0
	}

	if flags&flagPResizeInc != 0 {
		c.IncW, c.IncH = get(9), get(10)
	} else {
		c.IncW, c.IncH = 0, 0
	}

	if flags&flagPMaxSize != 0 {
		c.MaxW, c.MaxH = get(7), get(8)
	} else {
		c.MaxW, c.MaxH = 0, 0
	}

	if flags&flagPMinSize != 0 {
		c.MinW, c.MinH = get(5), get(6)
	} else if flags&flagPBaseSize != 0 {
		c.MinW, c.MinH = get(15), get(16)
	} else {
		c.MinW, c.MinH = 0, 0
	}

	if flags&flagPAspect != 0 {
		minX, minY := get(11), get(12)
		maxX, maxY := get(13), get(14)
		if minX != 0 {
			c.MinA = float64(minY) / float64(minX)
		}
		if maxY != 0 {
			c.MaxA = float64(maxX) / float64(maxY)
		}
	} else {
		c.MinA, c.MaxA = 0, 0
	}

	c.IsFixed = c.MaxW != 0 && c.MaxH != 0 && c.MaxW == c.MinW && c.MaxH == c.MinH
}

// wmHintsFlags, Xlib's XWMHints.flags bits.
const (
	flagInputHint   = 1 << 0
	flagXUrgencyHint = 1 << 8
)

// updateWMHints refreshes c's urgency and input-focus-acceptance flags from
// WM_HINTS — dwm's updatewmhints(). If c is the current selection and
// already carries the urgency bit, the bit is cleared and written back
// (a client shouldn't stay marked urgent once it's focused).
func (w *WM) updateWMHints(c *Client) {
	vals, _, err := w.display.GetProperty32(c.Win, w.atoms.wmHints, 9)
	if err != nil || len(vals) < 2 {
		return
	}
	flags := vals[0]
	if c == w.SelMon.Sel && flags&flagXUrgencyHint != 0 {
		flags &^= flagXUrgencyHint
		_ = w.display.ChangeProperty32(0, c.Win, w.atoms.wmHints, w.atoms.wmHints, append([]uint32{flags}, vals[1:]...))
	} else {
		c.IsUrgent = flags&flagXUrgencyHint != 0
	}
	if flags&flagInputHint != 0 {
		c.NeverFocus = vals[1] == 0
	} else {
		c.NeverFocus = false
	}
}

// updateTitle refreshes c.Name from _NET_WM_NAME, falling back to WM_NAME,
// matching dwm's fallback order in updatetitle().
func (w *WM) updateTitle(c *Client) {
	name, err := w.display.GetTextProperty(c.Win, w.atoms.netWMName)
	if err != nil || name == "" {
		name, _ = w.display.GetTextProperty(c.Win, w.atoms.wmName)
	}
	if name == "" {
		name = "broken"
	}
	c.Name = name
}

// updateStatus reads the root window's _NET_WM_NAME, falling back to
// WM_NAME (the xsetroot convention
// status-setting tools use to publish a status line), and keeps it around
// for tag-bar click-region classification (§4.7's ClkStatusText). dtile
// renders no bar itself: an alt-bar process owns the pixels, this just
// needs to know how wide the text is.
func (w *WM) updateStatus() {
	name, err := w.display.GetTextProperty(w.display.RootWindow(), w.atoms.netWMName)
	if err != nil || name == "" {
		name, _ = w.display.GetTextProperty(w.display.RootWindow(), w.atoms.wmName)
	}
	w.statusText = name
}

// updateWindowType applies the EWMH fullscreen and dialog hints a window
// announces about itself at map time — dwm's updatewindowtype().
func (w *WM) updateWindowType(c *Client) {
	state, _ := w.display.GetAtomProperty(c.Win, w.atoms.netWMState)
	wtype, _ := w.display.GetAtomProperty(c.Win, w.atoms.netWMWindowType)
	if state == w.atoms.netWMFullscreen {
		w.setfullscreen(c, true)
	}
	if wtype == w.atoms.netWMWindowTypeDialog {
		c.IsFloating = true
	}
}
