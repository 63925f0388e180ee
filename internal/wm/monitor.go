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

	"github.com/distatus/dtile/internal/geom"
)

// Monitor is one physical or logical screen.
type Monitor struct {
	Num int

	MX, MY, MW, MH int // screen geometry
	WX, WY, WW, WH int // usable geometry (screen minus bar strip)

	BH, BY         int
	BarWin, TrayWin xproto.Window

	MFact   float64
	NMaster int
	GapPx   int

	TagSet   [2]uint32
	SelTags  int

	Clients *Client // head of tile-order list
	Stack   *Client // head of focus-stack list
	Sel     *Client

	next *Monitor
}

// newMonitor mirrors dwm's createmon: a freshly discovered screen starts
// showing tag 1 with the compiled-in defaults.
func newMonitor(gapPx int, mfact float64, nmaster int) *Monitor {
	m := &Monitor{GapPx: gapPx, MFact: mfact, NMaster: nmaster}
	m.TagSet[0], m.TagSet[1] = 1, 1
	return m
}

// attach puts c at the head of its monitor's tile-order list.
func attach(c *Client) {
	c.next = c.Mon.Clients
	c.Mon.Clients = c
}

// detach removes c from its monitor's tile-order list.
func detach(c *Client) {
	pp := &c.Mon.Clients
	for *pp != nil && *pp != c {
		pp = &(*pp).next
	}
	*pp = c.next
	c.next = nil
}

// attachStack puts c at the head of its monitor's focus-stack list.
func attachStack(c *Client) {
	c.snext = c.Mon.Stack
	c.Mon.Stack = c
}

// detachStack removes c from its monitor's focus-stack list. If c was the
// selected client, the next visible stack entry (if any) becomes selected —
// dwm's detachstack reassigning mon->sel in the same pass.
func detachStack(c *Client) {
	pp := &c.Mon.Stack
	for *pp != nil && *pp != c {
		pp = &(*pp).snext
	}
	*pp = c.snext
	c.snext = nil

	if c.Mon.Sel == c {
		var t *Client
		for t = c.Mon.Stack; t != nil && !t.visible(); t = t.snext {
		}
		c.Mon.Sel = t
	}
}

// forEachClient iterates a monitor's tile-order list front to back.
func (m *Monitor) forEachClient(f func(*Client)) {
	for c := m.Clients; c != nil; c = c.next {
		f(c)
	}
}

// forEachStack iterates a monitor's focus-stack list front to back.
func (m *Monitor) forEachStack(f func(*Client)) {
	for c := m.Stack; c != nil; c = c.snext {
		f(c)
	}
}

// nextTiled returns c, or the first client at or after it that is tiled and
// visible, matching dwm's nexttiled.
func nextTiled(c *Client) *Client {
	for c != nil && (c.IsFloating || !c.visible()) {
		c = c.next
	}
	return c
}

// updateBarPos recomputes the usable rectangle after bh/by change.
func updateBarPos(m *Monitor) {
	m.WY = m.MY
	m.WH = m.MH - m.BH
	m.BY = m.WY
	m.WY = m.WY + m.BH
}

// recttomon returns the monitor whose rectangle has the largest intersection
// with (x,y,w,h), falling back to fallback (selmon) if none intersects.
func recttomon(mons *Monitor, fallback *Monitor, x, y, w, h int) *Monitor {
	best := fallback
	bestArea := 0
	r := geom.Rect{X: x, Y: y, W: w, H: h}
	for m := mons; m != nil; m = m.next {
		mr := geom.Rect{X: m.MX, Y: m.MY, W: m.MW, H: m.MH}
		if a := geom.Intersect(r, mr); a > bestArea {
			bestArea = a
			best = m
		}
	}
	return best
}

// dirToMon returns the monitor dir steps away from sel in the monitor list,
// wrapping around (dwm's dirtomon).
func dirToMon(mons, sel *Monitor, dir int) *Monitor {
	if dir > 0 {
		if sel.next != nil {
			return sel.next
		}
		return mons
	}
	if sel == mons {
		m := mons
		for m.next != nil {
			m = m.next
		}
		return m
	}
	m := mons
	for m.next != sel {
		m = m.next
	}
	return m
}
