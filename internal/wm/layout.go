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

// tile runs the master/stack layout over m's tiled, visible clients —
// dwm's tile(), unchanged save for Go naming. Master column clients stack
// vertically on the left (width mfact of the usable area once there are
// more clients than nmaster), remaining clients stack vertically on the
// right.
func (w *WM) tile(m *Monitor) {
	var ordered []*Client
	for c := nextTiled(m.Clients); c != nil; c = nextTiled(c.next) {
		ordered = append(ordered, c)
	}
	n := len(ordered)
	if n == 0 {
		return
	}

	var mw int
	if n > m.NMaster {
		if m.NMaster > 0 {
			mw = int(float64(m.WW) * m.MFact)
		}
	} else {
		mw = m.WW - m.GapPx
	}

	my, ty := m.GapPx, m.GapPx
	nm := min(n, m.NMaster)
	for i, c := range ordered {
		if i < m.NMaster {
			h := (m.WH-my)/(nm-i) - m.GapPx
			w.resize(c, m.WX+m.GapPx, m.WY+my, mw-2*c.BW-m.GapPx, h-2*c.BW, false)
			if my+c.height() < m.WH {
				my += c.height() + m.GapPx
			}
		} else {
			h := (m.WH-ty)/(n-i) - m.GapPx
			w.resize(c, m.WX+mw+m.GapPx, m.WY+ty, m.WW-mw-2*c.BW-2*m.GapPx, h-2*c.BW, false)
			if ty+c.height() < m.WH {
				ty += c.height() + m.GapPx
			}
		}
	}
}

// resize clamps (x,y,w,h) through the client's size hints and, if anything
// changed, pushes the new geometry to X through resizeClient — dwm's
// resize(), keeping its "did it change" gate: when applySizeHints reports
// no change, no resizeClient call is made.
func (w *WM) resize(c *Client, x, y, width, height int, interact bool) {
	sw, sh := w.display.ScreenSize()
	if !c.applySizeHints(&x, &y, &width, &height, interact, sw, sh, w.barHeight(c.Mon), w.respectSizeHints(c)) {
		return
	}
	w.resizeClient(c, x, y, width, height)
}

func (w *WM) respectSizeHints(c *Client) bool {
	return w.ResizeHints || c.IsFloating
}

func (w *WM) barHeight(m *Monitor) int {
	if m == nil {
		return 0
	}
	return m.BH
}

// resizeClient unconditionally applies geometry, the primitive every other
// placement path (fullscreen, floating restore, tile) funnels through.
func (w *WM) resizeClient(c *Client, x, y, width, height int) {
	c.OldX, c.OldY, c.OldW, c.OldH = c.X, c.Y, c.W, c.H
	c.X, c.Y, c.W, c.H = x, y, width, height
	_ = w.display.MoveResizeWindow(c.Win, int32(x), int32(y), uint32(width), uint32(height))
	_ = w.display.SetBorderWidth(c.Win, uint32(c.BW))
	_ = w.display.Configure(c.Win, int16(x), int16(y), uint16(width), uint16(height), uint16(c.BW))
	_ = w.display.Sync()
}

// showhide walks the focus-stack top to bottom, showing visible clients
// (and re-resizing floating ones, since hidden clients may have been moved
// while off-screen) and parking invisible ones off to the left, mirroring
// dwm's recursive showhide(). Like dwm, it recurses: visible clients are
// shown on the way down the stack, hidden ones are parked on the way back
// up, bottom of the stack first.
func (w *WM) showhide(c *Client) {
	if c == nil {
		return
	}
	if c.visible() {
		_ = w.display.MoveWindow(c.Win, int32(c.X), int32(c.Y))
		if c.IsFloating && !c.IsFullscreen {
			w.resize(c, c.X, c.Y, c.W, c.H, false)
		}
		w.showhide(c.snext)
	} else {
		w.showhide(c.snext)
		_ = w.display.MoveWindow(c.Win, int32(-2*c.width()), int32(c.Y))
	}
}

// arrange re-runs the layout for m (or every monitor if m is nil): hide
// clients that left the current view and retile; a single monitor is also
// restacked, while the nil (every monitor) case does not restack.
func (w *WM) arrange(m *Monitor) {
	if m != nil {
		w.showhide(m.Stack)
	} else {
		for mm := w.Mons; mm != nil; mm = mm.next {
			w.showhide(mm.Stack)
		}
	}
	if m != nil {
		w.tile(m)
		w.restack(m)
	} else {
		for mm := w.Mons; mm != nil; mm = mm.next {
			w.tile(mm)
		}
	}
}
