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
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"

	"github.com/distatus/dtile/internal/geom"
)

// motionRateLimitMS is the minimum gap between acted-on MotionNotify events
// during an interactive gesture, dwm's hardcoded 1000/60 (60Hz).
const motionRateLimitMS = 1000 / 60

// MoveMouse drags the selected client around under the pointer until the
// grabbed button is released — dwm's movemouse(). Refuses to run on a
// fullscreen client. ConfigureRequest/MapRequest events that arrive mid-drag
// are still serviced so other windows don't stall while the grab holds the
// server's attention.
func (w *WM) MoveMouse(_ uint32) {
	c := w.SelMon.Sel
	if c == nil || c.IsFullscreen {
		return
	}
	w.restack(w.SelMon)
	origX, origY := c.X, c.Y

	if err := w.display.GrabPointer(w.cursorMove); err != nil {
		return
	}
	defer func() { _ = w.display.UngrabPointer() }()

	startX, startY, err := w.display.QueryPointer(w.display.RootWindow())
	if err != nil {
		return
	}

	var lastTime xproto.Timestamp
	for {
		raw, ok := w.nextGestureEvent()
		if !ok {
			return
		}
		switch ev := raw.(type) {
		case xproto.ButtonReleaseEvent:
			w.settleGestureMonitor(c)
			return
		case xproto.MotionNotifyEvent:
			if ev.Time-lastTime <= motionRateLimitMS {
				continue
			}
			lastTime = ev.Time

			nx := origX + int(ev.RootX-startX)
			ny := origY + int(ev.RootY-startY)
			m := w.SelMon
			nx = geom.SnapEdge(nx, c.width(), m.WX, m.WW, w.Snap)
			ny = geom.SnapEdge(ny, c.height(), m.WY, m.WH, w.Snap)
			if !c.IsFloating && (absInt(nx-c.X) > w.Snap || absInt(ny-c.Y) > w.Snap) {
				w.ToggleFloating()
			}
			if c.IsFloating {
				w.resize(c, nx, ny, c.W, c.H, true)
			}
		}
	}
}

// ResizeMouse grows/shrinks the selected client from its bottom-right
// corner until the grabbed button is released — dwm's resizemouse().
func (w *WM) ResizeMouse(_ uint32) {
	c := w.SelMon.Sel
	if c == nil || c.IsFullscreen {
		return
	}
	w.restack(w.SelMon)

	if err := w.display.GrabPointer(w.cursorResize); err != nil {
		return
	}
	defer func() { _ = w.display.UngrabPointer() }()

	_ = w.display.WarpPointer(c.Win, int16(c.W+c.BW-1), int16(c.H+c.BW-1))

	var lastTime xproto.Timestamp
	for {
		raw, ok := w.nextGestureEvent()
		if !ok {
			return
		}
		switch ev := raw.(type) {
		case xproto.ButtonReleaseEvent:
			_ = w.display.WarpPointer(c.Win, int16(c.W+c.BW-1), int16(c.H+c.BW-1))
			w.settleGestureMonitor(c)
			return
		case xproto.MotionNotifyEvent:
			if ev.Time-lastTime <= motionRateLimitMS {
				continue
			}
			lastTime = ev.Time

			nw := max(int(ev.RootX)-c.X-2*c.BW+1, 1)
			nh := max(int(ev.RootY)-c.Y-2*c.BW+1, 1)
			m := w.SelMon
			within := c.Mon.WX+nw >= m.WX && c.Mon.WX+nw <= m.WX+m.WW &&
				c.Mon.WY+nh >= m.WY && c.Mon.WY+nh <= m.WY+m.WH
			if within && !c.IsFloating && (absInt(nw-c.W) > w.Snap || absInt(nh-c.H) > w.Snap) {
				w.ToggleFloating()
			}
			if c.IsFloating {
				w.resize(c, c.X, c.Y, nw, nh, true)
			}
		}
	}
}

// nextGestureEvent waits for the next event relevant to an interactive
// gesture, servicing ConfigureRequest/MapRequest inline via the normal
// dispatch table (so other clients aren't starved mid-drag) and returning
// only the events the gesture loop itself needs to act on.
func (w *WM) nextGestureEvent() (xgb.Event, bool) {
	conn := w.display.Raw()
	for {
		ev, err := conn.WaitForEvent()
		if err != nil {
			continue
		}
		if ev == nil {
			return nil, false
		}
		switch ev.(type) {
		case xproto.ConfigureRequestEvent, xproto.MapRequestEvent:
			w.dispatch(ev)
		case xproto.MotionNotifyEvent, xproto.ButtonReleaseEvent:
			return ev, true
		}
	}
}

// settleGestureMonitor reassigns c to whatever monitor its final position
// lands on, if it moved off SelMon — the tail shared by movemouse/
// resizemouse.
func (w *WM) settleGestureMonitor(c *Client) {
	if m := recttomon(w.Mons, w.SelMon, c.X, c.Y, c.W, c.H); m != w.SelMon {
		w.sendmon(c, m)
		w.SelMon = m
		w.focus(nil)
	}
}
