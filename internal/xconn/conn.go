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

// Package xconn is dtile's Display Adapter (spec.md §2): a thin layer over
// the X connection providing open/close, atom interning, property
// read/write, grab/ungrab, configure/map, and X error classification. No
// error handler is installed: errors reach callers through Check() and
// WaitForEvent, and IsBenign/Describe classify them.
// Nothing in internal/wm talks to jezek/xgb or jezek/xgbutil directly except
// through this package, the same way gobar.go threads a single *xgbutil.XUtil
// through Bar rather than letting callers open their own connections.
package xconn

import (
	"fmt"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/jezek/xgbutil"
	"github.com/jezek/xgbutil/xinerama"
	"github.com/jezek/xgbutil/xwindow"

	"github.com/distatus/dtile/internal/geom"
)

// Conn wraps the X connection and the small amount of cached state (interned
// atoms, root window, screen size) every other component needs.
type Conn struct {
	X    *xgbutil.XUtil
	Root xproto.Window

	atoms map[string]xproto.Atom
}

// Open connects to the X display named by the DISPLAY environment variable
// (xgbutil.NewConn's behavior, exactly as gobar.go's main does it).
func Open() (*Conn, error) {
	X, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("xconn: open display: %w", err)
	}
	return &Conn{
		X:     X,
		Root:  X.RootWin(),
		atoms: make(map[string]xproto.Atom),
	}, nil
}

// Close tears down the X connection.
func (c *Conn) Close() {
	c.X.Conn().Close()
}

// Raw returns the underlying transport, for the few call sites (the event
// loop, cursor construction) that need it directly.
func (c *Conn) Raw() *xgb.Conn {
	return c.X.Conn()
}

// RootWindow returns the root window id, satisfying internal/wm's applier
// interface without exposing the Root field itself to that package.
func (c *Conn) RootWindow() xproto.Window {
	return c.Root
}

// PollForEvent returns the next already-queued event without blocking, or
// (nil, nil) if none is pending. restack uses this to drain spurious
// EnterNotify events a raise provokes, dwm's `while
// (XCheckMaskEvent(dpy, EnterWindowMask, &ev));`.
func (c *Conn) PollForEvent() (xgb.Event, error) {
	return c.X.Conn().PollForEvent()
}

// ScreenSize returns the root window's current width/height, the same call
// gobar.NewBar.create uses (xwindow.RootGeometry) to size bar windows that
// span the whole screen.
func (c *Conn) ScreenSize() (w, h int) {
	geom := xwindow.RootGeometry(c.X)
	return geom.Width(), geom.Height()
}

// Heads reports each distinct physical monitor's geometry as
// (x, y, width, height), the same xinerama.PhysicalHeads call gobar.go's
// Bar.create uses to place a bar window per screen. Duplicate rectangles
// (some Xinerama setups report a mirrored head twice) are collapsed with
// geom.UniqueHeads, mirroring dwm's isuniquegeom filter in updategeom.
func (c *Conn) Heads() ([][4]int, error) {
	raw, err := xinerama.PhysicalHeads(c.X)
	if err != nil {
		return nil, fmt.Errorf("xconn: query heads: %w", err)
	}
	rects := make([]geom.Rect, len(raw))
	for i, h := range raw {
		rects[i] = geom.Rect{X: h.X(), Y: h.Y(), W: h.Width(), H: h.Height()}
	}
	unique := geom.UniqueHeads(rects)
	out := make([][4]int, len(unique))
	for i, h := range unique {
		out[i] = [4]int{h.X, h.Y, h.W, h.H}
	}
	return out, nil
}

// Atom interns name, caching the result. Every EWMH/ICCCM property name
// dtile uses funnels through here so a property atom is only ever looked up
// from the server once per process lifetime.
func (c *Conn) Atom(name string) (xproto.Atom, error) {
	if a, ok := c.atoms[name]; ok {
		return a, nil
	}
	reply, err := xproto.InternAtom(c.X.Conn(), false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("xconn: intern atom %q: %w", name, err)
	}
	c.atoms[name] = reply.Atom
	return reply.Atom, nil
}

// MustAtom is Atom but for the fixed set of atoms resolved once at setup
// time, where a lookup failure is a fatal startup error (spec.md §7.4).
func (c *Conn) MustAtom(name string) xproto.Atom {
	a, err := c.Atom(name)
	if err != nil {
		panic(err)
	}
	return a
}
