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

package xconn

import (
	"encoding/binary"

	"github.com/jezek/xgb/xproto"
)

// Configure sends a synthetic ConfigureNotify to win reporting its current
// geometry, matching dwm's configure() — clients that moved without a size
// change still need to be told their border width didn't change.
func (c *Conn) Configure(win xproto.Window, x, y int16, w, h uint16, bw uint16) error {
	ev := xproto.ConfigureNotifyEvent{
		Event:            win,
		Window:           win,
		AboveSibling:     0,
		X:                x,
		Y:                y,
		Width:            w,
		Height:           h,
		BorderWidth:      bw,
		OverrideRedirect: false,
	}
	return xproto.SendEventChecked(c.X.Conn(), false, win, xproto.EventMaskStructureNotify, string(ev.Bytes())).Check()
}

// MoveResizeWindow repositions and resizes win in one request.
func (c *Conn) MoveResizeWindow(win xproto.Window, x, y int32, w, h uint32) error {
	return xproto.ConfigureWindowChecked(
		c.X.Conn(), win,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(x), uint32(y), w, h},
	).Check()
}

// SetBorderWidth changes only win's border width.
func (c *Conn) SetBorderWidth(win xproto.Window, bw uint32) error {
	return xproto.ConfigureWindowChecked(c.X.Conn(), win, xproto.ConfigWindowBorderWidth, []uint32{bw}).Check()
}

// MoveWindow repositions win without touching its size, the primitive
// showhide uses to park invisible clients off-screen.
func (c *Conn) MoveWindow(win xproto.Window, x, y int32) error {
	return xproto.ConfigureWindowChecked(
		c.X.Conn(), win, xproto.ConfigWindowX|xproto.ConfigWindowY, []uint32{uint32(x), uint32(y)},
	).Check()
}

// RaiseWindow restacks win to the top.
func (c *Conn) RaiseWindow(win xproto.Window) error {
	return xproto.ConfigureWindowChecked(c.X.Conn(), win, xproto.ConfigWindowStackMode, []uint32{uint32(xproto.StackModeAbove)}).Check()
}

// CreateSimpleWindow allocates a 1x1 unmapped window parented to root, used
// only as the supporting-check window EWMH's _NET_SUPPORTING_WM_CHECK
// points at — dwm's XCreateSimpleWindow(dpy, root, 0, 0, 1, 1, 0, 0, 0).
func (c *Conn) CreateSimpleWindow() (xproto.Window, error) {
	id, err := c.X.Conn().NewId()
	if err != nil {
		return 0, err
	}
	win := xproto.Window(id)
	const depthCopyFromParent = 0
	const visualCopyFromParent = 0
	err = xproto.CreateWindowChecked(
		c.X.Conn(), depthCopyFromParent, win, c.Root,
		0, 0, 1, 1, 0,
		xproto.WindowClassInputOutput, visualCopyFromParent, 0, nil,
	).Check()
	if err != nil {
		return 0, err
	}
	return win, nil
}

// MapWindow/UnmapWindow toggle win's viewable state.
func (c *Conn) MapWindow(win xproto.Window) error   { return xproto.MapWindowChecked(c.X.Conn(), win).Check() }
func (c *Conn) UnmapWindow(win xproto.Window) error { return xproto.UnmapWindowChecked(c.X.Conn(), win).Check() }

// KillClient forcibly severs win's X connection, dwm's killclient() fallback
// for a client that doesn't speak WM_DELETE_WINDOW (XKillClient).
func (c *Conn) KillClient(win xproto.Window) error {
	return xproto.KillClientChecked(c.X.Conn(), uint32(win)).Check()
}

// SetInputFocus gives win the input focus, or the root window if win is 0
// (dwm's XSetInputFocus(dpy, root, ...) "focus nothing" case).
func (c *Conn) SetInputFocus(win xproto.Window) error {
	if win == 0 {
		win = c.RootWindow()
	}
	return xproto.SetInputFocusChecked(c.X.Conn(), xproto.InputFocusPointerRoot, win, xproto.TimeCurrentTime).Check()
}

// SelectInput replaces win's selected event mask.
func (c *Conn) SelectInput(win xproto.Window, mask uint32) error {
	return xproto.ChangeWindowAttributesChecked(c.X.Conn(), win, xproto.CwEventMask, []uint32{mask}).Check()
}

// DefineCursor sets win's displayed cursor, dwm's setup() assigning
// cursor[CurNormal] to the root window so the pointer doesn't show
// whatever glyph the X server defaults to.
func (c *Conn) DefineCursor(win xproto.Window, cur xproto.Cursor) error {
	return xproto.ChangeWindowAttributesChecked(c.X.Conn(), win, xproto.CwCursor, []uint32{uint32(cur)}).Check()
}

// Sync round-trips a no-op request, the Go equivalent of XSync(dpy, False):
// it blocks until every request queued so far has been processed by the
// server, surfacing any errors they provoked.
func (c *Conn) Sync() error {
	_, err := xproto.GetInputFocus(c.X.Conn()).Reply()
	return err
}

// QueryPointer returns the pointer's position relative to the root window.
func (c *Conn) QueryPointer(root xproto.Window) (x, y int16, err error) {
	reply, err := xproto.QueryPointer(c.X.Conn(), root).Reply()
	if err != nil {
		return 0, 0, err
	}
	return reply.RootX, reply.RootY, nil
}

// WarpPointer moves the pointer to a position relative to win, used to snap
// the cursor to a client's resize handle at the start of resizemouse.
func (c *Conn) WarpPointer(win xproto.Window, x, y int16) error {
	return xproto.WarpPointerChecked(c.X.Conn(), 0, win, 0, 0, 0, 0, x, y).Check()
}

// GetWindowAttributes reports whether win is override-redirect and its
// current map state, the two checks manage()/scan() gate on.
func (c *Conn) GetWindowAttributes(win xproto.Window) (overrideRedirect bool, mapped bool, err error) {
	reply, err := xproto.GetWindowAttributes(c.X.Conn(), win).Reply()
	if err != nil {
		return false, false, err
	}
	return reply.OverrideRedirect, reply.MapState == xproto.MapStateViewable, nil
}

// GetGeometry reads win's current geometry, used by managealtbar to learn
// where an adopted bar window sits before reconciling it with a monitor.
func (c *Conn) GetGeometry(win xproto.Window) (x, y int16, w, h uint16, err error) {
	reply, err := xproto.GetGeometry(c.X.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return reply.X, reply.Y, reply.Width, reply.Height, nil
}

// QueryTree lists win's children, the primitive scan() walks the root with.
func (c *Conn) QueryTree(win xproto.Window) ([]xproto.Window, error) {
	reply, err := xproto.QueryTree(c.X.Conn(), win).Reply()
	if err != nil {
		return nil, err
	}
	return reply.Children, nil
}

// GetClassHint reads WM_CLASS, returning (class, instance) the way
// XGetClassHint splits res_class/res_name, for rule matching and
// alternate-bar detection.
func (c *Conn) GetClassHint(win xproto.Window) (class, instance string, err error) {
	reply, err := xproto.GetProperty(c.X.Conn(), false, win, xproto.AtomWmClass, xproto.GetPropertyTypeAny, 0, 1024).Reply()
	if err != nil || reply == nil {
		return "", "", err
	}
	parts := splitNulTerminated(reply.Value)
	if len(parts) > 0 {
		instance = parts[0]
	}
	if len(parts) > 1 {
		class = parts[1]
	}
	return class, instance, nil
}

func splitNulTerminated(b []byte) []string {
	var out []string
	start := 0
	for i, ch := range b {
		if ch == 0 {
			out = append(out, string(b[start:i]))
			start = i + 1
		}
	}
	return out
}

// GetTransientFor reads WM_TRANSIENT_FOR, returning (0, false) if unset.
func (c *Conn) GetTransientFor(win xproto.Window) (xproto.Window, bool, error) {
	vals, _, err := c.GetProperty32(win, xproto.AtomWmTransientFor, 1)
	if err != nil || len(vals) == 0 {
		return 0, false, err
	}
	return xproto.Window(vals[0]), true, nil
}

// SendClientMessage32 delivers a synthetic ClientMessage, the mechanism
// behind sendevent()'s WM_TAKE_FOCUS/WM_DELETE_WINDOW deliveries. The event
// is hand-encoded to the 32-byte core protocol wire layout rather than going
// through a generated union type, the same level dwm itself operates at
// (it fills an XEvent struct's bytes directly).
func (c *Conn) SendClientMessage32(win xproto.Window, msgType xproto.Atom, data [5]uint32) error {
	buf := make([]byte, 32)
	buf[0] = 33 // ClientMessage
	buf[1] = 32 // format
	binary.LittleEndian.PutUint32(buf[4:], uint32(win))
	binary.LittleEndian.PutUint32(buf[8:], uint32(msgType))
	for i, v := range data {
		binary.LittleEndian.PutUint32(buf[12+i*4:], v)
	}
	return xproto.SendEventChecked(c.X.Conn(), false, win, 0, string(buf)).Check()
}
