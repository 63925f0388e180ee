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

// ChangeProperty32 writes data as a sequence of 32-bit values on win/prop,
// either replacing or appending to the existing value. Used for
// _NET_CLIENT_LIST (append) and WM_STATE/_NET_ACTIVE_WINDOW (replace), the
// same two modes dwm's XChangeProperty call sites use.
func (c *Conn) ChangeProperty32(mode byte, win xproto.Window, prop, typ xproto.Atom, data []uint32) error {
	buf := make([]byte, 4*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	return xproto.ChangePropertyChecked(c.X.Conn(), mode, win, prop, typ, 32, uint32(len(data)), buf).Check()
}

// DeleteProperty removes prop from win entirely.
func (c *Conn) DeleteProperty(win xproto.Window, prop xproto.Atom) error {
	return xproto.DeletePropertyChecked(c.X.Conn(), win, prop).Check()
}

// GetProperty32 reads up to maxLongs 32-bit values from win/prop, returning
// the decoded values and the property's type atom.
func (c *Conn) GetProperty32(win xproto.Window, prop xproto.Atom, maxLongs uint32) ([]uint32, xproto.Atom, error) {
	reply, err := xproto.GetProperty(c.X.Conn(), false, win, prop, xproto.GetPropertyTypeAny, 0, maxLongs).Reply()
	if err != nil {
		return nil, 0, err
	}
	if reply == nil || reply.Format != 32 {
		return nil, 0, nil
	}
	out := make([]uint32, len(reply.Value)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(reply.Value[i*4:])
	}
	return out, reply.Type, nil
}

// GetAtomProperty reads a single-atom property (e.g. WM_TRANSIENT_FOR's
// resolved type, _NET_WM_WINDOW_TYPE, _NET_WM_STATE's first value).
func (c *Conn) GetAtomProperty(win xproto.Window, prop xproto.Atom) (xproto.Atom, error) {
	vals, _, err := c.GetProperty32(win, prop, 1)
	if err != nil || len(vals) == 0 {
		return xproto.Atom(0), err
	}
	return xproto.Atom(vals[0]), nil
}

// GetAtomListProperty reads a property holding zero or more atoms (e.g. a
// multi-valued _NET_WM_STATE or _NET_WM_WINDOW_TYPE).
func (c *Conn) GetAtomListProperty(win xproto.Window, prop xproto.Atom) ([]xproto.Atom, error) {
	vals, _, err := c.GetProperty32(win, prop, 64)
	if err != nil {
		return nil, err
	}
	out := make([]xproto.Atom, len(vals))
	for i, v := range vals {
		out[i] = xproto.Atom(v)
	}
	return out, nil
}

// GetTextProperty reads win/prop as UTF8_STRING or STRING text, matching
// dwm's gettextprop fallback between the two encodings.
func (c *Conn) GetTextProperty(win xproto.Window, prop xproto.Atom) (string, error) {
	reply, err := xproto.GetProperty(c.X.Conn(), false, win, prop, xproto.GetPropertyTypeAny, 0, 1024).Reply()
	if err != nil {
		return "", err
	}
	if reply == nil || reply.ValueLen == 0 {
		return "", nil
	}
	return string(reply.Value), nil
}

// SetTextProperty8 writes s as an 8-bit-format property (STRING or
// UTF8_STRING), matching the one place dwm writes rather than reads text:
// the supporting-check window's _NET_WM_NAME.
func (c *Conn) SetTextProperty8(win xproto.Window, prop, typ xproto.Atom, s string) error {
	return xproto.ChangePropertyChecked(c.X.Conn(), xproto.PropModeReplace, win, prop, typ, 8, uint32(len(s)), []byte(s)).Check()
}

// SetWindowProperty sets a single-window-valued property (e.g.
// _NET_SUPPORTING_WM_CHECK, _NET_ACTIVE_WINDOW).
func (c *Conn) SetWindowProperty(win xproto.Window, prop xproto.Atom, value xproto.Window) error {
	return c.ChangeProperty32(xproto.PropModeReplace, win, prop, xproto.AtomWindow, []uint32{uint32(value)})
}

// AppendWindowListProperty appends a single window id to a list property
// (_NET_CLIENT_LIST's incremental append-on-manage behavior, spec.md §4.2
// step 7).
func (c *Conn) AppendWindowListProperty(win xproto.Window, prop xproto.Atom, value xproto.Window) error {
	return c.ChangeProperty32(xproto.PropModeAppend, win, prop, xproto.AtomWindow, []uint32{uint32(value)})
}

// SetWindowListProperty replaces a list property wholesale
// (updateclientlist's delete-then-append-all rebuild, spec.md §4.6).
func (c *Conn) SetWindowListProperty(win xproto.Window, prop xproto.Atom, values []xproto.Window) error {
	data := make([]uint32, len(values))
	for i, w := range values {
		data[i] = uint32(w)
	}
	if err := c.DeleteProperty(win, prop); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return c.ChangeProperty32(xproto.PropModeAppend, win, prop, xproto.AtomWindow, data)
}

// SetAtomListProperty replaces an atom-list property wholesale
// (_NET_SUPPORTED at setup).
func (c *Conn) SetAtomListProperty(win xproto.Window, prop xproto.Atom, values []xproto.Atom) error {
	data := make([]uint32, len(values))
	for i, a := range values {
		data[i] = uint32(a)
	}
	return c.ChangeProperty32(xproto.PropModeReplace, win, prop, xproto.AtomAtom, data)
}
