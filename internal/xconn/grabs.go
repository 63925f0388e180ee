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

import "github.com/jezek/xgb/xproto"

// ButtonMask is the event mask dwm grabs buttons with (ButtonPress |
// ButtonRelease).
const ButtonMask = xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease

// PointerMask adds PointerMotion to ButtonMask for interactive gesture
// grabs (spec.md §4.8's MOUSEMASK).
const PointerMask = ButtonMask | xproto.EventMaskPointerMotion

// GrabKey grabs a single (modifiers, keycode) combination on win.
func (c *Conn) GrabKey(win xproto.Window, modifiers uint16, key xproto.Keycode) error {
	return xproto.GrabKeyChecked(
		c.X.Conn(), true, win, modifiers, key,
		xproto.GrabModeAsync, xproto.GrabModeAsync,
	).Check()
}

// UngrabAllKeys releases every key grab previously made on win.
func (c *Conn) UngrabAllKeys(win xproto.Window) error {
	return xproto.UngrabKeyChecked(c.X.Conn(), xproto.GrabAny, win, xproto.ModMaskAny).Check()
}

// GrabButton grabs a single (modifiers, button) combination on win. sync
// selects GrabModeSync (used for the unfocused click-to-focus grab, which
// must replay the event after the WM has reacted) vs GrabModeAsync.
func (c *Conn) GrabButton(win xproto.Window, modifiers uint16, button xproto.Button, sync bool) error {
	mode := byte(xproto.GrabModeAsync)
	if sync {
		mode = xproto.GrabModeSync
	}
	return xproto.GrabButtonChecked(
		c.X.Conn(), false, win, ButtonMask,
		mode, byte(xproto.GrabModeAsync),
		xproto.Window(0), xproto.Cursor(0),
		button, modifiers,
	).Check()
}

// UngrabAllButtons releases every button grab previously made on win.
func (c *Conn) UngrabAllButtons(win xproto.Window) error {
	return xproto.UngrabButtonChecked(c.X.Conn(), xproto.ButtonIndexAny, win, xproto.ModMaskAny).Check()
}

// AllowReplayPointer replays a synchronously-grabbed button click to the
// grabbed window after the WM has finished reacting to it (focus(), then
// ReplayPointer so the click itself still reaches the newly-focused
// client), matching dwm's buttonpress XAllowEvents(ReplayPointer, ...) call.
func (c *Conn) AllowReplayPointer() error {
	return xproto.AllowEventsChecked(c.X.Conn(), xproto.AllowReplayPointer, xproto.TimeCurrentTime).Check()
}

// GrabPointer exclusively grabs the pointer for an interactive gesture,
// rendering it as cursor for the duration of the grab.
func (c *Conn) GrabPointer(cursor xproto.Cursor) error {
	reply, err := xproto.GrabPointer(
		c.X.Conn(), false, c.Root, PointerMask|xproto.EventMaskExposure,
		xproto.GrabModeAsync, xproto.GrabModeAsync,
		xproto.Window(0), cursor, xproto.TimeCurrentTime,
	).Reply()
	if err != nil {
		return err
	}
	if reply.Status != xproto.GrabStatusSuccess {
		return errGrabFailed
	}
	return nil
}

// UngrabPointer releases a pointer grab made by GrabPointer.
func (c *Conn) UngrabPointer() error {
	return xproto.UngrabPointerChecked(c.X.Conn(), xproto.TimeCurrentTime).Check()
}

// GrabServer freezes processing of requests from all other clients, used
// around the unmanage border-restore and killclient sequences (spec.md §5)
// to keep a dying window's teardown atomic.
func (c *Conn) GrabServer() error {
	return xproto.GrabServerChecked(c.X.Conn()).Check()
}

// UngrabServer releases a GrabServer.
func (c *Conn) UngrabServer() error {
	return xproto.UngrabServerChecked(c.X.Conn()).Check()
}

var errGrabFailed = grabError("xconn: pointer grab did not succeed")

type grabError string

func (e grabError) Error() string { return string(e) }
