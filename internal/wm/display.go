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

// Package wm implements the tiling window manager core: the client/monitor
// model, the master/stack layout engine, focus and stacking, the rule
// engine, the input grammar, the event dispatcher, interactive gestures and
// process lifecycle. It talks to X only through the applier seam below, so
// everything except the event loop itself (lifecycle.go's Run) can be
// exercised without a live display.
package wm

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// applier is every X operation the model needs performed on its behalf.
// internal/xconn.Conn satisfies it in production; tests wire a recording
// fake so layout, focus and rule decisions can be checked without X11 —
// the seam spec.md §9 asks for when it says global state "may be bundled in
// a single context value threaded through handlers for testability".
type applier interface {
	Atom(name string) (xproto.Atom, error)
	MustAtom(name string) xproto.Atom

	ChangeProperty32(mode byte, win xproto.Window, prop, typ xproto.Atom, data []uint32) error
	DeleteProperty(win xproto.Window, prop xproto.Atom) error
	GetProperty32(win xproto.Window, prop xproto.Atom, maxLongs uint32) ([]uint32, xproto.Atom, error)
	GetAtomProperty(win xproto.Window, prop xproto.Atom) (xproto.Atom, error)
	GetAtomListProperty(win xproto.Window, prop xproto.Atom) ([]xproto.Atom, error)
	GetTextProperty(win xproto.Window, prop xproto.Atom) (string, error)
	SetTextProperty8(win xproto.Window, prop, typ xproto.Atom, s string) error
	SetWindowProperty(win xproto.Window, prop xproto.Atom, value xproto.Window) error
	AppendWindowListProperty(win xproto.Window, prop xproto.Atom, value xproto.Window) error
	SetWindowListProperty(win xproto.Window, prop xproto.Atom, values []xproto.Window) error
	SetAtomListProperty(win xproto.Window, prop xproto.Atom, values []xproto.Atom) error

	GrabKey(win xproto.Window, modifiers uint16, key xproto.Keycode) error
	UngrabAllKeys(win xproto.Window) error
	GrabButton(win xproto.Window, modifiers uint16, button xproto.Button, sync bool) error
	UngrabAllButtons(win xproto.Window) error
	AllowReplayPointer() error
	GrabPointer(cursor xproto.Cursor) error
	UngrabPointer() error
	GrabServer() error
	UngrabServer() error

	Configure(win xproto.Window, x, y int16, w, h uint16, bw uint16) error
	MoveResizeWindow(win xproto.Window, x, y int32, w, h uint32) error
	MoveWindow(win xproto.Window, x, y int32) error
	SetBorderWidth(win xproto.Window, bw uint32) error
	RaiseWindow(win xproto.Window) error
	MapWindow(win xproto.Window) error
	UnmapWindow(win xproto.Window) error
	KillClient(win xproto.Window) error
	SetInputFocus(win xproto.Window) error
	SelectInput(win xproto.Window, mask uint32) error
	DefineCursor(win xproto.Window, cur xproto.Cursor) error
	Sync() error
	QueryPointer(root xproto.Window) (x, y int16, err error)
	WarpPointer(win xproto.Window, x, y int16) error
	GetWindowAttributes(win xproto.Window) (overrideRedirect, mapped bool, err error)
	GetGeometry(win xproto.Window) (x, y int16, w, h uint16, err error)
	CreateSimpleWindow() (xproto.Window, error)
	QueryTree(win xproto.Window) ([]xproto.Window, error)
	GetClassHint(win xproto.Window) (class, instance string, err error)
	GetTransientFor(win xproto.Window) (xproto.Window, bool, error)
	SendClientMessage32(win xproto.Window, msgType xproto.Atom, data [5]uint32) error

	ScreenSize() (w, h int)
	Heads() ([][4]int, error)
	RootWindow() xproto.Window
	Raw() *xgb.Conn
	PollForEvent() (xgb.Event, error)

	GetKeyboardMapping() (firstCode xproto.Keycode, keysyms [][]uint32, err error)
	GetModifierMapping() ([8][]xproto.Keycode, error)
}
