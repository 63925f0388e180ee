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
)

// fakeDisplay is an in-memory stand-in for internal/xconn.Conn: everything
// the model needs recorded is kept in plain maps so assertions can read it
// back without a live X connection, the seam display.go's applier interface
// exists for.
type fakeDisplay struct {
	root xproto.Window

	classHint map[xproto.Window][2]string
	transient map[xproto.Window]xproto.Window
	text      map[xproto.Window]map[xproto.Atom]string
	atomProp  map[xproto.Window]map[xproto.Atom]xproto.Atom
	u32       map[xproto.Window]map[xproto.Atom][]uint32

	mapped   map[xproto.Window]bool
	focused  xproto.Window
	screenW  int
	screenH  int
	heads    [][4]int
	nextWin  xproto.Window
	atoms    map[string]xproto.Atom
	atomSeq  xproto.Atom
	sentMsgs []sentMsg
}

type sentMsg struct {
	win  xproto.Window
	typ  xproto.Atom
	data [5]uint32
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{
		root:      1,
		classHint: map[xproto.Window][2]string{},
		transient: map[xproto.Window]xproto.Window{},
		text:      map[xproto.Window]map[xproto.Atom]string{},
		atomProp:  map[xproto.Window]map[xproto.Atom]xproto.Atom{},
		u32:       map[xproto.Window]map[xproto.Atom][]uint32{},
		mapped:    map[xproto.Window]bool{},
		atoms:     map[string]xproto.Atom{},
		nextWin:   100,
		screenW:   1920,
		screenH:   1080,
	}
}

func (f *fakeDisplay) Atom(name string) (xproto.Atom, error) { return f.MustAtom(name), nil }

func (f *fakeDisplay) MustAtom(name string) xproto.Atom {
	if a, ok := f.atoms[name]; ok {
		return a
	}
	f.atomSeq++
	f.atoms[name] = f.atomSeq
	return f.atomSeq
}

func (f *fakeDisplay) ChangeProperty32(mode byte, win xproto.Window, prop, typ xproto.Atom, data []uint32) error {
	if f.u32[win] == nil {
		f.u32[win] = map[xproto.Atom][]uint32{}
	}
	f.u32[win][prop] = data
	return nil
}

func (f *fakeDisplay) DeleteProperty(win xproto.Window, prop xproto.Atom) error {
	delete(f.u32[win], prop)
	return nil
}

func (f *fakeDisplay) GetProperty32(win xproto.Window, prop xproto.Atom, maxLongs uint32) ([]uint32, xproto.Atom, error) {
	return f.u32[win][prop], 0, nil
}

func (f *fakeDisplay) GetAtomProperty(win xproto.Window, prop xproto.Atom) (xproto.Atom, error) {
	return f.atomProp[win][prop], nil
}

func (f *fakeDisplay) GetAtomListProperty(win xproto.Window, prop xproto.Atom) ([]xproto.Atom, error) {
	return nil, nil
}

func (f *fakeDisplay) GetTextProperty(win xproto.Window, prop xproto.Atom) (string, error) {
	return f.text[win][prop], nil
}

func (f *fakeDisplay) SetTextProperty8(win xproto.Window, prop, typ xproto.Atom, s string) error {
	if f.text[win] == nil {
		f.text[win] = map[xproto.Atom]string{}
	}
	f.text[win][prop] = s
	return nil
}

func (f *fakeDisplay) SetWindowProperty(win xproto.Window, prop xproto.Atom, value xproto.Window) error {
	return f.ChangeProperty32(0, win, prop, 0, []uint32{uint32(value)})
}

func (f *fakeDisplay) AppendWindowListProperty(win xproto.Window, prop xproto.Atom, value xproto.Window) error {
	if f.u32[win] == nil {
		f.u32[win] = map[xproto.Atom][]uint32{}
	}
	f.u32[win][prop] = append(f.u32[win][prop], uint32(value))
	return nil
}

func (f *fakeDisplay) SetWindowListProperty(win xproto.Window, prop xproto.Atom, values []xproto.Window) error {
	out := make([]uint32, len(values))
	for i, v := range values {
		out[i] = uint32(v)
	}
	return f.ChangeProperty32(0, win, prop, 0, out)
}

func (f *fakeDisplay) SetAtomListProperty(win xproto.Window, prop xproto.Atom, values []xproto.Atom) error {
	return nil
}

func (f *fakeDisplay) GrabKey(win xproto.Window, modifiers uint16, key xproto.Keycode) error {
	return nil
}
func (f *fakeDisplay) UngrabAllKeys(win xproto.Window) error { return nil }
func (f *fakeDisplay) GrabButton(win xproto.Window, modifiers uint16, button xproto.Button, sync bool) error {
	return nil
}
func (f *fakeDisplay) UngrabAllButtons(win xproto.Window) error { return nil }
func (f *fakeDisplay) AllowReplayPointer() error                { return nil }
func (f *fakeDisplay) GrabPointer(cursor xproto.Cursor) error   { return nil }
func (f *fakeDisplay) UngrabPointer() error                     { return nil }
func (f *fakeDisplay) GrabServer() error                        { return nil }
func (f *fakeDisplay) UngrabServer() error                      { return nil }

func (f *fakeDisplay) Configure(win xproto.Window, x, y int16, w, h uint16, bw uint16) error {
	return nil
}
func (f *fakeDisplay) MoveResizeWindow(win xproto.Window, x, y int32, w, h uint32) error { return nil }
func (f *fakeDisplay) MoveWindow(win xproto.Window, x, y int32) error                    { return nil }
func (f *fakeDisplay) SetBorderWidth(win xproto.Window, bw uint32) error                 { return nil }
func (f *fakeDisplay) RaiseWindow(win xproto.Window) error                              { return nil }
func (f *fakeDisplay) MapWindow(win xproto.Window) error {
	f.mapped[win] = true
	return nil
}
func (f *fakeDisplay) UnmapWindow(win xproto.Window) error {
	f.mapped[win] = false
	return nil
}
func (f *fakeDisplay) KillClient(win xproto.Window) error {
	delete(f.mapped, win)
	return nil
}
func (f *fakeDisplay) SetInputFocus(win xproto.Window) error {
	f.focused = win
	return nil
}
func (f *fakeDisplay) SelectInput(win xproto.Window, mask uint32) error       { return nil }
func (f *fakeDisplay) DefineCursor(win xproto.Window, cur xproto.Cursor) error { return nil }
func (f *fakeDisplay) Sync() error                                            { return nil }
func (f *fakeDisplay) QueryPointer(root xproto.Window) (x, y int16, err error) {
	return 0, 0, nil
}
func (f *fakeDisplay) WarpPointer(win xproto.Window, x, y int16) error { return nil }
func (f *fakeDisplay) GetWindowAttributes(win xproto.Window) (overrideRedirect, mapped bool, err error) {
	return false, f.mapped[win], nil
}
func (f *fakeDisplay) GetGeometry(win xproto.Window) (x, y int16, w, h uint16, err error) {
	return 0, 0, 1, 1, nil
}
func (f *fakeDisplay) CreateSimpleWindow() (xproto.Window, error) {
	f.nextWin++
	return f.nextWin, nil
}
func (f *fakeDisplay) QueryTree(win xproto.Window) ([]xproto.Window, error) { return nil, nil }
func (f *fakeDisplay) GetClassHint(win xproto.Window) (class, instance string, err error) {
	ci := f.classHint[win]
	return ci[0], ci[1], nil
}
func (f *fakeDisplay) GetTransientFor(win xproto.Window) (xproto.Window, bool, error) {
	t, ok := f.transient[win]
	return t, ok, nil
}
func (f *fakeDisplay) SendClientMessage32(win xproto.Window, msgType xproto.Atom, data [5]uint32) error {
	f.sentMsgs = append(f.sentMsgs, sentMsg{win: win, typ: msgType, data: data})
	return nil
}

func (f *fakeDisplay) ScreenSize() (w, h int)      { return f.screenW, f.screenH }
func (f *fakeDisplay) Heads() ([][4]int, error)    { return f.heads, nil }
func (f *fakeDisplay) RootWindow() xproto.Window   { return f.root }
func (f *fakeDisplay) Raw() *xgb.Conn              { return nil }
func (f *fakeDisplay) PollForEvent() (xgb.Event, error) { return nil, nil }

func (f *fakeDisplay) GetKeyboardMapping() (xproto.Keycode, [][]uint32, error) {
	return 8, nil, nil
}
func (f *fakeDisplay) GetModifierMapping() ([8][]xproto.Keycode, error) {
	return [8][]xproto.Keycode{}, nil
}

// newTestMonitor builds a monitor with a 1920x1080 usable area and no bar
// strip, the geometry S1/S2 are expressed against.
func newTestMonitor() *Monitor {
	m := newMonitor(10, 0.55, 1)
	m.MX, m.MY, m.MW, m.MH = 0, 0, 1920, 1080
	m.WX, m.WY, m.WW, m.WH = 0, 0, 1920, 1080
	return m
}

// newTestClient builds a tiled, visible client with no size hints, attached
// to m's tile-order and focus-stack lists.
func newTestClient(win xproto.Window, m *Monitor) *Client {
	c := &Client{Win: win, Mon: m, Tags: m.TagSet[m.SelTags]}
	attach(c)
	attachStack(c)
	return c
}

// newTestWM wires a WM around a fresh fakeDisplay with one monitor attached
// as both Mons and SelMon, and distinct (fake, but distinct) atom values —
// standing in for the one-time interning Setup() normally does against a
// live connection.
func newTestWM() (*WM, *fakeDisplay, *Monitor) {
	fd := newFakeDisplay()
	w := New(fd)
	m := newTestMonitor()
	w.Mons = m
	w.SelMon = m
	w.atoms = atoms{
		wmProtocols: 1, wmDelete: 2, wmState: 3, wmTakeFocus: 4,
		wmNormalHints: 5, wmHints: 6, wmName: 7, wmClass: 8, wmTransientFor: 9,
		netActiveWindow: 10, netSupported: 11, netWMName: 12, netWMState: 13,
		netWMCheck: 14, netWMFullscreen: 15,
		netWMWindowType: 16, netWMWindowTypeDialog: 17, netClientList: 18,
		utf8String: 19,
	}
	return w, fd, m
}
