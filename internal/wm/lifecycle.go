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
	"errors"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/jezek/xgb/xproto"

	"github.com/distatus/dtile/internal/config"
	"github.com/distatus/dtile/internal/drw"
	"github.com/distatus/dtile/internal/xconn"
)

// ICCCM WM_STATE values (icccm.h), stored in the WM_STATE property dwm's
// setclientstate/getstate round-trip.
const (
	stateWithdrawn = 0
	stateNormal    = 1
	stateIconic    = 3
)

const rootEventMask = xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify |
	xproto.EventMaskButtonPress | xproto.EventMaskPointerMotion |
	xproto.EventMaskEnterWindow | xproto.EventMaskLeaveWindow |
	xproto.EventMaskStructureNotify | xproto.EventMaskPropertyChange

const clientEventMask = xproto.EventMaskEnterWindow | xproto.EventMaskFocusChange |
	xproto.EventMaskPropertyChange | xproto.EventMaskStructureNotify

// Setup interns atoms, builds cursors, advertises EWMH support, installs the
// root event mask and initial key grabs, then focuses nothing — dwm's
// setup(). Must run before Scan or Run.
// ErrOtherWMRunning is returned by Setup when SubstructureRedirect on the
// root window is already owned by another window manager.
var ErrOtherWMRunning = errors.New("wm: another window manager is already running")

func (w *WM) Setup() error {
	root := w.display.RootWindow()
	if err := w.display.SelectInput(root, uint32(xproto.EventMaskSubstructureRedirect)); err != nil {
		return ErrOtherWMRunning
	}

	w.installHandlers()
	w.keys = defaultKeys()
	w.buttons = defaultButtons()

	w.screenW, w.screenH = w.display.ScreenSize()
	w.updateGeom()

	atomNames := map[*xproto.Atom]string{
		&w.atoms.wmProtocols:          "WM_PROTOCOLS",
		&w.atoms.wmDelete:             "WM_DELETE_WINDOW",
		&w.atoms.wmState:              "WM_STATE",
		&w.atoms.wmTakeFocus:          "WM_TAKE_FOCUS",
		&w.atoms.wmNormalHints:        "WM_NORMAL_HINTS",
		&w.atoms.wmHints:              "WM_HINTS",
		&w.atoms.wmName:               "WM_NAME",
		&w.atoms.wmClass:              "WM_CLASS",
		&w.atoms.wmTransientFor:       "WM_TRANSIENT_FOR",
		&w.atoms.netActiveWindow:      "_NET_ACTIVE_WINDOW",
		&w.atoms.netSupported:         "_NET_SUPPORTED",
		&w.atoms.netWMName:            "_NET_WM_NAME",
		&w.atoms.netWMState:           "_NET_WM_STATE",
		&w.atoms.netWMCheck:           "_NET_SUPPORTING_WM_CHECK",
		&w.atoms.netWMFullscreen:      "_NET_WM_STATE_FULLSCREEN",
		&w.atoms.netWMWindowType:      "_NET_WM_WINDOW_TYPE",
		&w.atoms.netWMWindowTypeDialog: "_NET_WM_WINDOW_TYPE_DIALOG",
		&w.atoms.netClientList:        "_NET_CLIENT_LIST",
		&w.atoms.utf8String:           "UTF8_STRING",
	}
	for slot, name := range atomNames {
		*slot = w.display.MustAtom(name)
	}

	conn := w.display.Raw()
	normal, err := drw.NewCursor(conn, drw.Normal)
	if err != nil {
		return err
	}
	move, err := drw.NewCursor(conn, drw.Move)
	if err != nil {
		return err
	}
	resize, err := drw.NewCursor(conn, drw.Resize)
	if err != nil {
		return err
	}
	w.cursorNormal, w.cursorMove, w.cursorResize = normal, move, resize
	_ = w.display.DefineCursor(root, w.cursorNormal)
	w.SetMetrics(drw.NewFaces(config.Fonts, config.LrPad))

	if win, err := w.display.CreateSimpleWindow(); err == nil {
		w.wmCheckWin = win
		_ = w.display.SetWindowProperty(win, w.atoms.netWMCheck, win)
		_ = w.display.SetTextProperty8(win, w.atoms.netWMName, w.atoms.utf8String, "dtile")
		_ = w.display.SetWindowProperty(root, w.atoms.netWMCheck, win)
	}

	supported := []xproto.Atom{
		w.atoms.netActiveWindow, w.atoms.netSupported, w.atoms.netWMName,
		w.atoms.netWMState, w.atoms.netWMCheck, w.atoms.netWMFullscreen,
		w.atoms.netWMWindowType, w.atoms.netWMWindowTypeDialog, w.atoms.netClientList,
	}
	_ = w.display.SetAtomListProperty(root, w.atoms.netSupported, supported)
	_ = w.display.DeleteProperty(root, w.atoms.netClientList)

	_ = w.display.SelectInput(root, rootEventMask)

	w.rebuildKeyTables()
	w.grabKeys(w.keycodeOf)
	w.updateStatus()
	w.focus(nil)
	return nil
}

// rebuildKeyTables refreshes the keycode<->keysym tables and numlock mask
// from the server, dwm's combination of XGetModifierMapping/
// XGetKeyboardMapping done piecemeal across setup/grabkeys/updatenumlockmask.
func (w *WM) rebuildKeyTables() {
	first, rows, err := w.display.GetKeyboardMapping()
	if err == nil {
		w.keycodeToKeysymTbl = make(map[xproto.Keycode]uint32, len(rows))
		w.keysymToKeycodeTbl = make(map[uint32]xproto.Keycode, len(rows))
		for i, syms := range rows {
			if len(syms) == 0 || syms[0] == 0 {
				continue
			}
			code := xproto.Keycode(int(first) + i)
			w.keycodeToKeysymTbl[code] = syms[0]
			if _, exists := w.keysymToKeycodeTbl[syms[0]]; !exists {
				w.keysymToKeycodeTbl[syms[0]] = code
			}
		}
	}
	numlockCode := w.keysymToKeycodeTbl[uint32(config.XKNumLock)]
	if modmap, err := w.display.GetModifierMapping(); err == nil {
		w.updateNumlockMask(modmap, numlockCode)
	}
}

// updateGeom reconciles the monitor list against the server's current head
// layout, mirroring dwm's updategeom(): Xinerama heads when available,
// otherwise a single monitor spanning the whole screen. Returns whether
// anything changed.
func (w *WM) updateGeom() bool {
	dirty := false

	heads, err := w.display.Heads()
	if err != nil || len(heads) == 0 {
		if w.Mons == nil {
			w.Mons = newMonitor(w.GapPx, w.MFact, w.NMaster)
			w.SelMon = w.Mons
			dirty = true
		}
		if w.Mons.MW != w.screenW || w.Mons.MH != w.screenH {
			dirty = true
			w.Mons.MX, w.Mons.MY, w.Mons.MW, w.Mons.MH = 0, 0, w.screenW, w.screenH
			w.Mons.WX, w.Mons.WY, w.Mons.WW, w.Mons.WH = 0, 0, w.screenW, w.screenH
			updateBarPos(w.Mons)
		}
		if w.SelMon == nil {
			w.SelMon = w.Mons
		}
		return dirty
	}

	var existing []*Monitor
	for m := w.Mons; m != nil; m = m.next {
		existing = append(existing, m)
	}

	if len(existing) <= len(heads) {
		for i := len(existing); i < len(heads); i++ {
			nm := newMonitor(w.GapPx, w.MFact, w.NMaster)
			if w.Mons == nil {
				w.Mons = nm
			} else {
				tail := w.Mons
				for tail.next != nil {
					tail = tail.next
				}
				tail.next = nm
			}
			existing = append(existing, nm)
		}
		m := w.Mons
		for i := 0; i < len(heads) && m != nil; i, m = i+1, m.next {
			x, y, width, height := heads[i][0], heads[i][1], heads[i][2], heads[i][3]
			if i >= len(existing) || x != m.MX || y != m.MY || width != m.MW || height != m.MH {
				dirty = true
				m.Num = i
				m.MX, m.WX = x, x
				m.MY, m.WY = y, y
				m.MW, m.WW = width, width
				m.MH, m.WH = height, height
				updateBarPos(m)
			}
		}
	} else {
		for i := len(heads); i < len(existing); i++ {
			tail := w.Mons
			for tail.next != nil {
				tail = tail.next
			}
			for c := tail.Clients; c != nil; c = tail.Clients {
				dirty = true
				tail.Clients = c.next
				detachStack(c)
				c.Mon = w.Mons
				attach(c)
				attachStack(c)
			}
			if w.SelMon == tail {
				w.SelMon = w.Mons
			}
			w.detachMonitor(tail)
		}
	}

	if dirty {
		w.SelMon = w.wintomon(w.display.RootWindow())
	}
	return dirty
}

// detachMonitor removes m from the monitor list. Its bar/tray windows, if
// any, are left for the caller (cleanupmon in dwm also frees the bar).
func (w *WM) detachMonitor(m *Monitor) {
	if w.Mons == m {
		w.Mons = m.next
		return
	}
	for p := w.Mons; p != nil; p = p.next {
		if p.next == m {
			p.next = m.next
			return
		}
	}
}

// Scan adopts every pre-existing top-level window, non-transient windows
// first so a transient's owner is always already managed when it's
// adopted — dwm's scan().
func (w *WM) Scan() {
	root := w.display.RootWindow()
	wins, err := w.display.QueryTree(root)
	if err != nil {
		return
	}

	isManageable := func(win xproto.Window) (manageable, class string) {
		overrideRedirect, mapped, err := w.display.GetWindowAttributes(win)
		if err != nil || overrideRedirect {
			return "", ""
		}
		if _, transient, _ := w.display.GetTransientFor(win); transient {
			return "", ""
		}
		cls, _, _ := w.display.GetClassHint(win)
		if w.AltBarClass != "" && containsFold(cls, w.AltBarClass) {
			return "altbar", cls
		}
		if mapped {
			return "manage", cls
		}
		return "", cls
	}

	for _, win := range wins {
		switch kind, _ := isManageable(win); kind {
		case "altbar":
			w.manageAltBar(win)
		case "manage":
			w.manage(win)
		}
	}

	for _, win := range wins {
		if _, transient, _ := w.display.GetTransientFor(win); transient {
			if _, mapped, err := w.display.GetWindowAttributes(win); err == nil && mapped {
				w.manage(win)
			}
		}
	}
}

// manage adopts win as a new tiled client: read its geometry, apply naming
// and rules, clamp initial placement on screen, install grabs, and map it —
// dwm's manage().
func (w *WM) manage(win xproto.Window) {
	x, y, width, height, err := w.display.GetGeometry(win)
	if err != nil {
		return
	}
	c := &Client{Win: win}
	c.X, c.OldX = int(x), int(x)
	c.Y, c.OldY = int(y), int(y)
	c.W, c.OldW = int(width), int(width)
	c.H, c.OldH = int(height), int(height)

	w.updateTitle(c)

	if target, ok, _ := w.display.GetTransientFor(win); ok {
		if t := w.wintoclient(target); t != nil {
			c.Mon = t.Mon
			c.Tags = t.Tags
		}
	}
	if c.Mon == nil {
		c.Mon = w.SelMon
		w.applyRules(c)
	}

	m := c.Mon
	if c.X+c.width() > m.MX+m.MW {
		c.X = m.MX + m.MW - c.width()
	}
	if c.Y+c.height() > m.MY+m.MH {
		c.Y = m.MY + m.MH - c.height()
	}
	c.X = max(c.X, m.MX)
	barCoversCenter := m.BY == m.MY && c.X+c.W/2 >= m.WX && c.X+c.W/2 < m.WX+m.WW
	if barCoversCenter {
		c.Y = max(c.Y, m.BH)
	} else {
		c.Y = max(c.Y, m.MY)
	}
	c.BW = w.BorderPx

	_ = w.display.SetBorderWidth(c.Win, uint32(c.BW))
	_ = w.display.Configure(c.Win, int16(c.X), int16(c.Y), uint16(c.W), uint16(c.H), uint16(c.BW))
	w.updateWindowType(c)
	w.updateSizeHints(c)
	w.updateWMHints(c)
	_ = w.display.SelectInput(c.Win, uint32(clientEventMask))
	w.grabButtons(c, false)

	if !c.IsFloating {
		_, hasTransient, _ := w.display.GetTransientFor(win)
		c.IsFloating = hasTransient || c.IsFixed
		c.OldState = c.IsFloating
	}
	if c.IsFloating {
		_ = w.display.RaiseWindow(c.Win)
	}

	attach(c)
	attachStack(c)
	_ = w.display.AppendWindowListProperty(w.display.RootWindow(), w.atoms.netClientList, c.Win)
	_ = w.display.MoveResizeWindow(c.Win, int32(c.X), int32(c.Y), uint32(c.W), uint32(c.H))
	w.setClientState(c, stateNormal)

	if c.Mon == w.SelMon {
		w.unfocus(w.SelMon.Sel, false)
	}
	c.Mon.Sel = c
	w.arrange(c.Mon)
	_ = w.display.MapWindow(c.Win)
	w.focus(nil)
}

// manageAltBar adopts win as the bar window for whichever monitor its
// geometry falls on — dwm's managealtbar(). Used when an external status
// bar process (AltBarClass) maps its own window rather than dtile drawing
// the bar itself.
func (w *WM) manageAltBar(win xproto.Window) {
	x, y, width, height, err := w.display.GetGeometry(win)
	if err != nil {
		return
	}
	m := recttomon(w.Mons, w.SelMon, int(x), int(y), int(width), int(height))
	if m == nil {
		return
	}
	m.BarWin = win
	m.BY = int(y)
	m.BH = int(height)
	updateBarPos(m)
	w.arrange(m)
	_ = w.display.SelectInput(win, uint32(clientEventMask))
	_ = w.display.MoveResizeWindow(win, int32(x), int32(y), uint32(width), uint32(height))
	_ = w.display.MapWindow(win)
	_ = w.display.AppendWindowListProperty(w.display.RootWindow(), w.atoms.netClientList, win)
}

// setClientState writes the ICCCM WM_STATE property — dwm's setclientstate.
func (w *WM) setClientState(c *Client, state uint32) {
	_ = w.display.ChangeProperty32(0, c.Win, w.atoms.wmState, w.atoms.wmState, []uint32{state, 0})
}

// unmanage forgets c: detach from both lists, restore its border and
// withdraw it unless it's already gone (destroyed == true skips the X
// round-trips that would otherwise race a dead window), then re-arrange —
// dwm's unmanage().
func (w *WM) unmanage(c *Client, destroyed bool) {
	m := c.Mon
	detach(c)
	detachStack(c)
	if !destroyed {
		_ = w.display.GrabServer()
		_ = w.display.SetBorderWidth(c.Win, uint32(c.OldBW))
		_ = w.display.UngrabAllButtons(c.Win)
		w.setClientState(c, stateWithdrawn)
		_ = w.display.Sync()
		_ = w.display.UngrabServer()
	}
	w.focus(nil)
	w.updateClientList()
	w.arrange(m)
}

// unmanageAltBar releases m's bar window — dwm's unmanagealtbar().
func (w *WM) unmanageAltBar(m *Monitor) {
	m.BarWin, m.BY, m.BH = 0, 0, 0
	updateBarPos(m)
	w.arrange(m)
}

// unmanageTray releases m's tray window — dwm's unmanagetray().
func (w *WM) unmanageTray(m *Monitor) {
	m.TrayWin = 0
	updateBarPos(m)
	w.arrange(m)
}

// updateClientList rebuilds _NET_CLIENT_LIST from scratch, avoiding the
// bookkeeping a remove-one-entry update would need — dwm's
// updateclientlist().
func (w *WM) updateClientList() {
	root := w.display.RootWindow()
	_ = w.display.DeleteProperty(root, w.atoms.netClientList)
	for m := w.Mons; m != nil; m = m.next {
		for c := m.Clients; c != nil; c = c.next {
			_ = w.display.AppendWindowListProperty(root, w.atoms.netClientList, c.Win)
		}
	}
}

// Cleanup tears down what Setup/manage built: unmanages every client,
// ungrabs keys, hands input focus back to the root and releases the
// cursors — dwm's cleanup(). The EWMH check window is not destroyed.
func (w *WM) Cleanup() {
	w.View(config.TagMask())
	for m := w.Mons; m != nil; m = m.next {
		for c := m.Stack; c != nil; {
			next := c.snext
			w.unmanage(c, false)
			c = next
		}
	}
	root := w.display.RootWindow()
	_ = w.display.UngrabAllKeys(root)
	_ = w.display.SetInputFocus(0)
	_ = w.display.DeleteProperty(root, w.atoms.netActiveWindow)

	conn := w.display.Raw()
	_ = drw.FreeCursor(conn, w.cursorNormal)
	_ = drw.FreeCursor(conn, w.cursorMove)
	_ = drw.FreeCursor(conn, w.cursorResize)
}

// RunAutostart runs /etc/dwm/autostart.sh if present, then every regular
// file under $HOME/.config/dwm, exactly as dwm's runautostart() does via
// system() — here via os/exec since Go has no system(3) equivalent.
func (w *WM) RunAutostart() {
	const systemConfig = "/etc/dwm/autostart.sh"
	if _, err := os.Stat(systemConfig); err == nil {
		w.runScript(systemConfig)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	userConfig := filepath.Join(home, ".config", "dwm")
	entries, err := os.ReadDir(userConfig)
	if err != nil {
		return
	}
	for _, e := range entries {
		if e.Type().IsRegular() {
			w.runScript(filepath.Join(userConfig, e.Name()))
		}
	}
}

func (w *WM) runScript(path string) {
	cmd := exec.Command(path)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		w.logf("autostart %s: %v", path, err)
		return
	}
	go func() { _ = cmd.Wait() }()
}

// Run is the blocking event loop: wait for the next X event and dispatch it
// through the table installHandlers built, until Quit clears Running —
// dwm's run().
func (w *WM) Run() {
	conn := w.display.Raw()
	for w.Running {
		ev, err := conn.WaitForEvent()
		if err != nil {
			if !xconn.IsBenign(err) {
				w.logf("event: %v", xconn.Describe(err))
			}
			continue
		}
		if ev == nil {
			return
		}
		w.dispatch(ev)
	}
}
