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

// eventKind is a dense index into the dispatch table. jezek/xgb hands back
// events as a Go interface rather than a raw wire-protocol byte, so there is
// no integer "event type" to index an array with directly; classify()
// performs the one type switch needed to recover it, after which dispatch
// itself is the flat array lookup spec.md §4.1/§9 require.
type eventKind int

const (
	kindUnknown eventKind = iota
	kindKeyPress
	kindKeyRelease
	kindButtonPress
	kindButtonRelease
	kindMotionNotify
	kindEnterNotify
	kindFocusIn
	kindMapRequest
	kindUnmapNotify
	kindDestroyNotify
	kindConfigureRequest
	kindConfigureNotify
	kindPropertyNotify
	kindClientMessage
	kindMappingNotify
	numEventKinds
)

func classify(ev xgb.Event) eventKind {
	switch ev.(type) {
	case xproto.KeyPressEvent:
		return kindKeyPress
	case xproto.KeyReleaseEvent:
		return kindKeyRelease
	case xproto.ButtonPressEvent:
		return kindButtonPress
	case xproto.ButtonReleaseEvent:
		return kindButtonRelease
	case xproto.MotionNotifyEvent:
		return kindMotionNotify
	case xproto.EnterNotifyEvent:
		return kindEnterNotify
	case xproto.FocusInEvent:
		return kindFocusIn
	case xproto.MapRequestEvent:
		return kindMapRequest
	case xproto.UnmapNotifyEvent:
		return kindUnmapNotify
	case xproto.DestroyNotifyEvent:
		return kindDestroyNotify
	case xproto.ConfigureRequestEvent:
		return kindConfigureRequest
	case xproto.ConfigureNotifyEvent:
		return kindConfigureNotify
	case xproto.PropertyNotifyEvent:
		return kindPropertyNotify
	case xproto.ClientMessageEvent:
		return kindClientMessage
	case xproto.MappingNotifyEvent:
		return kindMappingNotify
	default:
		return kindUnknown
	}
}

// isSyntheticEvent reports the X11 wire protocol's generic send_event bit
// (the top bit of an event's first byte — Xlib surfaces this uniformly as
// XAnyEvent.send_event; dwm's unmapnotify() reads it as ev->xunmap.send_event).
// None of xproto.xml's per-event field lists declare it, since it belongs to
// the shared event header rather than any one event body, so jezek/xgb's
// generated structs (UnmapNotifyEvent included) don't surface it as a field
// either; Bytes(), which re-encodes the header byte an incoming event was
// decoded from, is what's left to recover it.
func isSyntheticEvent(ev xgb.Event) bool {
	b := ev.Bytes()
	return len(b) > 0 && b[0]&0x80 != 0
}

// dispatch routes one event through the [numEventKinds]handler table. An
// unrecognized event kind is silently dropped, matching dwm's "handler[] is
// null for unhandled types" behavior.
func (w *WM) dispatch(ev xgb.Event) {
	kind := classify(ev)
	if kind == kindUnknown {
		return
	}
	if h := w.handlers[kind]; h != nil {
		h(ev)
	}
}

func (w *WM) installHandlers() {
	w.handlers = [numEventKinds]func(xgb.Event){
		kindKeyPress:         w.onKeyPress,
		kindKeyRelease:       w.onKeyRelease,
		kindButtonPress:      w.onButtonPress,
		kindButtonRelease:    w.onKeyRelease, // ButtonRelease resets combo exactly like KeyRelease (spec.md §4.7)
		kindMotionNotify:     w.onMotionNotify,
		kindEnterNotify:      w.onEnterNotify,
		kindFocusIn:          w.onFocusIn,
		kindMapRequest:       w.onMapRequest,
		kindUnmapNotify:      w.onUnmapNotify,
		kindDestroyNotify:    w.onDestroyNotify,
		kindConfigureRequest: w.onConfigureRequest,
		kindConfigureNotify:  w.onConfigureNotify,
		kindPropertyNotify:   w.onPropertyNotify,
		kindClientMessage:    w.onClientMessage,
		kindMappingNotify:    w.onMappingNotify,
	}
}

func (w *WM) onKeyPress(raw xgb.Event) {
	ev := raw.(xproto.KeyPressEvent)
	keysym := w.keycodeToKeysym(ev.Detail)
	clean := w.cleanMask(ev.State)
	for _, k := range w.keys {
		if k.Keysym == keysym && w.cleanMask(k.Mod) == clean && k.Action != nil {
			k.Action(w, k.Arg)
			return
		}
	}
}

func (w *WM) onKeyRelease(xgb.Event) {
	w.resetCombo()
}

func (w *WM) onButtonPress(raw xgb.Event) {
	ev := raw.(xproto.ButtonPressEvent)
	click := ClkRootWin
	var arg uint32

	if m := w.wintomon(ev.Event); m != w.SelMon {
		w.unfocus(w.SelMon.Sel, true)
		w.SelMon = m
		w.focus(nil)
	}

	if ev.Event == w.SelMon.BarWin {
		click, arg = classifyClick(int(ev.EventX), w.SelMon.WW, w.tagLabelWidths(), w.statusTextWidth())
	} else if c := w.wintoclient(ev.Event); c != nil {
		w.focus(c)
		w.restack(w.SelMon)
		_ = w.display.AllowReplayPointer()
		click = ClkClientWin
	}

	clean := w.cleanMask(ev.State)
	for _, b := range w.buttons {
		if b.Click == click && b.Button == ev.Detail && w.cleanMask(b.Mask) == clean && b.Action != nil {
			if click == ClkTagBar && b.Arg == 0 {
				b.Action(w, arg)
			} else {
				b.Action(w, b.Arg)
			}
			return
		}
	}
}

// tagLabelWidths and statusTextWidth delegate to the drawing collaborator
// (internal/drw.Metrics) to classify tag-bar clicks by pixel position —
// spec.md treats the bar's own rendering as external, but click
// classification still needs to know how wide each rendered label is.
func (w *WM) tagLabelWidths() []int {
	if w.metrics == nil {
		return nil
	}
	widths := make([]int, len(configTags()))
	for i, t := range configTags() {
		widths[i] = w.metrics.TextWidth(t)
	}
	return widths
}

func (w *WM) statusTextWidth() int {
	if w.metrics == nil || w.statusText == "" {
		return 0
	}
	return w.metrics.TextWidth(w.statusText)
}

func (w *WM) onMotionNotify(raw xgb.Event) {
	ev := raw.(xproto.MotionNotifyEvent)
	if ev.Event != w.display.RootWindow() {
		return
	}
	m := recttomon(w.Mons, w.SelMon, int(ev.RootX), int(ev.RootY), 1, 1)
	if w.lastMotionMon != nil && m != w.lastMotionMon {
		w.unfocus(w.SelMon.Sel, true)
		w.SelMon = m
		w.focus(nil)
	}
	w.lastMotionMon = m
}

func (w *WM) onEnterNotify(raw xgb.Event) {
	ev := raw.(xproto.EnterNotifyEvent)
	const notifyNormal, notifyInferior = 0, 2
	if (ev.Mode != notifyNormal || ev.Detail == notifyInferior) && ev.Event != w.display.RootWindow() {
		return
	}
	c := w.wintoclient(ev.Event)
	var m *Monitor
	if c != nil {
		m = c.Mon
	} else {
		m = w.wintomon(ev.Event)
	}
	if m != w.SelMon {
		w.unfocus(w.SelMon.Sel, true)
		w.SelMon = m
	} else if c == nil || c == w.SelMon.Sel {
		return
	}
	w.focus(c)
}

func (w *WM) onFocusIn(raw xgb.Event) {
	ev := raw.(xproto.FocusInEvent)
	if w.SelMon.Sel != nil && ev.Event != w.SelMon.Sel.Win {
		w.setfocus(w.SelMon.Sel)
	}
}

func (w *WM) onMapRequest(raw xgb.Event) {
	ev := raw.(xproto.MapRequestEvent)
	overrideRedirect, _, err := w.display.GetWindowAttributes(ev.Window)
	if err != nil || overrideRedirect {
		return
	}
	class, _, _ := w.display.GetClassHint(ev.Window)
	if w.AltBarClass != "" && containsFold(class, w.AltBarClass) {
		w.manageAltBar(ev.Window)
		return
	}
	if w.wintoclient(ev.Window) == nil {
		w.manage(ev.Window)
	}
}

func (w *WM) onUnmapNotify(raw xgb.Event) {
	ev := raw.(xproto.UnmapNotifyEvent)
	if c := w.wintoclient(ev.Window); c != nil {
		if isSyntheticEvent(raw) {
			// ICCCM §4.1.4 voluntary withdrawal: the client unmapped itself
			// and followed up with a synthetic UnmapNotify to root asking us
			// to mark it Withdrawn rather than tear it down. FromConfigure
			// is a different, protocol-specific bit (set when an ancestor's
			// ConfigureRequest unmaps the window as a side effect) and
			// doesn't apply here.
			w.setClientState(c, stateWithdrawn)
		} else {
			w.unmanage(c, false)
		}
		return
	}
	if m := w.wintomon(ev.Window); m != nil {
		if m.BarWin == ev.Window {
			w.unmanageAltBar(m)
		} else if m.TrayWin == ev.Window {
			w.unmanageTray(m)
		}
	}
}

func (w *WM) onDestroyNotify(raw xgb.Event) {
	ev := raw.(xproto.DestroyNotifyEvent)
	if c := w.wintoclient(ev.Window); c != nil {
		w.unmanage(c, true)
		return
	}
	if m := w.wintomon(ev.Window); m != nil {
		if m.BarWin == ev.Window {
			w.unmanageAltBar(m)
		} else if m.TrayWin == ev.Window {
			w.unmanageTray(m)
		}
	}
}

func (w *WM) onConfigureRequest(raw xgb.Event) {
	ev := raw.(xproto.ConfigureRequestEvent)
	c := w.wintoclient(ev.Window)
	if c == nil {
		_ = w.display.MoveResizeWindow(ev.Window, int32(ev.X), int32(ev.Y), uint32(ev.Width), uint32(ev.Height))
		return
	}
	const cwBorderWidth, cwX, cwY, cwWidth, cwHeight = 1 << 4, 1 << 0, 1 << 1, 1 << 2, 1 << 3
	if ev.ValueMask&cwBorderWidth != 0 {
		c.BW = int(ev.BorderWidth)
	} else if c.IsFloating {
		m := c.Mon
		if ev.ValueMask&cwX != 0 {
			c.OldX, c.X = c.X, m.MX+int(ev.X)
		}
		if ev.ValueMask&cwY != 0 {
			c.OldY, c.Y = c.Y, m.MY+int(ev.Y)
		}
		if ev.ValueMask&cwWidth != 0 {
			c.OldW, c.W = c.W, int(ev.Width)
		}
		if ev.ValueMask&cwHeight != 0 {
			c.OldH, c.H = c.H, int(ev.Height)
		}
		if c.X+c.W > m.MX+m.MW {
			c.X = m.MX + (m.MW/2 - c.width()/2)
		}
		if c.Y+c.H > m.MY+m.MH {
			c.Y = m.MY + (m.MH/2 - c.height()/2)
		}
		if ev.ValueMask&(cwX|cwY) != 0 && ev.ValueMask&(cwWidth|cwHeight) == 0 {
			_ = w.display.Configure(c.Win, int16(c.X), int16(c.Y), uint16(c.W), uint16(c.H), uint16(c.BW))
		}
		if c.visible() {
			_ = w.display.MoveResizeWindow(c.Win, int32(c.X), int32(c.Y), uint32(c.W), uint32(c.H))
		}
	} else {
		_ = w.display.Configure(c.Win, int16(c.X), int16(c.Y), uint16(c.W), uint16(c.H), uint16(c.BW))
	}
	_ = w.display.Sync()
}

func (w *WM) onConfigureNotify(raw xgb.Event) {
	ev := raw.(xproto.ConfigureNotifyEvent)
	if ev.Window != w.display.RootWindow() {
		return
	}
	dirty := w.screenW != int(ev.Width) || w.screenH != int(ev.Height)
	w.screenW, w.screenH = int(ev.Width), int(ev.Height)
	if w.updateGeom() || dirty {
		for m := w.Mons; m != nil; m = m.next {
			for c := m.Clients; c != nil; c = c.next {
				if c.IsFullscreen {
					w.resizeClient(c, m.MX, m.MY, m.MW, m.MH)
				}
			}
			if m.BarWin != 0 {
				_ = w.display.MoveResizeWindow(m.BarWin, int32(m.WX), int32(m.BY), uint32(m.WW), uint32(m.BH))
			}
		}
		w.focus(nil)
		w.arrange(nil)
	}
}

func (w *WM) onPropertyNotify(raw xgb.Event) {
	ev := raw.(xproto.PropertyNotifyEvent)
	const propertyDelete = 1
	if ev.State == propertyDelete {
		return
	}
	if ev.Window == w.display.RootWindow() {
		if ev.Atom == w.atoms.wmName || ev.Atom == w.atoms.netWMName {
			w.updateStatus()
		}
		return
	}
	c := w.wintoclient(ev.Window)
	if c == nil {
		return
	}
	switch ev.Atom {
	case w.atoms.wmTransientFor:
		if !c.IsFloating {
			if target, ok, _ := w.display.GetTransientFor(c.Win); ok {
				if w.wintoclient(target) != nil {
					c.IsFloating = true
					w.arrange(c.Mon)
				}
			}
		}
	case w.atoms.wmNormalHints:
		w.updateSizeHints(c)
	case w.atoms.wmHints:
		w.updateWMHints(c)
	}
	if ev.Atom == w.atoms.wmName || ev.Atom == w.atoms.netWMName {
		w.updateTitle(c)
	}
	if ev.Atom == w.atoms.netWMWindowType {
		w.updateWindowType(c)
	}
}

func (w *WM) onClientMessage(raw xgb.Event) {
	ev := raw.(xproto.ClientMessageEvent)
	c := w.wintoclient(ev.Window)
	if c == nil {
		return
	}
	data := clientMessageData32(ev)
	if ev.Type == w.atoms.netWMState {
		if len(data) >= 3 && (xproto.Atom(data[1]) == w.atoms.netWMFullscreen || xproto.Atom(data[2]) == w.atoms.netWMFullscreen) {
			w.setfullscreen(c, data[0] == 1 || (data[0] == 2 && !c.IsFullscreen))
		}
	} else if ev.Type == w.atoms.netActiveWindow {
		if c != w.SelMon.Sel && !c.IsUrgent {
			w.seturgent(c, true)
		}
	}
}

func (w *WM) onMappingNotify(raw xgb.Event) {
	ev := raw.(xproto.MappingNotifyEvent)
	const mappingKeyboard = 1
	if ev.Request == mappingKeyboard {
		w.rebuildKeyTables()
		w.grabKeys(w.keycodeOf)
	}
}

// clientMessageData32 reads the 32-bit-word view of a ClientMessage's data
// union, the only format dtile's own protocol use sends or expects.
func clientMessageData32(ev xproto.ClientMessageEvent) []uint32 {
	return ev.Data.Data32[:]
}

func containsFold(s, substr string) bool {
	return len(substr) == 0 || (len(s) >= len(substr) && indexFold(s, substr) >= 0)
}

func indexFold(s, substr string) int {
	for i := 0; i+len(substr) <= len(s); i++ {
		if equalFold(s[i:i+len(substr)], substr) {
			return i
		}
	}
	return -1
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
