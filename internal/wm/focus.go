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

import "github.com/jezek/xgb/xproto"

// focus selects c for input focus, falling back to the topmost visible
// stack entry on SelMon when c is nil or no longer visible — dwm's focus().
func (w *WM) focus(c *Client) {
	if c == nil || !c.visible() {
		c = nil
		for t := w.SelMon.Stack; t != nil; t = t.snext {
			if t.visible() {
				c = t
				break
			}
		}
	}
	if w.SelMon.Sel != nil && w.SelMon.Sel != c {
		w.unfocus(w.SelMon.Sel, false)
	}
	if c != nil {
		if c.Mon != w.SelMon {
			w.SelMon = c.Mon
		}
		if c.IsUrgent {
			w.seturgent(c, false)
		}
		detachStack(c)
		attachStack(c)
		w.grabButtons(c, true)
		w.setfocus(c)
	} else {
		_ = w.display.SetInputFocus(0)
		_ = w.display.DeleteProperty(w.display.RootWindow(), w.atoms.netActiveWindow)
	}
	w.SelMon.Sel = c
}

// unfocus releases c's focused-state button grabs and, if setFocus is true,
// hands X input focus back to the root window and clears the EWMH active
// window property — dwm's unfocus().
func (w *WM) unfocus(c *Client, setFocus bool) {
	if c == nil {
		return
	}
	w.grabButtons(c, false)
	if setFocus {
		_ = w.display.SetInputFocus(0)
		_ = w.display.DeleteProperty(w.display.RootWindow(), w.atoms.netActiveWindow)
	}
}

// setfocus gives c input focus (unless it asked never to receive it via
// ICCCM WM_HINTS input=False) and always offers it WM_TAKE_FOCUS, matching
// dwm's setfocus().
func (w *WM) setfocus(c *Client) {
	if !c.NeverFocus {
		_ = w.display.SetInputFocus(c.Win)
		_ = w.display.SetWindowProperty(w.display.RootWindow(), w.atoms.netActiveWindow, c.Win)
	}
	w.sendEvent(c, w.atoms.wmTakeFocus)
}

// sendEvent delivers a WM_PROTOCOLS client message carrying proto if c
// advertises support for it, returning whether it was sent. dwm's
// sendevent queries XGetWMProtocols each call; dtile does the same via a
// fresh property read rather than caching the protocol list, since it only
// runs on focus transitions and client kills, not the hot layout path.
func (w *WM) sendEvent(c *Client, proto xproto.Atom) bool {
	protocols, err := w.display.GetAtomListProperty(c.Win, w.atoms.wmProtocols)
	if err != nil {
		return false
	}
	found := false
	for _, p := range protocols {
		if p == proto {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	_ = w.display.SendClientMessage32(c.Win, w.atoms.wmProtocols, [5]uint32{uint32(proto), 0, 0, 0, 0})
	return true
}

// restack raises a floating selection above its siblings, syncs so any
// EnterNotify the raise provoked is queued, then drains that queue itself so
// the raise can't bounce focus back onto whatever the pointer now sits over
// — dwm's restack(): "XSync(dpy, False); while
// (XCheckMaskEvent(dpy, EnterWindowMask, &ev));". Anything other than
// EnterNotify turning up in the drain is re-dispatched rather than dropped.
func (w *WM) restack(m *Monitor) {
	if m.Sel == nil {
		return
	}
	if m.Sel.IsFloating {
		_ = w.display.RaiseWindow(m.Sel.Win)
	}
	_ = w.display.Sync()
	for {
		ev, err := w.display.PollForEvent()
		if err != nil || ev == nil {
			break
		}
		if _, ok := ev.(xproto.EnterNotifyEvent); ok {
			continue
		}
		w.dispatch(ev)
	}
}

// zoom promotes the selected client to the master slot: if it's already
// the first tiled client, the next tiled client is promoted instead (so
// repeated zoom cycles the top two), matching dwm's zoom().
func (w *WM) zoom() {
	c := w.SelMon.Sel
	if c == nil || c.IsFloating {
		return
	}
	if c == nextTiled(w.SelMon.Clients) {
		c = nextTiled(c.next)
		if c == nil {
			return
		}
	}
	w.pop(c)
}

// pop detaches c and reattaches it at the head of the tile list, focuses
// it, and re-arranges — dwm's pop(), used by zoom and window adoption.
func (w *WM) pop(c *Client) {
	detach(c)
	attach(c)
	w.focus(c)
	w.arrange(c.Mon)
}

// setfullscreen toggles c's fullscreen state, saving/restoring its
// pre-fullscreen floating flag, border width and geometry exactly as dwm's
// setfullscreen() does.
func (w *WM) setfullscreen(c *Client, on bool) {
	if on && !c.IsFullscreen {
		_ = w.display.ChangeProperty32(0, c.Win, w.atoms.netWMState, 4 /* ATOM */, []uint32{uint32(w.atoms.netWMFullscreen)})
		c.IsFullscreen = true
		c.OldState = c.IsFloating
		c.OldBW = c.BW
		c.BW = 0
		c.IsFloating = true
		w.resizeClient(c, c.Mon.MX, c.Mon.MY, c.Mon.MW, c.Mon.MH)
		_ = w.display.RaiseWindow(c.Win)
	} else if !on && c.IsFullscreen {
		_ = w.display.ChangeProperty32(0, c.Win, w.atoms.netWMState, 4, nil)
		c.IsFullscreen = false
		c.IsFloating = c.OldState
		c.BW = c.OldBW
		c.X, c.Y, c.W, c.H = c.OldX, c.OldY, c.OldW, c.OldH
		w.resizeClient(c, c.X, c.Y, c.W, c.H)
		w.arrange(c.Mon)
	}
}

// seturgent flags c as demanding attention. Only the model-level flag is
// set; the client's WM_HINTS urgency bit is not written here. The one
// WM_HINTS write-back is in rules.go's updateWMHints, which clears the bit
// when the selected client sets it.
func (w *WM) seturgent(c *Client, urgent bool) {
	c.IsUrgent = urgent
}

// sendmon migrates c to monitor m: unfocus, detach from both lists on the
// old monitor, reattach on the new one inheriting its current tagset, then
// refocus and re-arrange both monitors — dwm's sendmon().
func (w *WM) sendmon(c *Client, m *Monitor) {
	if c.Mon == m {
		return
	}
	w.unfocus(c, true)
	detach(c)
	detachStack(c)
	c.Mon = m
	c.Tags = m.TagSet[m.SelTags]
	attach(c)
	attachStack(c)
	w.focus(nil)
	w.arrange(nil)
}
