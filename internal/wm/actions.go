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
	"os"
	"os/exec"
	"syscall"

	"github.com/distatus/dtile/internal/config"
)

// Arg carries a key/button binding's compile-time argument: a tag
// bitmask, a signed step (focus/monitor direction, nmaster delta), or an
// argv for spawn. dwm's union Arg split across four Go fields since Go
// has no untagged unions.
type Arg struct {
	UI  uint32
	I   int
	F   float64
	Cmd []string
}

// View switches SelMon to tagMask, unless it's already the active tagset —
// dwm's view(). The double-buffered TagSet lets a second View(tagMask)
// toggle back to whatever was showing before.
func (w *WM) View(tagMask uint32) {
	tagMask &= config.TagMask()
	if tagMask == w.SelMon.TagSet[w.SelMon.SelTags] {
		return
	}
	w.SelMon.SelTags ^= 1
	if tagMask != 0 {
		w.SelMon.TagSet[w.SelMon.SelTags] = tagMask
	}
	w.focus(nil)
	w.arrange(w.SelMon)
}

// ToggleView XORs tagMask into the active tagset, refusing to leave it
// empty — dwm's toggleview(), spec.md invariant I6.
func (w *WM) ToggleView(tagMask uint32) {
	newSet := w.SelMon.TagSet[w.SelMon.SelTags] ^ (tagMask & config.TagMask())
	if newSet == 0 {
		return
	}
	w.SelMon.TagSet[w.SelMon.SelTags] = newSet
	w.focus(nil)
	w.arrange(w.SelMon)
}

// Tag assigns tagMask to the selected client — dwm's tag().
func (w *WM) Tag(tagMask uint32) {
	if w.SelMon.Sel == nil {
		return
	}
	tagMask &= config.TagMask()
	if tagMask == 0 {
		return
	}
	w.SelMon.Sel.Tags = tagMask
	w.focus(nil)
	w.arrange(w.SelMon)
}

// ToggleTag XORs tagMask into the selected client's tags, refusing to leave
// it tagless — dwm's toggletag(), I6.
func (w *WM) ToggleTag(tagMask uint32) {
	if w.SelMon.Sel == nil {
		return
	}
	newTags := w.SelMon.Sel.Tags ^ (tagMask & config.TagMask())
	if newTags == 0 {
		return
	}
	w.SelMon.Sel.Tags = newTags
	w.focus(nil)
	w.arrange(w.SelMon)
}

// FocusStack moves selection forward (dir > 0) or backward through the
// visible clients on SelMon, wrapping around — dwm's focusstack().
func (w *WM) FocusStack(dir int) {
	if w.SelMon.Sel == nil {
		return
	}
	var next *Client
	if dir > 0 {
		for c := w.SelMon.Sel.next; c != nil; c = c.next {
			if c.visible() {
				next = c
				break
			}
		}
		if next == nil {
			for c := w.SelMon.Clients; c != nil; c = c.next {
				if c.visible() {
					next = c
					break
				}
			}
		}
	} else {
		var last *Client
		for c := w.SelMon.Clients; c != w.SelMon.Sel && c != nil; c = c.next {
			if c.visible() {
				last = c
			}
		}
		if last == nil {
			for c := w.SelMon.Sel; c != nil; c = c.next {
				if c.visible() {
					last = c
				}
			}
		}
		next = last
	}
	if next != nil {
		w.focus(next)
		w.restack(w.SelMon)
	}
}

// FocusMon switches SelMon to the monitor dir steps away — dwm's focusmon().
func (w *WM) FocusMon(dir int) {
	if w.Mons.next == nil {
		return
	}
	m := dirToMon(w.Mons, w.SelMon, dir)
	if m == w.SelMon {
		return
	}
	w.unfocus(w.SelMon.Sel, false)
	w.SelMon = m
	w.focus(nil)
}

// TagMon sends the selected client to the monitor dir steps away — dwm's
// tagmon().
func (w *WM) TagMon(dir int) {
	if w.SelMon.Sel == nil || w.Mons.next == nil {
		return
	}
	w.sendmon(w.SelMon.Sel, dirToMon(w.Mons, w.SelMon, dir))
}

// IncNMaster changes SelMon's master-area client count by delta, floored at
// zero — dwm's incnmaster().
func (w *WM) IncNMaster(delta int) {
	w.SelMon.NMaster = max(w.SelMon.NMaster+delta, 0)
	w.arrange(w.SelMon)
}

// SetMFact adjusts SelMon's master-area fraction. Values < 1.0 are treated
// as a relative delta, values >= 1.0 as absolute (minus 1.0) — dwm's
// setmfact()'s "arg > 1.0 will set mfact absolutely" convention.
func (w *WM) SetMFact(f float64) {
	if f < 1.0 {
		f += w.SelMon.MFact
	} else {
		f -= 1.0
	}
	if f < 0.05 || f > 0.95 {
		return
	}
	w.SelMon.MFact = f
	w.arrange(w.SelMon)
}

// ToggleFloating flips the selected client's floating flag (fixed clients
// always count as floating) and re-arranges — dwm's togglefloating().
func (w *WM) ToggleFloating() {
	c := w.SelMon.Sel
	if c == nil || c.IsFullscreen {
		return
	}
	c.IsFloating = !c.IsFloating || c.IsFixed
	if c.IsFloating {
		w.resize(c, c.X, c.Y, c.W, c.H, false)
	}
	w.arrange(w.SelMon)
}

// ToggleFullscreen flips the selected client's fullscreen state.
func (w *WM) ToggleFullscreen() {
	if w.SelMon.Sel != nil {
		w.setfullscreen(w.SelMon.Sel, !w.SelMon.Sel.IsFullscreen)
	}
}

// Zoom promotes the selection to the master column.
func (w *WM) Zoom() { w.zoom() }

// KillClient asks the selected client to close via WM_DELETE_WINDOW, or
// forcibly destroys it server-side if it doesn't speak that protocol —
// dwm's killclient(). The forced path brackets XKillClient in a server
// grab and discards the request's error, since a client that's already
// vanished answers with BadWindow.
func (w *WM) KillClient() {
	c := w.SelMon.Sel
	if c == nil {
		return
	}
	if w.sendEvent(c, w.atoms.wmDelete) {
		return
	}
	_ = w.display.GrabServer()
	_ = w.display.KillClient(c.Win)
	_ = w.display.Sync()
	_ = w.display.UngrabServer()
}

// Quit stops the event loop; the next pass through run() sees Running
// false and returns — dwm's quit().
func (w *WM) Quit() { w.Running = false }

// Spawn execs argv as a detached child: closing no file descriptors of its
// own matters (Go doesn't share the X socket fd with children by default
// the way a fork()'d C process would inherit it), but mirrors dwm's
// spawn()'s "child doesn't share WM state, parent doesn't block" contract.
// The child is started in its own session via SysProcAttr.Setsid,
// matching dwm's setsid().
func (w *WM) Spawn(argv []string) {
	if len(argv) == 0 {
		return
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		w.logf("spawn %v: %v", argv, err)
		return
	}
	go func() { _ = cmd.Wait() }()
}
