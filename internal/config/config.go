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

// Package config holds dtile's compile-time configuration: the data half of
// dwm's config.h split out from the behavior half (internal/wm/keys.go binds
// these tables to actions). Nothing here is read from disk or re-read at
// runtime — matching spec.md §6's "configuration is compiled in" non-goal.
package config

// X11 modifier bits, stable across every X server (X.h KeyButMask values).
const (
	ShiftMask uint16 = 1 << 0
	LockMask  uint16 = 1 << 1
	CtrlMask  uint16 = 1 << 2
	Mod1Mask  uint16 = 1 << 3
	Mod2Mask  uint16 = 1 << 4
	Mod3Mask  uint16 = 1 << 5
	Mod4Mask  uint16 = 1 << 6
	Mod5Mask  uint16 = 1 << 7
)

// ModKey is the primary binding modifier (Mod4 a.k.a. "super"/"windows key").
const ModKey = Mod4Mask

// Keysym values from X11's keysymdef.h. Letters and digits share ASCII code
// points in the Latin-1 keysym range; the rest are the stable numeric
// constants X has shipped unchanged since X11R4.
const (
	XKSpace    = 0x0020
	XKComma    = 0x002c
	XKPeriod   = 0x002e
	XK0        = 0x0030
	XK1        = 0x0031
	XK2        = 0x0032
	XK3        = 0x0033
	XK4        = 0x0034
	XK5        = 0x0035
	XK6        = 0x0036
	XK7        = 0x0037
	XK8        = 0x0038
	XK9        = 0x0039
	XKB        = 0x0062
	XKD        = 0x0064
	XKE        = 0x0065
	XKF        = 0x0066
	XKH        = 0x0068
	XKI        = 0x0069
	XKJ        = 0x006a
	XKK        = 0x006b
	XKL        = 0x006c
	XKO        = 0x006f
	XKP        = 0x0070
	XKQ        = 0x0071
	XKU        = 0x0075
	XKY        = 0x0079
	XKZ        = 0x007a
	XKReturn   = 0xff0d
	XKNumLock  = 0xff7f
)

// Tags is the ordered list of workspace labels. Length must fit in the
// bitmask used by Client.Tags (31 bits, checked at package init below).
var Tags = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}

func init() {
	if len(Tags) > 31 {
		panic("config: too many tags to fit a 31-bit bitmask")
	}
}

// TagMask is the bitmask covering every configured tag.
func TagMask() uint32 {
	return uint32(1)<<uint(len(Tags)) - 1
}

// Rule is a compile-time matching rule applied to newly-managed windows
// (spec.md §4.5). A zero-value field (empty string, Monitor == -1) matches
// anything; non-empty class/instance/title match by substring.
type Rule struct {
	Class     string
	Instance  string
	Title     string
	Tags      uint32
	Floating  bool
	Monitor   int
}

// Rules mirrors dwm's config.h rules table.
var Rules = []Rule{
	{Class: "Gimp", Monitor: -1, Floating: true},
	{Class: "Firefox", Tags: 1 << 8, Monitor: -1},
}

// Appearance and layout defaults (dwm's config.h "appearance"/"tagging"
// section).
const (
	BorderPx    = 0
	GapPx       = 10
	Snap        = 32
	MFact       = 0.55
	NMaster     = 1
	ResizeHints = true
	AltBarClass = "Polybar"
	LrPad       = 16
)

// Fonts lists "path[:size]" descriptors tried in order for tag-bar/status
// text width measurement, dwm's config.h fonts[] array (drw_fontset_create
// tries each in turn). An empty string falls back to a system-matched
// default.
var Fonts = []string{"monospace:10"}

// Commands used by the default key bindings. Each is argv for exec.Command.
var (
	RunnerCmd   = []string{"rofi", "-show", "run"}
	TermCmd     = []string{"alacritty"}
	BrowserCmd  = []string{"firefox"}
	LockCmd     = []string{"betterlockscreen", "-l"}
	ZealCmd     = []string{"zeal"}
)
