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

// Client is one managed top-level window.
type Client struct {
	Name string

	Win xproto.Window

	X, Y, W, H          int
	OldX, OldY, OldW, OldH int
	BW, OldBW           int

	BaseW, BaseH int
	IncW, IncH   int
	MaxW, MaxH   int
	MinW, MinH   int
	MinA, MaxA   float64

	Tags uint32

	IsFixed      bool
	IsFloating   bool
	IsUrgent     bool
	NeverFocus   bool
	OldState     bool
	IsFullscreen bool

	Mon *Monitor

	next  *Client
	snext *Client
}

// width/height report the outer extent of c including its border, dwm's
// WIDTH/HEIGHT macros.
func (c *Client) width() int  { return c.W + 2*c.BW }
func (c *Client) height() int { return c.H + 2*c.BW }

// visible reports whether c intersects its monitor's currently selected
// tagset (dwm's ISVISIBLE macro).
func (c *Client) visible() bool {
	return c.Tags&c.Mon.TagSet[c.Mon.SelTags] != 0
}

// applySizeHints mutates (x, y, w, h) in place per ICCCM 4.1.2.3, the same
// algorithm dwm's applysizehints runs on every placement. interact controls
// whether a window is clamped against the whole screen (a user-driven
// interactive move/resize) or against its monitor's usable area (placement
// driven by the layout engine). It returns whether anything changed.
func (c *Client) applySizeHints(x, y, w, h *int, interact bool, screenW, screenH, barH int, hintsRespected bool) bool {
	*w = max(1, *w)
	*h = max(1, *h)
	m := c.Mon
	if interact {
		if *x > screenW {
			*x = screenW - c.width()
		}
		if *y > screenH {
			*y = screenH - c.height()
		}
		if *x+*w+2*c.BW < 0 {
			*x = 0
		}
		if *y+*h+2*c.BW < 0 {
			*y = 0
		}
	} else {
		if *x >= m.WX+m.WW {
			*x = m.WX + m.WW - c.width()
		}
		if *y >= m.WY+m.WH {
			*y = m.WY + m.WH - c.height()
		}
		if *x+*w+2*c.BW <= m.WX {
			*x = m.WX
		}
		if *y+*h+2*c.BW <= m.WY {
			*y = m.WY
		}
	}
	if *h < barH {
		*h = barH
	}
	if *w < barH {
		*w = barH
	}
	if hintsRespected || c.IsFloating {
		baseIsMin := c.BaseW == c.MinW && c.BaseH == c.MinH
		if !baseIsMin {
			*w -= c.BaseW
			*h -= c.BaseH
		}
		if c.MinA > 0 && c.MaxA > 0 {
			fw, fh := float64(*w), float64(*h)
			if c.MaxA < fw/fh {
				*w = int(fh*c.MaxA + 0.5)
			} else if c.MinA < fh/fw {
				*h = int(fw*c.MinA + 0.5)
			}
		}
		if baseIsMin {
			*w -= c.BaseW
			*h -= c.BaseH
		}
		if c.IncW != 0 {
			*w -= *w % c.IncW
		}
		if c.IncH != 0 {
			*h -= *h % c.IncH
		}
		*w = max(*w+c.BaseW, c.MinW)
		*h = max(*h+c.BaseH, c.MinH)
		if c.MaxW != 0 {
			*w = min(*w, c.MaxW)
		}
		if c.MaxH != 0 {
			*h = min(*h, c.MaxH)
		}
	}
	return *x != c.X || *y != c.Y || *w != c.W || *h != c.H
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
