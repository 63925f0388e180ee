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

// Package geom holds the pure rectangle arithmetic the tiling core needs:
// monitor intersection area, unique-screen deduplication from Xinerama-style
// head lists, and the snap-to-edge arithmetic used by the interactive
// gestures. None of it touches X; it exists so internal/wm can stay a set of
// testable pure functions over these types.
package geom

// Rect is an axis-aligned pixel rectangle: X/Y origin, W/H extent.
type Rect struct {
	X, Y int
	W, H int
}

// Intersect returns the area shared between r and other, clamped to zero
// when they don't overlap. Mirrors dwm's INTERSECT macro.
func Intersect(r, other Rect) int {
	w := min(r.X+r.W, other.X+other.W) - max(r.X, other.X)
	if w < 0 {
		w = 0
	}
	h := min(r.Y+r.H, other.Y+other.H) - max(r.Y, other.Y)
	if h < 0 {
		h = 0
	}
	return w * h
}

// Contains reports whether point (x,y) lies within r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Head is a deduplication-friendly monitor geometry, as reported by
// Xinerama. Two heads are Equal when their rectangles match exactly.
type Head struct {
	Rect
}

// UniqueHeads filters a raw Xinerama screen list down to the set of
// distinct rectangles, preserving first-seen order. dwm's updategeom does
// the equivalent with isuniquegeom over XineramaScreenInfo; gobar's
// headsEqual does the all-or-nothing version of the same comparison for its
// own bar-geometry refresh.
func UniqueHeads(raw []Rect) []Head {
	unique := make([]Head, 0, len(raw))
	for _, r := range raw {
		dup := false
		for _, u := range unique {
			if u.Rect == r {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, Head{Rect: r})
		}
	}
	return unique
}

// HeadsEqual reports whether two head slices describe the same monitor
// layout in the same order, the same check gobar's headsEqual performs
// before deciding to recreate its bar windows. updateGeom does not call it;
// it compares monitor fields directly.
func HeadsEqual(a, b []Head) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Rect != b[i].Rect {
			return false
		}
	}
	return true
}

// SnapEdge returns pos adjusted to edge when within snap pixels of it either on
// the leading or trailing side of a span of length size inside bound..bound+boundSize.
func SnapEdge(pos, size, bound, boundSize, snap int) int {
	if abs(bound-pos) < snap {
		return bound
	}
	if abs((bound+boundSize)-(pos+size)) < snap {
		return bound + boundSize - size
	}
	return pos
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
