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

package drw

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// Shape names a standard X cursor-font glyph. Values are the stable glyph
// indices from the core X cursor font (cursorfont.h); the mask glyph for
// shape N is always N+1, the font's glyph-pair convention.
type Shape uint16

const (
	Normal Shape = 68  // XC_left_ptr
	Resize Shape = 120 // XC_sizing
	Move   Shape = 52  // XC_fleur
)

// NewCursor allocates an X ID for shape and asks the server to render it
// from the standard "cursor" font, the technique XCreateFontCursor uses
// under Xlib. Callers own the returned ID and must FreeCursor it on
// teardown.
func NewCursor(conn *xgb.Conn, shape Shape) (xproto.Cursor, error) {
	fontID, err := conn.NewId()
	if err != nil {
		return 0, err
	}
	fid := xproto.Font(fontID)
	if err := xproto.OpenFontChecked(conn, fid, uint16(len("cursor")), "cursor").Check(); err != nil {
		return 0, err
	}
	defer xproto.CloseFont(conn, fid)

	cursorID, err := conn.NewId()
	if err != nil {
		return 0, err
	}
	cid := xproto.Cursor(cursorID)
	err = xproto.CreateGlyphCursorChecked(
		conn, cid, fid, fid,
		uint16(shape), uint16(shape)+1,
		0, 0, 0, // foreground: black
		0xffff, 0xffff, 0xffff, // background: white
	).Check()
	if err != nil {
		return 0, err
	}
	return cid, nil
}

// FreeCursor releases a cursor created by NewCursor.
func FreeCursor(conn *xgb.Conn, cur xproto.Cursor) error {
	return xproto.FreeCursorChecked(conn, cur).Check()
}
