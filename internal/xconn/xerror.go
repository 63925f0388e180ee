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

package xconn

import (
	"fmt"

	"github.com/jezek/xgb/xproto"
)

// Standard X11 core protocol request opcodes (X.h), needed to tell apart
// which request produced a given error. These numbers are part of the wire
// protocol itself and have been stable since X11R1.
const (
	opSetInputFocus     = 42
	opPolyText8         = 74
	opPolyFillRectangle = 70
	opPolySegment       = 66
	opConfigureWindow   = 12
	opGrabButton        = 28
	opGrabKey           = 33
	opCopyArea          = 62
)

// IsBenign reports whether err is one of the small set of X errors dwm's own
// xerror() handler absorbs rather than treating as fatal: races where a
// window has already been destroyed by the time a request referencing it
// reaches the server. There is no reliable way to check for accesses to an
// already-destroyed window up front, so these are absorbed: the event loop
// drops them without logging.
func IsBenign(err error) bool {
	switch e := err.(type) {
	case xproto.WindowError:
		return true
	case xproto.MatchError:
		return e.MajorOpcode == opSetInputFocus || e.MajorOpcode == opConfigureWindow
	case xproto.DrawableError:
		switch e.MajorOpcode {
		case opPolyText8, opPolyFillRectangle, opPolySegment, opCopyArea:
			return true
		}
		return false
	case xproto.AccessError:
		return e.MajorOpcode == opGrabButton || e.MajorOpcode == opGrabKey
	default:
		return false
	}
}

// Describe renders an X error the way dwm's xerror() logs a fatal one. The
// event loop uses it to log the errors IsBenign does not absorb, as a
// warning instead of a crash.
func Describe(err error) string {
	switch e := err.(type) {
	case xproto.WindowError:
		return errString("BadWindow", uint8(e.MajorOpcode), e.Sequence)
	case xproto.MatchError:
		return errString("BadMatch", uint8(e.MajorOpcode), e.Sequence)
	case xproto.DrawableError:
		return errString("BadDrawable", uint8(e.MajorOpcode), e.Sequence)
	case xproto.AccessError:
		return errString("BadAccess", uint8(e.MajorOpcode), e.Sequence)
	default:
		return err.Error()
	}
}

func errString(code string, major uint8, seq uint16) string {
	return fmt.Sprintf("xconn: %s: request=%d sequence=%d", code, major, seq)
}
