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

import "github.com/jezek/xgb/xproto"

// GetKeyboardMapping fetches the server's keycode range and the keysyms
// bound to each keycode in it, the data dwm's updatenumlockmask/grabkeys
// machinery resolves keysym<->keycode against.
func (c *Conn) GetKeyboardMapping() (xproto.Keycode, [][]uint32, error) {
	setup := xproto.Setup(c.X.Conn())
	first := setup.MinKeycode
	count := byte(setup.MaxKeycode - setup.MinKeycode + 1)

	reply, err := xproto.GetKeyboardMapping(c.X.Conn(), first, count).Reply()
	if err != nil {
		return 0, nil, err
	}

	perKeycode := int(reply.KeysymsPerKeycode)
	out := make([][]uint32, count)
	for i := 0; i < int(count); i++ {
		row := make([]uint32, perKeycode)
		for j := 0; j < perKeycode; j++ {
			row[j] = uint32(reply.Keysyms[i*perKeycode+j])
		}
		out[i] = row
	}
	return first, out, nil
}

// GetModifierMapping fetches the server's modifier-to-keycode table
// (Shift, Lock, Control, Mod1..Mod5 in that order), used to discover which
// bit the server currently assigns to Num_Lock.
func (c *Conn) GetModifierMapping() ([8][]xproto.Keycode, error) {
	var out [8][]xproto.Keycode
	reply, err := xproto.GetModifierMapping(c.X.Conn()).Reply()
	if err != nil {
		return out, err
	}
	perMod := int(reply.KeycodesPerModifier)
	for i := 0; i < 8; i++ {
		row := make([]xproto.Keycode, 0, perMod)
		for j := 0; j < perMod; j++ {
			kc := reply.Keycodes[i*perMod+j]
			if kc != 0 {
				row = append(row, kc)
			}
		}
		out[i] = row
	}
	return out, nil
}
