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

// Command dtile is an X11 tiling window manager.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/distatus/dtile/internal/wm"
	"github.com/distatus/dtile/internal/xconn"
)

// version is the build identifier printed by -v, the same single-purpose
// flag dwm's main() recognizes before anything else runs.
const version = "dtile-1.0"

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-v]\n", os.Args[0])
	os.Exit(1)
}

func main() {
	v := flag.Bool("v", false, "print version information and exit")
	flag.Usage = usage
	flag.Parse()

	if *v {
		fmt.Println(version)
		return
	}
	if flag.NArg() > 0 {
		usage()
	}

	conn, err := xconn.Open()
	if err != nil {
		log.Fatalf("dtile: %v", err)
	}
	defer conn.Close()

	w := wm.New(conn)
	if err := w.Setup(); err != nil {
		log.Fatalf("dtile: %v", err)
	}
	w.Scan()
	w.RunAutostart()
	w.Run()
	w.Cleanup()
}
