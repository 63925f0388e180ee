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

// Package drw is dtile's version of the "drawing library used for cursors
// and font metrics" spec.md §1/§6 treats as an external collaborator: the
// tiling core only ever sees the Metrics interface and the cursor Shape
// constants below. It is adapted from the teacher's (gobar) fontfinder.go,
// repurposed from rendering bar text to measuring tag-bar click regions
// (spec.md §4.7's TEXTW-driven click classification) and building the three
// cursor shapes move/resize/normal grabs need (spec.md §4.8).
package drw

import (
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/adrg/sysfont"
	findfont "github.com/flopp/go-findfont"
	"github.com/jezek/xgbutil/xgraphics"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/font/opentype"
)

// Metrics answers width questions about rendered text, the only thing the
// tiling core needs from the drawing collaborator: classifying a ButtonPress
// x-coordinate against the tag-bar/status-text/window-title regions
// (spec.md §4.7) requires knowing how wide each tag label renders.
type Metrics interface {
	// TextWidth returns the pixel width of s set in the primary font,
	// including left+right padding (lrpad in dwm's TEXTW macro).
	TextWidth(s string) int
}

// Faces loads the configured font list, falling back to a system font match
// and finally to a built-in bitmap font, exactly as gobar's fontfinder.go
// does for bar text rendering.
type Faces struct {
	faces  []font.Face
	lrpad  int
}

// NewFaces builds a Faces metrics provider from a comma-free list of
// "path[:size]" font descriptors. An empty list falls back to the system
// default at size 12, matching gobar's main() when no -fonts flag is given.
func NewFaces(defs []string, lrpad int) *Faces {
	if len(defs) == 0 {
		defs = []string{""}
	}
	faces := make([]font.Face, 0, len(defs))
	for _, def := range defs {
		faces = append(faces, findFont(def))
	}
	return &Faces{faces: faces, lrpad: lrpad}
}

// TextWidth implements Metrics using the primary (first) face.
func (f *Faces) TextWidth(s string) int {
	return font.MeasureString(f.faces[0], s).Round() + f.lrpad
}

func findFont(def string) font.Face {
	i := strings.LastIndexByte(def, ':')
	name, size := parseSize(def, i)

	fontPath, err := findfont.Find(name)
	if err != nil {
		log.Printf("Could not find font `%s`, trying alternate method: %s", def, err)
		return findFontFallback(def, size)
	}
	fontFile, err := os.Open(fontPath)
	if err != nil {
		log.Printf("Could not open font `%s`, trying to find another one: %s", fontPath, err)
		return findFontFallback(def, size)
	}
	defer fontFile.Close()
	face, err := parseFontFace(fontFile, size)
	if err != nil {
		log.Printf("Could not parse font `%s`, trying to find another one: %s", fontPath, err)
		return findFontFallback(def, size)
	}
	return face
}

var fallbackFinder *sysfont.Finder

func findFontFallback(def string, size float64) font.Face {
	if fallbackFinder == nil {
		fallbackFinder = sysfont.NewFinder(nil)
	}

	fontDef := fallbackFinder.Match(def)
	if fontDef == nil {
		log.Printf("Could not find font `%s`, using built-in fallback", def)
		return inconsolata.Regular8x16
	}
	fontFile, err := os.Open(fontDef.Filename)
	if err != nil {
		log.Printf("Could not open font `%s`, using built-in fallback: %s", fontDef.Filename, err)
		return inconsolata.Regular8x16
	}
	defer fontFile.Close()
	face, err := parseFontFace(fontFile, size)
	if err != nil {
		log.Printf("Could not parse font `%s`, using built-in fallback: %s", fontDef.Filename, err)
		return inconsolata.Regular8x16
	}
	return face
}

func parseFontFace(file io.Reader, size float64) (font.Face, error) {
	otf, err := xgraphics.ParseFont(file)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{Size: size, DPI: 72})
	if err != nil {
		return nil, err
	}
	return face, nil
}

func parseSize(def string, i int) (string, float64) {
	if i == -1 {
		return def, 12
	}
	name, sizeStr := def[:i], def[i+1:]
	size, err := strconv.ParseFloat(sizeStr, 32)
	if err != nil {
		log.Printf("Invalid font size `%s` for `%s`, using `12`: `%s`", sizeStr, name, err)
		size = 12
	}
	return name, size
}
