// Copyright (c) 2025, The SciFi Room Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package screens implements the animated pixel-buffer textures shown on
// the room's displays: a matrix-rain monitor repainted on the main frame
// tick, and a code-scroll wall panel driven by its own timer, decoupled
// from the render cadence. Each screen owns a private image.RGBA wrapped
// in an [xyz.TextureBase]; after a repaint the caller re-registers the
// texture on the scene so the renderer re-uploads it.
package screens

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// glyph cell size for the basicfont face
const (
	cellW = 8
	cellH = 14
)

var face = basicfont.Face7x13

func drawString(dst *image.RGBA, x, y int, s string, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func fill(dst *image.RGBA, c color.Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}
