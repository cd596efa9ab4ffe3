// Copyright (c) 2025, The SciFi Room Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package screens

import (
	"image"
	"image/color"
	"math/rand"

	"cogentcore.org/core/xyz"
)

const rainGlyphs = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789#$%&*+=<>/\\|"

// Rain is a matrix-rain screen: per-column fall positions advance on every
// Step and the whole buffer is repainted. Step is called from the main
// frame loop, so the fall speed is in rows per frame.
type Rain struct {

	// Tex wraps the pixel buffer for use as a scene texture.
	Tex *xyz.TextureBase

	// Img is the private pixel buffer; mutated only by Step.
	Img *image.RGBA

	// Heads is the current head row of each column.
	Heads []int

	speeds []int
	trails []int
	rows   int
	rng    *rand.Rand
}

// NewRain makes a rain screen of the given pixel size. The seed makes the
// column speeds and glyph choices reproducible.
func NewRain(name string, w, h int, seed int64) *Rain {
	r := &Rain{
		Img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		rng:  rand.New(rand.NewSource(seed)),
		rows: h / cellH,
	}
	r.Tex = &xyz.TextureBase{Name: name, RGBA: r.Img}
	ncol := w / cellW
	r.Heads = make([]int, ncol)
	r.speeds = make([]int, ncol)
	r.trails = make([]int, ncol)
	for i := range r.Heads {
		r.Heads[i] = -r.rng.Intn(r.rows)
		r.speeds[i] = 1 + r.rng.Intn(2)
		r.trails[i] = 6 + r.rng.Intn(10)
	}
	r.paint()
	return r
}

// Step advances every column by its speed and repaints the buffer.
// The caller re-registers Tex on the scene afterwards.
func (r *Rain) Step() {
	for i := range r.Heads {
		r.Heads[i] += r.speeds[i]
		if r.Heads[i]-r.trails[i] > r.rows {
			r.Heads[i] = -r.rng.Intn(r.rows)
			r.speeds[i] = 1 + r.rng.Intn(2)
			r.trails[i] = 6 + r.rng.Intn(10)
		}
	}
	r.paint()
}

func (r *Rain) paint() {
	fill(r.Img, color.RGBA{0, 8, 0, 255})
	for col, head := range r.Heads {
		x := col * cellW
		for i := 0; i < r.trails[col]; i++ {
			row := head - i
			if row < 0 || row >= r.rows {
				continue
			}
			g := string(rainGlyphs[r.rng.Intn(len(rainGlyphs))])
			var c color.RGBA
			if i == 0 {
				c = color.RGBA{200, 255, 200, 255}
			} else {
				v := uint8(255 - i*255/r.trails[col])
				c = color.RGBA{0, v, 0, 255}
			}
			drawString(r.Img, x, (row+1)*cellH, g, c)
		}
	}
}
