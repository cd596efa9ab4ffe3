// Copyright (c) 2025, The SciFi Room Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package screens

import (
	"image"
	"image/color"
	"time"

	"cogentcore.org/core/xyz"
)

// DefaultScrollLines is the listing shown on the wall panel.
var DefaultScrollLines = []string{
	"> boot sequence complete",
	"core.init(reactor=ONLINE)",
	"link.dish[0] locked 2.4THz",
	"for s in stations:",
	"    s.sync(clock.utc)",
	"nav.plot(earth -> belt)",
	"o2.scrub cycle 4421 ok",
	"mem 512TB free of 1PB",
	"> telemetry stream open",
	"hull.integrity = 99.97%",
	"thermal.south panel nominal",
	"queue.jobs drained in 8ms",
	"> awaiting operator input_",
}

// Scroll is a code-listing panel that scrolls one text row per tick.
// Unlike [Rain] it runs on its own fixed-delay timer, fully decoupled
// from the render cadence.
type Scroll struct {

	// Tex wraps the pixel buffer for use as a scene texture.
	Tex *xyz.TextureBase

	// Img is the private pixel buffer; mutated only by Step.
	Img *image.RGBA

	// Lines is the listing, cycled endlessly.
	Lines []string

	// Offset is the index of the top visible line.
	Offset int

	rows int
	stop chan struct{}
}

// NewScroll makes a scroll panel of the given pixel size showing the given
// lines (DefaultScrollLines if nil).
func NewScroll(name string, w, h int, lines []string) *Scroll {
	if lines == nil {
		lines = DefaultScrollLines
	}
	s := &Scroll{
		Img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		Lines: lines,
		rows:  h / cellH,
		stop:  make(chan struct{}),
	}
	s.Tex = &xyz.TextureBase{Name: name, RGBA: s.Img}
	s.paint()
	return s
}

// Step advances the scroll offset by one line and repaints.
func (s *Scroll) Step() {
	s.Offset = (s.Offset + 1) % len(s.Lines)
	s.paint()
}

// Run repaints on its own ticker until Stop is called. After each repaint
// it calls dirty, which must re-register the texture under the render lock.
// Run blocks; call it in a goroutine.
func (s *Scroll) Run(interval time.Duration, dirty func()) {
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-tick.C:
			s.Step()
			dirty()
		}
	}
}

// Stop terminates a running Run loop.
func (s *Scroll) Stop() {
	close(s.stop)
}

func (s *Scroll) paint() {
	fill(s.Img, color.RGBA{2, 6, 18, 255})
	for i := 0; i < s.rows; i++ {
		ln := s.Lines[(s.Offset+i)%len(s.Lines)]
		c := color.RGBA{120, 200, 255, 255}
		if len(ln) > 0 && ln[0] == '>' {
			c = color.RGBA{255, 190, 80, 255}
		}
		drawString(s.Img, 4, (i+1)*cellH, ln, c)
	}
}
