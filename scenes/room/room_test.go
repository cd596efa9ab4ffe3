// Copyright (c) 2025, The SciFi Room Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package room

import (
	"image/color"
	"sync/atomic"
	"testing"
	"time"

	"cogentcore.org/core/xyz"
	"github.com/stretchr/testify/assert"

	"github.com/Devashyasahu/scifi-3-D-room/texload"
)

func testConfig() *Config {
	cfg := &Config{}
	cfg.Defaults()
	cfg.TextureBase = "http://127.0.0.1:1"
	return cfg
}

func testLoader() *texload.Loader {
	return texload.New(100*time.Millisecond, color.RGBA{50, 50, 50, 255})
}

func TestBuildCompletesWithoutNetwork(t *testing.T) {
	sc := xyz.NewScene()
	sn := Build(sc, testLoader(), testConfig())

	assert.Equal(t, 2, len(sn.Rain))
	assert.NotNil(t, sn.Scroll)
	assert.NotNil(t, sn.Holo)
	assert.NotNil(t, sn.Cam)

	// the live screens are registered as scene textures
	for _, name := range []string{"rain-a", "rain-b", "wall-listing"} {
		tx, err := sc.TextureByName(name)
		assert.NoError(t, err, name)
		assert.NotNil(t, tx.Image(), name)
	}
	// fetched surfaces start as placeholders
	for _, name := range []string{"floor", "wall", "desk"} {
		_, err := sc.TextureByName(name)
		assert.NoError(t, err, name)
	}
}

func TestRainScreensAreIndependent(t *testing.T) {
	sc := xyz.NewScene()
	sn := Build(sc, testLoader(), testConfig())

	// distinct seeds per monitor give distinct column layouts
	assert.NotEqual(t, sn.Rain[0].Heads, sn.Rain[1].Heads)

	before := make([]int, len(sn.Rain[0].Heads))
	copy(before, sn.Rain[0].Heads)
	sn.Rain[0].Step()
	assert.NotEqual(t, before, sn.Rain[0].Heads)
	// stepping one monitor leaves the other alone
	b1 := make([]int, len(sn.Rain[1].Heads))
	copy(b1, sn.Rain[1].Heads)
	assert.Equal(t, b1, sn.Rain[1].Heads)
}

func TestHologramSpinsInPlace(t *testing.T) {
	sc := xyz.NewScene()
	sn := Build(sc, testLoader(), testConfig())

	core := sn.Holo.Bodies[0]
	assert.Zero(t, core.Distance)
	assert.Equal(t, 1, len(core.Satellites))

	pos := core.Solid.Pose.Pos
	for i := 0; i < 30; i++ {
		sn.Holo.Step()
	}
	assert.Greater(t, core.SpinAngle, float32(0))
	assert.Greater(t, core.Satellites[0].OrbitAngle, float32(0))
	// spin-only core never translates
	assert.Equal(t, pos, core.Solid.Pose.Pos)
}

func TestCameraBounds(t *testing.T) {
	sc := xyz.NewScene()
	sn := Build(sc, testLoader(), testConfig())

	assert.Equal(t, float32(2.5), sn.Cam.MinDistance)
	assert.Equal(t, float32(14), sn.Cam.MaxDistance)
	sn.Cam.Zoom(-1000)
	sn.Cam.Step()
	assert.GreaterOrEqual(t, sn.Cam.Distance, sn.Cam.MinDistance)
}

func TestScrollRunsOnOwnTimer(t *testing.T) {
	sc := xyz.NewScene()
	sn := Build(sc, testLoader(), testConfig())

	var ticks atomic.Int32
	done := make(chan struct{})
	go func() {
		sn.Scroll.Run(5*time.Millisecond, func() { ticks.Add(1) })
		close(done)
	}()
	assert.Eventually(t, func() bool {
		return ticks.Load() >= 3
	}, time.Second, 5*time.Millisecond)
	sn.Scroll.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scroll loop did not stop")
	}
}
