// Copyright (c) 2025, The SciFi Room Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orbitcam

import (
	"math/rand"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"github.com/stretchr/testify/assert"
)

func testControl() *Control {
	cam := &xyz.Camera{}
	cam.Defaults()
	return New(cam, math32.Vector3{}, 40, 8, 120)
}

func TestDistanceNeverLeavesBounds(t *testing.T) {
	c := testControl()
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		// scroll deltas far beyond anything a pointer produces
		c.Zoom(rng.Float32()*400 - 200)
		c.Step()
		assert.GreaterOrEqual(t, c.Distance, c.MinDistance)
		assert.LessOrEqual(t, c.Distance, c.MaxDistance)
		assert.GreaterOrEqual(t, c.GoalDistance, c.MinDistance)
		assert.LessOrEqual(t, c.GoalDistance, c.MaxDistance)
	}
}

func TestDampingConverges(t *testing.T) {
	c := testControl()
	c.Orbit(300, -120)
	c.Zoom(-80)
	for i := 0; i < 500; i++ {
		c.Step()
	}
	assert.InDelta(t, float64(c.GoalAzimuth), float64(c.Azimuth), 1e-3)
	assert.InDelta(t, float64(c.GoalElevation), float64(c.Elevation), 1e-3)
	assert.InDelta(t, float64(c.GoalDistance), float64(c.Distance), 1e-2)
}

func TestElevationClampedAwayFromPoles(t *testing.T) {
	c := testControl()
	for i := 0; i < 50; i++ {
		c.Orbit(0, 10000)
		c.Step()
	}
	assert.LessOrEqual(t, c.Elevation, float32(maxElevation))
	for i := 0; i < 100; i++ {
		c.Orbit(0, -10000)
		c.Step()
	}
	assert.GreaterOrEqual(t, c.Elevation, float32(-maxElevation))
}

func TestStepWritesPoseTowardTarget(t *testing.T) {
	c := testControl()
	c.Step()
	// camera sits Distance away from the target
	d := c.Cam.Pose.Pos.Sub(c.Target).Length()
	assert.InDelta(t, float64(c.Distance), float64(d), 1e-3)
}

func TestAspectLeftToRenderSurface(t *testing.T) {
	c := testControl()
	c.Cam.Aspect = 2.5
	c.Orbit(50, 50)
	c.Zoom(30)
	for i := 0; i < 10; i++ {
		c.Step()
	}
	// resize owns the aspect ratio; the controller must not touch it
	assert.Equal(t, float32(2.5), c.Cam.Aspect)
}
