// Copyright (c) 2025, The SciFi Room Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbitcam is a damped orbit controller for an [xyz.Camera]:
// pointer drags command azimuth and elevation, scrolling commands distance,
// and a per-frame Step eases the actual values toward the commanded ones
// while keeping the camera looking at a fixed target. Distance is clamped
// to a configured range on every input and every step.
package orbitcam

import (
	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"
)

// elevation is kept away from the poles to avoid up-vector flips
const maxElevation = math32.Pi/2 - 0.05

// Control is the damped orbit camera state. Angles are radians; actual
// values chase the Goal values with exponential easing.
type Control struct {

	// Cam is the controlled camera.
	Cam *xyz.Camera

	// Target is the fixed look-at point.
	Target math32.Vector3

	// Azimuth, Elevation, Distance are the applied spherical coordinates.
	Azimuth, Elevation, Distance float32

	// GoalAzimuth, GoalElevation, GoalDistance are the user-commanded
	// values that the applied ones ease toward.
	GoalAzimuth, GoalElevation, GoalDistance float32

	// MinDistance and MaxDistance bound the distance from the target.
	MinDistance, MaxDistance float32

	// Damp is the per-frame easing fraction in (0, 1].
	Damp float32

	// OrbitSensitivity converts drag pixels to radians.
	OrbitSensitivity float32

	// ZoomSensitivity scales scroll deltas to relative distance change.
	ZoomSensitivity float32
}

// New makes a controller at the given distance and bounds, looking at
// target, and applies the initial pose to the camera.
func New(cam *xyz.Camera, target math32.Vector3, dist, minDist, maxDist float32) *Control {
	c := &Control{
		Cam:              cam,
		Target:           target,
		Distance:         math32.Clamp(dist, minDist, maxDist),
		Elevation:        0.35,
		MinDistance:      minDist,
		MaxDistance:      maxDist,
		Damp:             0.15,
		OrbitSensitivity: 0.005,
		ZoomSensitivity:  0.02,
	}
	c.GoalAzimuth = c.Azimuth
	c.GoalElevation = c.Elevation
	c.GoalDistance = c.Distance
	c.apply()
	return c
}

// Orbit adds a drag delta in pixels to the commanded angles.
func (c *Control) Orbit(dx, dy float32) {
	c.GoalAzimuth -= dx * c.OrbitSensitivity
	c.GoalElevation = math32.Clamp(c.GoalElevation+dy*c.OrbitSensitivity,
		-maxElevation, maxElevation)
}

// Zoom changes the commanded distance by a relative scroll delta,
// clamped to [MinDistance, MaxDistance].
func (c *Control) Zoom(delta float32) {
	c.GoalDistance = math32.Clamp(c.GoalDistance*(1+delta*c.ZoomSensitivity),
		c.MinDistance, c.MaxDistance)
}

// Step eases the applied values toward the commanded ones and writes the
// camera pose. Called once per frame.
func (c *Control) Step() {
	c.Azimuth += (c.GoalAzimuth - c.Azimuth) * c.Damp
	c.Elevation += (c.GoalElevation - c.Elevation) * c.Damp
	c.Distance += (c.GoalDistance - c.Distance) * c.Damp
	c.Distance = math32.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
	c.apply()
}

// apply writes the spherical coordinates into the camera pose and points
// it at the target. The projection aspect is left to the render surface.
func (c *Control) apply() {
	ce := math32.Cos(c.Elevation)
	pos := math32.Vec3(
		c.Distance*ce*math32.Sin(c.Azimuth),
		c.Distance*math32.Sin(c.Elevation),
		c.Distance*ce*math32.Cos(c.Azimuth),
	)
	c.Cam.Pose.Pos = c.Target.Add(pos)
	c.Cam.LookAt(c.Target, math32.Vec3(0, 1, 0))
}

// Bind routes the scene widget's drag and scroll events into the
// controller, replacing the built-in camera navigation. Listeners run
// before the built-ins (last added first) and mark the events handled.
func (c *Control) Bind(sw *xyzcore.Scene) {
	sw.On(events.SlideMove, func(e events.Event) {
		del := e.PrevDelta()
		c.Orbit(float32(del.X), float32(del.Y))
		e.SetHandled()
		sw.NeedsRender()
	})
	sw.On(events.Scroll, func(e events.Event) {
		se := e.(*events.MouseScroll)
		c.Zoom(se.Delta.Y)
		e.SetHandled()
		sw.NeedsRender()
	})
}
