// Copyright (c) 2025, The SciFi Room Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orbit builds animated orbital hierarchies as nested [xyz] pivot
// groups. Revolution around a parent and spin in place are two independent
// rotation states, composed purely through parent-child transform nesting:
// each body gets an orbit pivot at its parent's origin whose rotation is set
// to the body's accumulated orbital angle, and a frame group offset by the
// orbital radius that carries the axial tilt and the spinning solid.
// Satellites nest the same structure one level deeper, so an N-body system
// is N independently accumulating pivots and nothing else.
//
// Angular speeds are in radians per frame, not per second, so visual speed
// tracks the tick rate. Accumulators never wrap or reset; the quaternion
// representation handles modularity.
package orbit

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
)

var yAxis = math32.Vec3(0, 1, 0)

// Params are the fixed parameters of one orbiting body.
// Radius and Distance must be positive (Distance zero is allowed for a
// spin-only body) and do not change for the lifetime of the body.
type Params struct {

	// Name is the identifier, used for the scene graph node names.
	Name string

	// Radius is the visual radius, applied as the solid scale.
	Radius float32

	// Distance is the orbital radius: the offset of the body from its
	// orbit pivot along X.
	Distance float32

	// OrbitSpeed is the orbital angular speed in radians per frame.
	OrbitSpeed float32

	// SpinSpeed is the self-rotation angular speed in radians per frame,
	// multiplied by the [System.SpinScale] factor.
	SpinSpeed float32

	// Tilt is the axial tilt in degrees, applied once to the frame group.
	Tilt float32
}

// shell is a dependent solid centered on a body that accumulates
// its own spin (cloud layers etc).
type shell struct {
	solid *xyz.Solid
	speed float32
	angle float32
}

// Body is one orbiting object: an orbit pivot group whose rotation is set
// (not incremented) to the accumulated orbital angle each step, a tilted
// frame group at the orbital radius, and the spinning solid itself.
type Body struct {
	Params

	// OrbitAngle is the accumulated orbital angle in radians.
	// It increases monotonically and never wraps.
	OrbitAngle float32

	// SpinAngle is the accumulated self-rotation angle in radians.
	SpinAngle float32

	// Solid is the visible solid for this body. The caller sets its
	// mesh, material, and texture after adding the body.
	Solid *xyz.Solid

	// Satellites are bodies orbiting this one, parented under the
	// tilted frame so they inherit position and tilt but keep their
	// own independent accumulators.
	Satellites []*Body

	shells []*shell
	pivot  *xyz.Group
	frame  *xyz.Group
}

// System is a set of top-level bodies under one root group.
type System struct {

	// Root is the group at the system center; all orbit pivots
	// are parented here.
	Root *xyz.Group

	// Bodies are the top-level bodies (satellites are nested).
	Bodies []*Body

	// SpinScale multiplies all spin speeds, for tuning self-rotation
	// relative to orbital motion without touching per-body parameters.
	SpinScale float32
}

// NewSystem makes a new orbital system with its root group under parent.
func NewSystem(parent tree.Node) *System {
	sy := &System{SpinScale: 1}
	sy.Root = xyz.NewGroup(parent)
	sy.Root.SetName("orbit-system")
	return sy
}

// AddBody adds a top-level body orbiting the system center.
// The returned body's Solid has no mesh yet; the caller configures it.
func (sy *System) AddBody(p Params) *Body {
	b := newBody(sy.Root, p)
	sy.Bodies = append(sy.Bodies, b)
	return b
}

// AddSatellite adds a body orbiting this body, nested one pivot deeper.
// Its orbital angle accumulates independently of the primary's.
func (b *Body) AddSatellite(p Params) *Body {
	sb := newBody(b.frame, p)
	b.Satellites = append(b.Satellites, sb)
	return sb
}

// AddShell adds a dependent solid centered on the body with its own spin
// speed (radians per frame), for cloud or glow layers. It shares the body's
// position and tilt via the frame group.
func (b *Body) AddShell(name string, speed float32) *xyz.Solid {
	sld := xyz.NewSolid(b.frame)
	sld.SetName(name)
	sh := &shell{solid: sld, speed: speed}
	b.shells = append(b.shells, sh)
	return sld
}

// Pivot returns the orbit pivot group, whose rotation equals the
// accumulated orbital angle.
func (b *Body) Pivot() *xyz.Group { return b.pivot }

// Frame returns the tilted frame group at the orbital radius.
// Rings and other tilt-locked attachments go here.
func (b *Body) Frame() *xyz.Group { return b.frame }

func newBody(parent tree.Node, p Params) *Body {
	b := &Body{Params: p}
	b.pivot = xyz.NewGroup(parent)
	b.pivot.SetName(p.Name + "-orbit")
	b.frame = xyz.NewGroup(b.pivot)
	b.frame.SetName(p.Name + "-frame")
	b.frame.Pose.Pos.Set(p.Distance, 0, 0)
	if p.Tilt != 0 {
		b.frame.Pose.SetAxisRotation(0, 0, 1, p.Tilt)
	}
	b.Solid = xyz.NewSolid(b.frame)
	b.Solid.SetName(p.Name)
	if p.Radius > 0 {
		b.Solid.SetScale(p.Radius, p.Radius, p.Radius)
	}
	return b
}

// Step advances every accumulator in the system by one frame and writes the
// resulting rotations into the scene graph. Pivot and solid rotations are
// set from the accumulated angles, never incremented, so a repeated read
// within the same frame sees the same pose.
func (sy *System) Step() {
	for _, b := range sy.Bodies {
		b.step(sy.SpinScale)
	}
}

func (b *Body) step(spinScale float32) {
	b.OrbitAngle += b.OrbitSpeed
	b.pivot.Pose.Quat = math32.NewQuatAxisAngle(yAxis, b.OrbitAngle)
	b.SpinAngle += b.SpinSpeed * spinScale
	b.Solid.Pose.Quat = math32.NewQuatAxisAngle(yAxis, b.SpinAngle)
	for _, sh := range b.shells {
		sh.angle += sh.speed * spinScale
		sh.solid.Pose.Quat = math32.NewQuatAxisAngle(yAxis, sh.angle)
	}
	for _, sb := range b.Satellites {
		sb.step(spinScale)
	}
}
