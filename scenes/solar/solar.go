// Copyright (c) 2025, The SciFi Room Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solar builds the animated solar system scene: a glowing sun at
// the origin, the eight planets on nested orbit pivots, Earth's moon and
// cloud shell, Saturn's ring, and a procedural starfield shell. All motion
// comes from the [orbit] package's per-frame accumulators.
package solar

import (
	"image"
	"image/color"
	"math/rand"
	"time"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"

	"github.com/Devashyasahu/scifi-3-D-room/orbit"
	"github.com/Devashyasahu/scifi-3-D-room/orbitcam"
	"github.com/Devashyasahu/scifi-3-D-room/texload"
)

// Config are the scene options.
type Config struct {

	// Stars is the number of quads in the starfield shell.
	Stars int

	// Speed multiplies all orbital and spin speeds at build time.
	Speed float32

	// TextureBase is the base URL for planet texture fetches.
	TextureBase string

	// Seed drives the starfield layout.
	Seed int64
}

// Defaults sets the standard scene options.
func (c *Config) Defaults() {
	c.Stars = 1200
	c.Speed = 1
	c.TextureBase = "https://www.solarsystemscope.com/textures/download"
	c.Seed = 42
}

// planetSpec is one row of the declarative planet table. Distances and
// radii are scene units, speeds are radians per frame.
type planetSpec struct {
	name       string
	radius     float32
	distance   float32
	orbitSpeed float32
	spinSpeed  float32
	tilt       float32
	tex        string
}

var planets = []planetSpec{
	{"mercury", 0.38, 6, 0.0047, 0.002, 0.03, "2k_mercury.jpg"},
	{"venus", 0.95, 8.5, 0.0035, 0.001, 2.6, "2k_venus_surface.jpg"},
	{"earth", 1.0, 11.5, 0.0029, 0.02, 23.4, "2k_earth_daymap.jpg"},
	{"mars", 0.53, 14.5, 0.0024, 0.019, 25.2, "2k_mars.jpg"},
	{"jupiter", 2.6, 19.5, 0.0013, 0.042, 3.1, "2k_jupiter.jpg"},
	{"saturn", 2.2, 26, 0.00096, 0.038, 26.7, "2k_saturn.jpg"},
	{"uranus", 1.6, 31.5, 0.00068, 0.03, 97.8, "2k_uranus.jpg"},
	{"neptune", 1.55, 36, 0.00054, 0.029, 28.3, "2k_neptune.jpg"},
}

// Scene is the built solar system with its animation state.
type Scene struct {

	// XYZ is the underlying 3D scene.
	XYZ *xyz.Scene

	// Sys holds the sun and planets; Step advances all accumulators.
	Sys *orbit.System

	// Earth is kept for the moon / cloud attachments and tests.
	Earth *orbit.Body

	// Cam is the damped orbit camera controller.
	Cam *orbitcam.Control

	// Pending are placeholder textures awaiting background fetch.
	Pending []texload.Pending
}

// Build constructs the full scene graph on sc. It only registers
// placeholder textures, so it never blocks and never fails; real images
// are fetched when [Scene.Attach] is called.
func Build(sc *xyz.Scene, ld *texload.Loader, cfg *Config) *Scene {
	sn := &Scene{XYZ: sc}

	sc.Background = colors.Uniform(colors.Black)
	xyz.NewAmbient(sc, "ambient", 0.08, xyz.DirectSun)
	sun := xyz.NewPoint(sc, "sunlight", 2.5, xyz.DirectSun)
	sun.Pos.Set(0, 0, 0)

	sphere := xyz.NewSphere(sc, "unit-sphere", 1, 32)

	sn.Sys = orbit.NewSystem(sc)

	sb := sn.Sys.AddBody(orbit.Params{
		Name: "sun", Radius: 3, SpinSpeed: 0.001 * cfg.Speed,
	})
	sb.Solid.SetMesh(sphere).
		SetEmissive(color.RGBA{255, 180, 60, 255}).
		SetTexture(sn.texture(sc, ld, cfg, "sun", "2k_sun.jpg"))

	for _, p := range planets {
		b := sn.Sys.AddBody(orbit.Params{
			Name:       p.name,
			Radius:     p.radius,
			Distance:   p.distance,
			OrbitSpeed: p.orbitSpeed * cfg.Speed,
			SpinSpeed:  p.spinSpeed * cfg.Speed,
			Tilt:       p.tilt,
		})
		b.Solid.SetMesh(sphere).SetShiny(5).
			SetTexture(sn.texture(sc, ld, cfg, p.name, p.tex))
		switch p.name {
		case "earth":
			sn.Earth = b
			clouds := b.AddShell("earth-clouds", 0.025*cfg.Speed)
			clouds.SetMesh(sphere).
				SetScale(p.radius*1.04, p.radius*1.04, p.radius*1.04).
				SetColor(color.RGBA{255, 255, 255, 70})
			moon := b.AddSatellite(orbit.Params{
				Name: "moon", Radius: 0.27, Distance: 2,
				OrbitSpeed: 0.037 * cfg.Speed, SpinSpeed: 0.005 * cfg.Speed,
			})
			moon.Solid.SetMesh(sphere).
				SetTexture(sn.texture(sc, ld, cfg, "moon", "2k_moon.jpg"))
		case "saturn":
			ring := xyz.NewTorus(sc, "saturn-ring", 1.55, 0.35, 48)
			rs := xyz.NewSolid(b.Frame())
			rs.SetName("saturn-ring")
			rs.SetMesh(ring).
				SetColor(color.RGBA{196, 174, 132, 210}).
				SetScale(p.radius, p.radius*0.04, p.radius).
				SetAxisRotation(1, 0, 0, 90)
		}
	}

	sn.buildStarfield(sc, cfg)

	sc.Camera.Near = 0.1
	sc.Camera.Far = 600
	sn.Cam = orbitcam.New(&sc.Camera, math32.Vector3{}, 48, 10, 160)
	return sn
}

// texture registers a placeholder under name and queues the real fetch.
func (sn *Scene) texture(sc *xyz.Scene, ld *texload.Loader, cfg *Config, name, file string) *xyz.TextureBase {
	tx := ld.Placeholder(name)
	sc.SetTexture(tx)
	sn.Pending = append(sn.Pending, texload.Pending{Tex: tx, URL: cfg.TextureBase + "/" + file})
	return tx
}

// buildStarfield adds one mesh of randomly placed quads on a spherical
// shell outside the outermost orbit, rendered emissive and double-sided.
func (sn *Scene) buildStarfield(sc *xyz.Scene, cfg *Config) {
	ms := starfieldMesh("starfield", cfg.Stars, 180, 280, cfg.Seed)
	sc.SetMesh(ms)
	sld := xyz.NewSolid(sc)
	sld.SetName("starfield")
	sld.SetMesh(ms).
		SetColor(colors.White).
		SetEmissive(color.RGBA{235, 235, 245, 255})
	sld.Material.CullBack = false
}

// starfieldMesh generates n small quads at random positions between radius
// rmin and rmax, each facing the shell center. Deterministic per seed.
func starfieldMesh(name string, n int, rmin, rmax float32, seed int64) *xyz.GenMesh {
	rng := rand.New(rand.NewSource(seed))
	ms := &xyz.GenMesh{}
	ms.Name = name
	for i := 0; i < n; i++ {
		var dir math32.Vector3
		for {
			dir = math32.Vec3(rng.Float32()*2-1, rng.Float32()*2-1, rng.Float32()*2-1)
			if l := dir.Length(); l > 0.1 && l <= 1 {
				dir = dir.DivScalar(l)
				break
			}
		}
		ctr := dir.MulScalar(rmin + rng.Float32()*(rmax-rmin))
		size := 0.2 + rng.Float32()*0.5
		up := math32.Vec3(0, 1, 0)
		if math32.Abs(dir.Y) > 0.95 {
			up = math32.Vec3(1, 0, 0)
		}
		t1 := dir.Cross(up).Normal().MulScalar(size)
		t2 := dir.Cross(t1).Normal().MulScalar(size)
		norm := dir.Negate()

		base := uint32(len(ms.Vertex) / 3)
		for _, v := range []math32.Vector3{
			ctr.Sub(t1).Sub(t2), ctr.Add(t1).Sub(t2),
			ctr.Add(t1).Add(t2), ctr.Sub(t1).Add(t2),
		} {
			ms.Vertex = append(ms.Vertex, v.X, v.Y, v.Z)
			ms.Normal = append(ms.Normal, norm.X, norm.Y, norm.Z)
			ms.TexCoord = append(ms.TexCoord, 0, 0)
		}
		ms.Index = append(ms.Index, base, base+1, base+2, base, base+2, base+3)
	}
	return ms
}

// Attach wires the built scene into its widget: camera input, background
// texture fetches, and the frame loop at the given FPS.
func (sn *Scene) Attach(sw *xyzcore.Scene, ld *texload.Loader, fps int) {
	sn.Cam.Bind(sw)
	for _, p := range sn.Pending {
		p := p
		ld.Start(p.URL, func(img *image.RGBA) {
			sw.AsyncLock()
			p.Tex.RGBA = img
			sn.XYZ.SetTexture(p.Tex)
			sn.XYZ.SetNeedsRender()
			sw.NeedsRender()
			sw.AsyncUnlock()
		})
	}
	go sn.run(sw, fps)
}

// run is the frame loop: camera easing, then orbital accumulation, then
// flagging the scene for update, in that order.
func (sn *Scene) run(sw *xyzcore.Scene, fps int) {
	tick := time.NewTicker(time.Second / time.Duration(fps))
	defer tick.Stop()
	for range tick.C {
		if sw.This == nil {
			return
		}
		sw.AsyncLock()
		sn.Cam.Step()
		sn.Sys.Step()
		sn.XYZ.SetNeedsUpdate()
		sw.NeedsRender()
		sw.AsyncUnlock()
	}
}
