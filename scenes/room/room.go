// Copyright (c) 2025, The SciFi Room Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package room builds the sci-fi control room scene: floor and walls, a
// desk with monitors running live matrix-rain textures, a wall panel
// scrolling a code listing on its own timer, neon light strips, and a
// small hologram spinning over the desk.
package room

import (
	"image"
	"image/color"
	"time"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/xyz"
	"cogentcore.org/core/xyz/xyzcore"

	"github.com/Devashyasahu/scifi-3-D-room/orbit"
	"github.com/Devashyasahu/scifi-3-D-room/orbitcam"
	"github.com/Devashyasahu/scifi-3-D-room/screens"
	"github.com/Devashyasahu/scifi-3-D-room/texload"
)

// room dimensions in scene units, origin at floor center
const (
	roomW float32 = 12
	roomH float32 = 5
	roomD float32 = 12
)

// Config are the scene options.
type Config struct {

	// TextureBase is the base URL for surface texture fetches.
	TextureBase string

	// Seed drives the rain screen randomness.
	Seed int64

	// ScrollInterval is the tick delay of the wall panel listing.
	ScrollInterval time.Duration
}

// Defaults sets the standard scene options.
func (c *Config) Defaults() {
	c.TextureBase = "https://raw.githubusercontent.com/Devashyasahu/scifi-3-D-room/main/textures"
	c.Seed = 1
	c.ScrollInterval = 180 * time.Millisecond
}

// Scene is the built room with its animation state.
type Scene struct {

	// XYZ is the underlying 3D scene.
	XYZ *xyz.Scene

	// Rain screens, one per monitor, advanced on the frame cadence.
	Rain []*screens.Rain

	// Scroll is the wall panel listing, run on its own timer.
	Scroll *screens.Scroll

	// Holo is the hologram spinning over the desk.
	Holo *orbit.System

	// Cam is the damped orbit camera controller.
	Cam *orbitcam.Control

	// Pending are placeholder textures awaiting background fetch.
	Pending []texload.Pending
}

// Build constructs the full room graph on sc. Like the solar builder it
// registers placeholders only and never blocks; real surface images are
// fetched once [Scene.Attach] runs.
func Build(sc *xyz.Scene, ld *texload.Loader, cfg *Config) *Scene {
	sn := &Scene{XYZ: sc}

	sc.Background = colors.Uniform(color.RGBA{4, 5, 10, 255})
	xyz.NewAmbient(sc, "ambient", 0.15, xyz.FluorCool)
	ceil := xyz.NewPoint(sc, "ceiling", 1.2, xyz.FluorCool)
	ceil.Pos.Set(0, roomH-0.5, 0)

	sn.buildShell(sc, ld, cfg)
	sn.buildDesk(sc, ld, cfg)
	sn.buildMonitors(sc, cfg)
	sn.buildWallPanel(sc, cfg)
	sn.buildNeon(sc)
	sn.buildHologram(sc)

	sc.Camera.Near = 0.1
	sc.Camera.Far = 100
	sn.Cam = orbitcam.New(&sc.Camera, math32.Vec3(0, 1.2, -2), 7, 2.5, 14)
	return sn
}

// buildShell adds the floor and the three visible walls.
func (sn *Scene) buildShell(sc *xyz.Scene, ld *texload.Loader, cfg *Config) {
	floor := xyz.NewPlane(sc, "floor-plane", roomW, roomD)
	fs := xyz.NewSolid(sc)
	fs.SetName("floor")
	fs.SetMesh(floor).SetShiny(20).
		SetTexture(sn.texture(sc, ld, cfg, "floor", "floor_panels.jpg"))
	fs.Material.Tiling.Repeat.Set(4, 4)

	wall := xyz.NewBox(sc, "wall-slab", roomW, roomH, 0.2)
	wtex := sn.texture(sc, ld, cfg, "wall", "wall_plating.jpg")
	for _, w := range []struct {
		name string
		pos  math32.Vector3
		rotY float32
	}{
		{"wall-back", math32.Vec3(0, roomH/2, -roomD/2), 0},
		{"wall-left", math32.Vec3(-roomW/2, roomH/2, 0), 90},
		{"wall-right", math32.Vec3(roomW/2, roomH/2, 0), 90},
	} {
		ws := xyz.NewSolid(sc)
		ws.SetName(w.name)
		ws.SetMesh(wall).SetTexture(wtex)
		ws.Material.Tiling.Repeat.Set(3, 1.5)
		ws.Pose.Pos = w.pos
		if w.rotY != 0 {
			ws.SetAxisRotation(0, 1, 0, w.rotY)
		}
	}
}

// buildDesk adds the desk slab and its four legs against the back wall.
func (sn *Scene) buildDesk(sc *xyz.Scene, ld *texload.Loader, cfg *Config) {
	top := xyz.NewBox(sc, "desk-top", 4, 0.12, 1.6)
	ts := xyz.NewSolid(sc)
	ts.SetName("desk")
	ts.SetMesh(top).SetShiny(40).
		SetTexture(sn.texture(sc, ld, cfg, "desk", "desk_brushed.jpg"))
	ts.Pose.Pos.Set(0, 1, -4.8)

	leg := xyz.NewCylinder(sc, "desk-leg", 1, 0.06, 16, 1, true, true)
	for i, p := range []math32.Vector3{
		math32.Vec3(-1.8, 0.5, -4.2), math32.Vec3(1.8, 0.5, -4.2),
		math32.Vec3(-1.8, 0.5, -5.4), math32.Vec3(1.8, 0.5, -5.4),
	} {
		ls := xyz.NewSolid(sc)
		ls.SetName("desk-leg-" + string(rune('a'+i)))
		ls.SetMesh(leg).SetColor(color.RGBA{60, 64, 70, 255}).SetShiny(60)
		ls.Pose.Pos = p
	}
}

// buildMonitors adds two bezels on the desk, each with a screen plane
// textured by its own rain buffer.
func (sn *Scene) buildMonitors(sc *xyz.Scene, cfg *Config) {
	bezel := xyz.NewBox(sc, "monitor-bezel", 1.5, 0.95, 0.08)
	screen := xyz.NewPlane(sc, "monitor-screen", 1.38, 0.82)
	screen.NormAxis = math32.Z

	for i, x := range []float32{-0.85, 0.85} {
		bs := xyz.NewSolid(sc)
		bs.SetName("monitor-" + string(rune('a'+i)))
		bs.SetMesh(bezel).SetColor(color.RGBA{18, 20, 24, 255})
		bs.Pose.Pos.Set(x, 1.55, -5.2)

		rn := screens.NewRain("rain-"+string(rune('a'+i)), 256, 144, cfg.Seed+int64(i))
		sc.SetTexture(rn.Tex)
		sn.Rain = append(sn.Rain, rn)

		ss := xyz.NewSolid(sc)
		ss.SetName("screen-" + string(rune('a'+i)))
		ss.SetMesh(screen).
			SetTexture(rn.Tex).
			SetEmissive(color.RGBA{40, 160, 40, 255})
		ss.Pose.Pos.Set(x, 1.55, -5.15)
	}
}

// buildWallPanel adds the big listing panel on the back wall; its texture
// scrolls on an independent timer started by Attach.
func (sn *Scene) buildWallPanel(sc *xyz.Scene, cfg *Config) {
	sn.Scroll = screens.NewScroll("wall-listing", 512, 288, nil)
	sc.SetTexture(sn.Scroll.Tex)

	panel := xyz.NewPlane(sc, "wall-panel", 3.6, 2)
	panel.NormAxis = math32.Z
	ps := xyz.NewSolid(sc)
	ps.SetName("wall-panel")
	ps.SetMesh(panel).
		SetTexture(sn.Scroll.Tex).
		SetEmissive(color.RGBA{30, 90, 160, 255})
	ps.Pose.Pos.Set(0, 3, -roomD/2+0.15)
}

// buildNeon adds emissive strip lights along the side walls, each paired
// with a matching point light so the glow reaches nearby surfaces.
func (sn *Scene) buildNeon(sc *xyz.Scene) {
	strip := xyz.NewBox(sc, "neon-strip", 0.08, 0.08, roomD-2)
	for _, n := range []struct {
		name string
		x    float32
		c    color.RGBA
	}{
		{"neon-cyan", -roomW/2 + 0.1, color.RGBA{40, 230, 255, 255}},
		{"neon-magenta", roomW/2 - 0.1, color.RGBA{255, 60, 200, 255}},
	} {
		ns := xyz.NewSolid(sc)
		ns.SetName(n.name)
		ns.SetMesh(strip).SetColor(n.c).SetEmissive(n.c)
		ns.Pose.Pos.Set(n.x, 2.6, 0)

		lt := xyz.NewPoint(sc, n.name+"-light", 0.6, xyz.DirectSun)
		lt.Color = n.c
		lt.Pos.Set(n.x, 2.6, 0)
	}
}

// buildHologram puts a small spin-only orbital system over the desk: a
// translucent core with one tiny satellite circling it.
func (sn *Scene) buildHologram(sc *xyz.Scene) {
	sphere := xyz.NewSphere(sc, "holo-sphere", 1, 24)

	sn.Holo = orbit.NewSystem(sc)
	sn.Holo.Root.Pose.Pos.Set(0, 1.45, -4.8)

	core := sn.Holo.AddBody(orbit.Params{
		Name: "holo-core", Radius: 0.22, SpinSpeed: 0.02,
	})
	core.Solid.SetMesh(sphere).
		SetColor(color.RGBA{80, 220, 255, 90}).
		SetEmissive(color.RGBA{40, 140, 200, 255})

	mote := core.AddSatellite(orbit.Params{
		Name: "holo-mote", Radius: 0.04, Distance: 0.38, OrbitSpeed: 0.05,
	})
	mote.Solid.SetMesh(sphere).
		SetColor(color.RGBA{160, 240, 255, 160}).
		SetEmissive(color.RGBA{90, 200, 240, 255})
}

// texture registers a placeholder under name and queues the real fetch.
func (sn *Scene) texture(sc *xyz.Scene, ld *texload.Loader, cfg *Config, name, file string) *xyz.TextureBase {
	tx := ld.Placeholder(name)
	sc.SetTexture(tx)
	sn.Pending = append(sn.Pending, texload.Pending{Tex: tx, URL: cfg.TextureBase + "/" + file})
	return tx
}

// Attach wires the built scene into its widget: camera input, background
// texture fetches, the frame loop, and the independent scroll timer.
func (sn *Scene) Attach(sw *xyzcore.Scene, ld *texload.Loader, cfg *Config, fps int) {
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
	go sn.Scroll.Run(cfg.ScrollInterval, func() {
		if sw.This == nil {
			sn.Scroll.Stop()
			return
		}
		sw.AsyncLock()
		sn.XYZ.SetTexture(sn.Scroll.Tex)
		sn.XYZ.SetNeedsRender()
		sw.NeedsRender()
		sw.AsyncUnlock()
	})
	go sn.run(sw, fps)
}

// run is the frame loop: camera easing, hologram spin, and one rain step
// per monitor. The scroll panel deliberately does not tick here.
func (sn *Scene) run(sw *xyzcore.Scene, fps int) {
	tick := time.NewTicker(time.Second / time.Duration(fps))
	defer tick.Stop()
	for range tick.C {
		if sw.This == nil {
			return
		}
		sw.AsyncLock()
		sn.Cam.Step()
		sn.Holo.Step()
		for _, rn := range sn.Rain {
			rn.Step()
			sn.XYZ.SetTexture(rn.Tex)
		}
		sn.XYZ.SetNeedsUpdate()
		sw.NeedsRender()
		sw.AsyncUnlock()
	}
}
