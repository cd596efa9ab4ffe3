// Copyright (c) 2025, The SciFi Room Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scifiroom shows two animated 3D scenes in tabs: a textured solar
// system and a sci-fi control room with live code screens. Planet and
// surface textures are fetched over HTTP in the background, with solid
// color placeholders until (or instead of, on failure) the real images.
package main

import (
	"time"

	"cogentcore.org/core/cli"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/xyz/xyzcore"

	"github.com/Devashyasahu/scifi-3-D-room/scenes/room"
	"github.com/Devashyasahu/scifi-3-D-room/scenes/solar"
	"github.com/Devashyasahu/scifi-3-D-room/texload"
)

// Config is the configuration information for the scifiroom cli.
type Config struct {

	// FPS is the animation frame rate for both scenes.
	FPS int `default:"60"`

	// Stars is the number of starfield quads in the solar scene.
	Stars int `default:"1200"`

	// Speed multiplies all orbital and spin speeds in the solar scene.
	Speed float32 `default:"1"`

	// PlanetTextures is the base URL for planet texture fetches.
	PlanetTextures string `default:"https://www.solarsystemscope.com/textures/download"`

	// RoomTextures is the base URL for room surface texture fetches.
	RoomTextures string `default:"https://raw.githubusercontent.com/Devashyasahu/scifi-3-D-room/main/textures"`

	// FetchTimeout is the per-texture HTTP timeout in seconds.
	FetchTimeout int `default:"20"`

	// Fallback is the hex color of placeholder textures, which stay in
	// place when a fetch fails.
	Fallback string `default:"#3c4250"`

	// ScrollMS is the wall panel scroll delay in milliseconds.
	ScrollMS int `default:"180"`

	// Seed drives the starfield layout and the rain screens.
	Seed int64 `default:"42"`
}

func main() {
	opts := cli.DefaultOptions("scifiroom", "An animated solar system and sci-fi control room in 3D.")
	cli.Run(opts, &Config{}, Run)
}

// Run opens the main window with both scenes. It only returns when the
// window closes.
func Run(c *Config) error { //cli:cmd -root
	fb, err := colors.FromHex(c.Fallback)
	if err != nil {
		return err
	}
	ld := texload.New(time.Duration(c.FetchTimeout)*time.Second, fb)

	b := core.NewBody("SciFi 3D Room")
	tabs := core.NewTabs(b)

	scfg := &solar.Config{}
	scfg.Defaults()
	scfg.Stars = c.Stars
	scfg.Speed = c.Speed
	scfg.TextureBase = c.PlanetTextures
	scfg.Seed = c.Seed
	st, _ := tabs.NewTab("Solar System")
	se := xyzcore.NewSceneEditor(st)
	sn := solar.Build(se.SceneXYZ(), ld, scfg)

	rcfg := &room.Config{}
	rcfg.Defaults()
	rcfg.TextureBase = c.RoomTextures
	rcfg.Seed = c.Seed
	rcfg.ScrollInterval = time.Duration(c.ScrollMS) * time.Millisecond
	rt, _ := tabs.NewTab("Control Room")
	re := xyzcore.NewSceneEditor(rt)
	rm := room.Build(re.SceneXYZ(), ld, rcfg)

	b.OnShow(func(e events.Event) {
		sn.Attach(se.SceneWidget(), ld, c.FPS)
		rm.Attach(re.SceneWidget(), ld, rcfg, c.FPS)
	})
	b.RunMainWindow()
	return nil
}
