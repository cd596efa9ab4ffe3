// Copyright (c) 2025, The SciFi Room Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texload fetches bitmap textures over HTTP for [xyz] scenes.
// Every texture starts as a deterministic solid-color placeholder so scene
// construction never blocks and never fails; the real image is fetched in
// the background and swapped in by the caller when it arrives. A failed
// fetch or decode keeps the placeholder and is only logged.
package texload

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"net/http"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"cogentcore.org/core/xyz"
	"github.com/anthonynsimon/bild/transform"
)

// PlaceholderSize is the pixel size of generated placeholder textures.
const PlaceholderSize = 64

// Loader fetches and conforms texture images.
type Loader struct {

	// Client is the HTTP client used for fetches; its Timeout bounds
	// every request.
	Client *http.Client

	// Fallback is the placeholder color used until a fetch succeeds,
	// and permanently when it fails.
	Fallback color.RGBA

	// MaxSize is the maximum texture dimension; larger images are
	// downscaled preserving aspect ratio.
	MaxSize int
}

// New makes a loader with the given fetch timeout and fallback color.
func New(timeout time.Duration, fallback color.RGBA) *Loader {
	return &Loader{
		Client:   &http.Client{Timeout: timeout},
		Fallback: fallback,
		MaxSize:  1024,
	}
}

// Placeholder returns a new texture of the fallback color under the given
// name. It is immediately renderable.
func (ld *Loader) Placeholder(name string) *xyz.TextureBase {
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderSize, PlaceholderSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(ld.Fallback), image.Point{}, draw.Src)
	return &xyz.TextureBase{Name: name, RGBA: img}
}

// Fetch synchronously fetches and decodes the image at the given URL,
// downscaling it to MaxSize if needed.
func (ld *Loader) Fetch(url string) (*image.RGBA, error) {
	resp, err := ld.Client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("texload: fetch %s: %s", url, resp.Status)
	}
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("texload: decode %s: %w", url, err)
	}
	return ld.Conform(img), nil
}

// Conform converts an image to RGBA, downscaling so that neither dimension
// exceeds MaxSize.
func (ld *Loader) Conform(img image.Image) *image.RGBA {
	sz := img.Bounds().Size()
	if m := max(sz.X, sz.Y); ld.MaxSize > 0 && m > ld.MaxSize {
		scale := float32(ld.MaxSize) / float32(m)
		img = transform.Resize(img,
			int(float32(sz.X)*scale), int(float32(sz.Y)*scale), transform.Linear)
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

// Pending associates a placeholder texture already registered on a scene
// with the URL of the real image, for a deferred background fetch.
type Pending struct {
	Tex *xyz.TextureBase
	URL string
}

// Start fetches the URL in the background. On success, done is called with
// the conformed image; the caller swaps it into the texture under its
// render lock. On failure, done is never called: the placeholder stays and
// the error is logged.
func (ld *Loader) Start(url string, done func(img *image.RGBA)) {
	go func() {
		img, err := ld.Fetch(url)
		if err != nil {
			slog.Error("texload: keeping placeholder", "url", url, "error", err)
			return
		}
		done(img)
	}()
}
