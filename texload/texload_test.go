// Copyright (c) 2025, The SciFi Room Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texload

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testFallback = color.RGBA{58, 63, 75, 255}

func pngBytes(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPlaceholder(t *testing.T) {
	ld := New(time.Second, testFallback)
	tx := ld.Placeholder("floor")
	assert.NotNil(t, tx)
	assert.NotNil(t, tx.Image())
	assert.Equal(t, "floor", tx.Name)
	sz := tx.Image().Bounds().Size()
	assert.Equal(t, PlaceholderSize, sz.X)
	assert.Equal(t, PlaceholderSize, sz.Y)
	assert.Equal(t, testFallback, tx.Image().RGBAAt(10, 10))
}

func TestFetchOK(t *testing.T) {
	body := pngBytes(t, 32, 16, color.RGBA{0, 255, 0, 255})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer srv.Close()

	ld := New(time.Second, testFallback)
	img, err := ld.Fetch(srv.URL + "/earth.png")
	assert.NoError(t, err)
	assert.Equal(t, image.Pt(32, 16), img.Bounds().Size())
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, img.RGBAAt(5, 5))
}

func TestFetchDownscales(t *testing.T) {
	body := pngBytes(t, 64, 32, color.RGBA{10, 10, 200, 255})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer srv.Close()

	ld := New(time.Second, testFallback)
	ld.MaxSize = 16
	img, err := ld.Fetch(srv.URL)
	assert.NoError(t, err)
	assert.Equal(t, image.Pt(16, 8), img.Bounds().Size())
}

func TestFetchErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	ld := New(time.Second, testFallback)
	_, err := ld.Fetch(srv.URL + "/missing.jpg")
	assert.Error(t, err)

	_, err = ld.Fetch("http://127.0.0.1:1/never.jpg")
	assert.Error(t, err)
}

func TestFetchBadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not an image"))
	}))
	defer srv.Close()

	ld := New(time.Second, testFallback)
	_, err := ld.Fetch(srv.URL)
	assert.Error(t, err)
}

func TestStartSuccessCallsDone(t *testing.T) {
	body := pngBytes(t, 8, 8, color.RGBA{255, 0, 0, 255})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	defer srv.Close()

	ld := New(time.Second, testFallback)
	got := make(chan *image.RGBA, 1)
	ld.Start(srv.URL, func(img *image.RGBA) { got <- img })
	select {
	case img := <-got:
		assert.Equal(t, image.Pt(8, 8), img.Bounds().Size())
	case <-time.After(5 * time.Second):
		t.Fatal("done was not called for a successful fetch")
	}
}

func TestStartFailureKeepsPlaceholder(t *testing.T) {
	ld := New(200*time.Millisecond, testFallback)
	tx := ld.Placeholder("wall")
	called := make(chan struct{}, 1)
	ld.Start("http://127.0.0.1:1/none.png", func(img *image.RGBA) { called <- struct{}{} })
	select {
	case <-called:
		t.Fatal("done must not be called on failure")
	case <-time.After(time.Second):
	}
	// placeholder untouched and still renderable
	assert.Equal(t, testFallback, tx.Image().RGBAAt(3, 3))
}
