// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/gooey"
)

// View maps world coordinates to pixels: pixel = (world - Origin) * Scale.
type View struct {
	Origin gooey.Point
	Scale  float64
}

// Identity is the one-to-one view.
var Identity = View{Scale: 1}

// Apply maps a world point to pixel space.
func (v View) Apply(p gooey.Point) gooey.Point {
	return p.Sub(v.Origin).Mul(v.Scale)
}

// Fit returns the view that scales world to fit a w×h pixel area,
// preserving aspect ratio and aligning the top-left corners.
func Fit(world gooey.Rect, w, h int) View {
	sx := float64(w) / world.Width()
	sy := float64(h) / world.Height()
	return View{Origin: world.Min, Scale: min(sx, sy)}
}

// Canvas is an RGBA image plus a reusable path rasterizer.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img  *image.RGBA
	ras  *vector.Rasterizer
	view View
}

// NewCanvas creates a transparent canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:  vector.NewRasterizer(width, height),
		view: Identity,
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Bounds returns the pixel bounds.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

// SetView sets the world-to-pixel mapping for subsequent drawing.
func (c *Canvas) SetView(v View) {
	c.view = v
}

// View returns the current world-to-pixel mapping.
func (c *Canvas) View() View {
	return c.view
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillPath fills p with col using non-zero winding. Every subpath is
// closed before filling, so open outlines are closed back to their start.
func (c *Canvas) FillPath(p *gooey.Path, col color.Color) {
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	c.ras.DrawOp = draw.Over

	open := false
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case gooey.MoveTo:
			if open {
				c.ras.ClosePath()
			}
			pt := c.view.Apply(e.Point)
			c.ras.MoveTo(float32(pt.X), float32(pt.Y))
			open = true
		case gooey.LineTo:
			pt := c.view.Apply(e.Point)
			c.ras.LineTo(float32(pt.X), float32(pt.Y))
		case gooey.CubicTo:
			c1 := c.view.Apply(e.Control1)
			c2 := c.view.Apply(e.Control2)
			pt := c.view.Apply(e.Point)
			c.ras.CubeTo(
				float32(c1.X), float32(c1.Y),
				float32(c2.X), float32(c2.Y),
				float32(pt.X), float32(pt.Y),
			)
		case gooey.Close:
			c.ras.ClosePath()
			open = false
		}
	}
	if open {
		c.ras.ClosePath()
	}
	c.ras.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

// FillRect fills the world rectangle r with col.
func (c *Canvas) FillRect(r gooey.Rect, col color.Color) {
	p := gooey.NewPath()
	p.MoveTo(r.Min)
	p.LineTo(gooey.Pt(r.Max.X, r.Min.Y))
	p.LineTo(r.Max)
	p.LineTo(gooey.Pt(r.Min.X, r.Max.Y))
	p.Close()
	c.FillPath(p, col)
}

// Line strokes the segment from a to b with the given pixel width.
func (c *Canvas) Line(a, b gooey.Point, width float64, col color.Color) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return
	}
	// Offset in world units so the stroke is width pixels wide.
	half := width / 2 / c.view.Scale
	n := gooey.Pt(-d.Y/l*half, d.X/l*half)

	p := gooey.NewPath()
	p.MoveTo(a.Add(n))
	p.LineTo(b.Add(n))
	p.LineTo(b.Sub(n))
	p.LineTo(a.Sub(n))
	p.Close()
	c.FillPath(p, col)
}

// Dot fills a disc of the given pixel radius around p.
func (c *Canvas) Dot(p gooey.Point, radius float64, col color.Color) {
	path := gooey.NewPath()
	path.Circle(p, radius/c.view.Scale)
	c.FillPath(path, col)
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("raster: %w", err)
	}
	if err := c.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
