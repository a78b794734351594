// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image/color"

	"github.com/gogpu/gooey"
)

// Scene is what a host draws besides the neck outline.
type Scene struct {
	Baseline gooey.Rect
	Blob     gooey.Rect
	Radius   float64
}

// Theme holds the colours used by DrawScene.
type Theme struct {
	Background color.Color
	Fill       color.Color

	// Overlay maps primitive names to colours. Primitives without an
	// entry use OverlayDefault.
	Overlay        map[string]color.Color
	OverlayDefault color.Color

	// ShowOverlay draws the debug overlay on top of the shape.
	ShowOverlay bool
}

// DefaultTheme returns the purple-on-slate palette.
func DefaultTheme() Theme {
	red := color.RGBA{R: 206, G: 7, B: 85, A: 255}
	green := color.RGBA{G: 249, A: 255}
	return Theme{
		Background: color.RGBA{R: 68, G: 71, B: 84, A: 255},
		Fill:       color.RGBA{R: 130, G: 122, B: 230, A: 255},
		Overlay: map[string]color.Color{
			"cpLeft1":   red,
			"cpRight1":  red,
			"cpLeft2":   green,
			"cpRight2":  green,
			"baseline":  color.RGBA{R: 56, G: 2, B: 218, A: 255},
			"figure":    color.RGBA{G: 150, B: 255, A: 255},
			"corners":   color.RGBA{R: 227, G: 167, B: 129, A: 255},
			"neckLeft":  color.RGBA{R: 28, G: 206, B: 26, A: 255},
			"neckRight": color.RGBA{R: 28, G: 206, B: 26, A: 255},
		},
		OverlayDefault: color.White,
	}
}

// DrawScene clears the canvas and draws the baseline, the blob body and
// the frame outline, then the overlay when the theme asks for it.
func (c *Canvas) DrawScene(s Scene, f gooey.Frame, th Theme) {
	c.Clear(th.Background)
	c.FillRect(s.Baseline, th.Fill)

	body := gooey.NewPath()
	body.RoundedRectangle(s.Blob, s.Radius)
	c.FillPath(body, th.Fill)

	c.FillPath(f.Path, th.Fill)

	if th.ShowOverlay {
		c.DrawOverlay(f.Overlay(), th)
	}
}

// DrawOverlay draws debug primitives: dots as discs, segments as 1px lines.
func (c *Canvas) DrawOverlay(prims []gooey.Primitive, th Theme) {
	for _, p := range prims {
		col, ok := th.Overlay[p.Name]
		if !ok {
			col = th.OverlayDefault
		}
		switch p.Kind {
		case gooey.Dots:
			for _, pt := range p.Points {
				c.Dot(pt, p.Radius, col)
			}
		case gooey.Segment:
			for i := 1; i < len(p.Points); i++ {
				c.Line(p.Points[i-1], p.Points[i], 1, col)
			}
		}
	}
}
