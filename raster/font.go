// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// LabelSize is the label font size in points at 72 DPI.
const LabelSize = 12

var (
	labelOnce sync.Once
	labelFace font.Face
	labelErr  error
)

// loadLabelFace parses the embedded Go Regular font once.
func loadLabelFace() (font.Face, error) {
	labelOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			labelErr = fmt.Errorf("raster: parse label font: %w", err)
			return
		}
		labelFace, labelErr = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    LabelSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if labelErr != nil {
			labelErr = fmt.Errorf("raster: label face: %w", labelErr)
		}
	})
	return labelFace, labelErr
}

// Label draws s with its baseline starting at pixel (x, y).
// Labels are drawn in pixel space and ignore the view.
func (c *Canvas) Label(x, y int, s string, col color.Color) error {
	face, err := loadLabelFace()
	if err != nil {
		return err
	}
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
	return nil
}

// LabelWidth returns the advance width of s in pixels.
func LabelWidth(s string) (int, error) {
	face, err := loadLabelFace()
	if err != nil {
		return 0, err
	}
	return font.MeasureString(face, s).Ceil(), nil
}
