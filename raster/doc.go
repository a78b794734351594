// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster fills gooey outlines into RGBA images.
//
// A [Canvas] maps world coordinates to pixels through a [View] and fills
// [gooey.Path] values with golang.org/x/image/vector. [Canvas.DrawScene]
// composes the baseline, the blob body, the neck outline and, optionally,
// the debug overlay, the way an on-screen host would.
//
// Usage:
//
//	c := raster.NewCanvas(400, 600)
//	c.DrawScene(raster.Scene{Baseline: b, Blob: s.Blob(), Radius: 30}, frame, raster.DefaultTheme())
//	_ = c.SavePNG("frame.png")
package raster
