// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scenario loads scripted drag gestures from TOML and replays
// them through a gooey.Session.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/gooey"
)

// ErrInvalid is returned (wrapped) for scenarios that decode but cannot be
// replayed.
var ErrInvalid = errors.New("scenario: invalid")

// Default canvas size when a scenario does not set one.
const (
	DefaultCanvasWidth  = 400
	DefaultCanvasHeight = 600
)

// Box is a rectangle given by origin and size.
type Box struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Rect converts the box to a gooey.Rect.
func (b Box) Rect() gooey.Rect {
	return gooey.RectXYWH(b.X, b.Y, b.Width, b.Height)
}

// Canvas is the output image size in pixels.
type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Step is one gesture position: the cumulative translation of the blob
// from rest.
type Step struct {
	DX float64 `toml:"dx"`
	DY float64 `toml:"dy"`

	// Frames interpolates this many frames from the previous translation
	// to this one. Zero and one both mean a single frame.
	Frames int `toml:"frames,omitempty"`

	// End releases the drag after this step: the blob returns to rest with
	// a fresh engine.
	End bool `toml:"end,omitempty"`
}

// Scenario is a scripted drag.
type Scenario struct {
	Name         string  `toml:"name"`
	CornerRadius float64 `toml:"corner_radius"`
	// Avulsion overrides the default snap distance of min(140, width).
	Avulsion *float64 `toml:"avulsion,omitempty"`
	// Debug disables the one-way avulsion latch.
	Debug bool `toml:"debug"`

	Canvas   Canvas `toml:"canvas"`
	Rest     Box    `toml:"rest"`
	Baseline Box    `toml:"baseline"`
	Steps    []Step `toml:"steps"`
}

// Default returns the reference lift-and-snap scenario.
func Default() *Scenario {
	av := 140.0
	return &Scenario{
		Name:         "lift and snap",
		CornerRadius: 30,
		Avulsion:     &av,
		Canvas:       Canvas{Width: DefaultCanvasWidth, Height: DefaultCanvasHeight},
		Rest:         Box{X: 100, Y: 400, Width: 100, Height: 60},
		Baseline:     Box{X: 0, Y: 380, Width: 400, Height: 80},
		Steps: []Step{
			{DX: 0, DY: -100},
			{DX: 0, DY: -200},
			{DX: 0, DY: 0, End: true},
		},
	}
}

// Parse decodes a scenario from TOML. Unknown keys are rejected.
func Parse(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			return nil, fmt.Errorf("scenario: line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("scenario: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Encode writes the scenario as TOML.
func (s *Scenario) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("scenario: encode: %w", err)
	}
	return nil
}

func (s *Scenario) applyDefaults() {
	if s.Canvas.Width == 0 {
		s.Canvas.Width = DefaultCanvasWidth
	}
	if s.Canvas.Height == 0 {
		s.Canvas.Height = DefaultCanvasHeight
	}
	if s.Name == "" {
		s.Name = "untitled"
	}
}

// AvulsionDistance returns the configured or default snap distance.
func (s *Scenario) AvulsionDistance() float64 {
	if s.Avulsion != nil {
		return *s.Avulsion
	}
	return gooey.DefaultAvulsion(s.Rest.Width)
}

// Validate checks everything NewEngine would panic on, plus the canvas
// and step list.
func (s *Scenario) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
	}
	finite := func(vs ...float64) bool {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
		return true
	}

	switch {
	case !finite(s.CornerRadius) || s.CornerRadius < 0:
		return invalid("corner_radius must be >= 0, got %v", s.CornerRadius)
	case s.Avulsion != nil && (!finite(*s.Avulsion) || *s.Avulsion < 0):
		return invalid("avulsion must be >= 0, got %v", *s.Avulsion)
	case !finite(s.Rest.X, s.Rest.Y, s.Rest.Width, s.Rest.Height) || s.Rest.Width <= 0 || s.Rest.Height <= 0:
		return invalid("rest must have a positive size, got %vx%v", s.Rest.Width, s.Rest.Height)
	case !finite(s.Baseline.X, s.Baseline.Y, s.Baseline.Width, s.Baseline.Height) || s.Baseline.Width < 2*s.CornerRadius:
		return invalid("baseline width %v is narrower than 2*corner_radius", s.Baseline.Width)
	case s.Canvas.Width <= 0 || s.Canvas.Height <= 0:
		return invalid("canvas must have a positive size, got %dx%d", s.Canvas.Width, s.Canvas.Height)
	case len(s.Steps) == 0:
		return invalid("no steps")
	}
	for i, st := range s.Steps {
		if !finite(st.DX, st.DY) {
			return invalid("step %d: translation is not finite", i)
		}
		if st.Frames < 0 {
			return invalid("step %d: frames must be >= 0, got %d", i, st.Frames)
		}
	}
	return nil
}

// Options returns the engine options the scenario asks for.
func (s *Scenario) Options() []gooey.Option {
	if s.Debug {
		return []gooey.Option{gooey.WithDebugUnlatched()}
	}
	return nil
}

// Session builds a session for the scenario.
func (s *Scenario) Session() *gooey.Session {
	return gooey.NewSessionWithAvulsion(s.Rest.Rect(), s.Baseline.Rect(),
		s.CornerRadius, s.AvulsionDistance(), s.Options()...)
}
