// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scenario

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gooey"
)

func TestLoad_Lift(t *testing.T) {
	s, err := Load("testdata/lift.toml")
	require.NoError(t, err)

	assert.Equal(t, "lift and snap", s.Name)
	assert.Equal(t, 30.0, s.CornerRadius)
	assert.Equal(t, 140.0, s.AvulsionDistance())
	assert.False(t, s.Debug)
	assert.Equal(t, Canvas{Width: DefaultCanvasWidth, Height: DefaultCanvasHeight}, s.Canvas)
	assert.Equal(t, gooey.RectXYWH(100, 400, 100, 60), s.Rest.Rect())
	assert.Equal(t, gooey.RectXYWH(0, 380, 400, 80), s.Baseline.Rect())
	require.Len(t, s.Steps, 3)
	assert.Equal(t, -200.0, s.Steps[1].DY)
	assert.True(t, s.Steps[2].End)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/nope.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.toml")
}

func TestParse_DefaultAvulsion(t *testing.T) {
	src := `
corner_radius = 10
[rest]
width = 80
height = 40
[baseline]
width = 200
height = 20
[[steps]]
dy = -10
`
	s, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Nil(t, s.Avulsion)
	assert.Equal(t, 80.0, s.AvulsionDistance())
	assert.Equal(t, "untitled", s.Name)
}

func TestParse_UnknownField(t *testing.T) {
	src := `
corner_radius = 10
radius = 10
[rest]
width = 80
height = 40
[baseline]
width = 200
[[steps]]
dy = -10
`
	_, err := Parse(strings.NewReader(src))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalid))
}

func TestParse_Syntax(t *testing.T) {
	_, err := Parse(strings.NewReader("corner_radius = = 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestValidate(t *testing.T) {
	neg := -1.0
	tests := []struct {
		name   string
		modify func(*Scenario)
		want   string
	}{
		{"negative radius", func(s *Scenario) { s.CornerRadius = -2 }, "corner_radius"},
		{"negative avulsion", func(s *Scenario) { s.Avulsion = &neg }, "avulsion"},
		{"empty blob", func(s *Scenario) { s.Rest.Width = 0 }, "rest"},
		{"narrow baseline", func(s *Scenario) { s.Baseline.Width = 50 }, "baseline"},
		{"empty canvas", func(s *Scenario) { s.Canvas.Height = 0 }, "canvas"},
		{"no steps", func(s *Scenario) { s.Steps = nil }, "no steps"},
		{"negative frames", func(s *Scenario) { s.Steps[0].Frames = -1 }, "frames"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.modify(s)
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
	assert.NoError(t, Default().Validate())
}

func TestEncode_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Encode(&buf))

	s, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestReplay_Default(t *testing.T) {
	shots := Default().Frames()
	require.Len(t, shots, 4)

	for i, sh := range shots {
		assert.Equal(t, i, sh.Index)
	}

	lifted := shots[0]
	assert.InDelta(t, 100, lifted.Frame.Travel, 1e-9)
	assert.Equal(t, gooey.Constricted, lifted.Frame.Constriction)
	assert.Equal(t, gooey.Armed, lifted.Frame.Avulsion)
	assert.InDelta(t, 112.857, lifted.Frame.Points.BaseLeft.X, 1e-3)

	snapped := shots[1]
	assert.Equal(t, gooey.Latched, snapped.Frame.Avulsion)
	assert.True(t, snapped.Frame.Flattened)

	// Back at rest but still latched until the drag ends.
	back := shots[2]
	assert.False(t, back.Released)
	assert.Equal(t, gooey.Latched, back.Frame.Avulsion)

	released := shots[3]
	assert.True(t, released.Released)
	assert.Equal(t, 2, released.Step)
	assert.Equal(t, gooey.Armed, released.Frame.Avulsion)
	assert.Equal(t, gooey.RectXYWH(100, 400, 100, 60), released.Blob)
}

func TestReplay_Interpolates(t *testing.T) {
	s, err := Load("testdata/sway.toml")
	require.NoError(t, err)
	assert.True(t, s.Debug)
	assert.Equal(t, Canvas{Width: 320, Height: 480}, s.Canvas)

	shots := s.Frames()
	// 4 + 8 interpolated frames plus the release.
	require.Len(t, shots, 13)

	assert.InDelta(t, 10, shots[0].DX, 1e-9)
	assert.InDelta(t, -20, shots[0].DY, 1e-9)
	assert.InDelta(t, 40, shots[3].DX, 1e-9)
	assert.InDelta(t, 30, shots[4].DX, 1e-9)
	assert.InDelta(t, -80, shots[4].DY, 1e-9)
	assert.InDelta(t, -40, shots[11].DX, 1e-9)
	assert.Equal(t, 1, shots[11].Step)
	assert.True(t, shots[12].Released)

	for _, sh := range shots[:12] {
		assert.Equal(t, gooey.RectXYWH(100+sh.DX, 400+sh.DY, 100, 60), sh.Blob)
		assert.Equal(t, gooey.Armed, sh.Frame.Avulsion, "frame %d", sh.Index)
	}
}

func TestReplay_StopsOnError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := Default().Replay(func(sh Shot) error {
		calls++
		if sh.Index == 1 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 2, calls)
	assert.Contains(t, err.Error(), "frame 1")
}
