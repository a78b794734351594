// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scenario

import (
	"fmt"

	"github.com/gogpu/gooey"
)

// Shot is one replayed frame.
type Shot struct {
	// Index counts frames from zero across the whole replay.
	Index int
	// Step is the index of the step that produced the frame.
	Step int
	DX   float64
	DY   float64
	// Released is true for the rest frame produced by a step's End.
	Released bool

	Blob  gooey.Rect
	Frame gooey.Frame
}

// Replay runs the steps through a fresh session and calls fn for every
// frame. An error from fn stops the replay and is returned wrapped.
func (s *Scenario) Replay(fn func(Shot) error) error {
	sess := s.Session()
	log := gooey.Logger().With("scenario", s.Name)
	idx := 0
	var prevX, prevY float64

	emit := func(sh Shot) error {
		sh.Index = idx
		idx++
		if err := fn(sh); err != nil {
			return fmt.Errorf("scenario: frame %d: %w", sh.Index, err)
		}
		return nil
	}

	for i, st := range s.Steps {
		n := max(1, st.Frames)
		for k := 1; k <= n; k++ {
			t := float64(k) / float64(n)
			dx := prevX + (st.DX-prevX)*t
			dy := prevY + (st.DY-prevY)*t
			f := sess.Move(dx, dy)
			if err := emit(Shot{Step: i, DX: dx, DY: dy, Blob: sess.Blob(), Frame: f}); err != nil {
				return err
			}
		}
		prevX, prevY = st.DX, st.DY

		if st.End {
			f := sess.End()
			prevX, prevY = 0, 0
			if err := emit(Shot{Step: i, Released: true, Blob: sess.Blob(), Frame: f}); err != nil {
				return err
			}
		}
	}
	log.Debug("scenario: replay done", "frames", idx)
	return nil
}

// Frames replays the scenario and collects every shot.
func (s *Scenario) Frames() []Shot {
	var shots []Shot
	// The collector never fails.
	_ = s.Replay(func(sh Shot) error {
		shots = append(shots, sh)
		return nil
	})
	return shots
}
