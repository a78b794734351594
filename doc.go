// Package gooey computes the outline of a "gooey" blob that stretches away
// from a fixed baseline and snaps off once dragged far enough.
//
// # Overview
//
// An [Engine] is a stateful geometry calculator. Given the current blob
// rectangle it returns a [Frame] whose [Path] runs from the left baseline
// anchor, up a cubic neck curve to the blob's bottom-left corner circle,
// across the blob's bottom edge and down a mirrored curve to the right
// anchor. Renderers fill that path together with the blob body.
//
// # Quick Start
//
//	import "github.com/gogpu/gooey"
//
//	rest := gooey.RectXYWH(100, 400, 100, 60)
//	baseline := gooey.RectXYWH(0, 380, 400, 80)
//	e := gooey.NewEngine(rest, baseline, 30, 140)
//
//	// On every pointer move:
//	f := e.Recompute(rest.Translate(dx, dy))
//	fill(f.Path)
//
// [Session] wraps an engine for drag gestures: Move takes the gesture
// translation and End resets the blob with a fresh engine.
//
// # Stability
//
// Three mechanisms keep the outline drawable:
//   - Baseline anchors freeze while the neck is constricted or when they
//     would come closer than width-2R.
//   - The constriction guard samples both neck curves at t = 0.3..0.6 and,
//     on a crossing, pins the control points to the last known-good ones.
//   - Once the lift exceeds the avulsion distance, or the blob sinks below
//     the baseline, the neck collapses onto the baseline. In production
//     mode that avulsion latch is one-way for the engine's lifetime; see
//     [WithDebugUnlatched].
//
// # Coordinate System
//
// Screen coordinates: origin at top-left, X increases right, Y increases
// down. Lifting the blob decreases its Y.
package gooey
