// Command gooeydemo replays a drag scenario and writes one PNG per frame.
//
//	gooeydemo -scenario lift.toml -out frames -overlay
//
// Without -scenario the built-in lift-and-snap gesture is used. With -watch
// the scenario file is re-rendered every time it changes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/gooey"
	"github.com/gogpu/gooey/raster"
	"github.com/gogpu/gooey/scenario"
)

func main() {
	var (
		file    = flag.String("scenario", "", "scenario TOML file (default: built-in lift and snap)")
		out     = flag.String("out", "frames", "output directory")
		overlay = flag.Bool("overlay", false, "draw the debug overlay")
		labels  = flag.Bool("labels", true, "label each frame with its state")
		watch   = flag.Bool("watch", false, "re-render when the scenario file changes")
		verbose = flag.Bool("v", false, "log state transitions")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gooey.SetLogger(logger)

	r := renderer{out: *out, overlay: *overlay, labels: *labels, report: os.Stdout}
	if err := r.renderFile(*file); err != nil {
		log.Fatalf("gooeydemo: %v", err)
	}

	if !*watch {
		return
	}
	if *file == "" {
		log.Fatal("gooeydemo: -watch needs -scenario")
	}
	if err := r.watch(*file); err != nil {
		log.Fatalf("gooeydemo: %v", err)
	}
}

type renderer struct {
	out     string
	overlay bool
	labels  bool
	report  io.Writer
}

func (r renderer) renderFile(path string) error {
	s := scenario.Default()
	if path != "" {
		var err error
		if s, err = scenario.Load(path); err != nil {
			return err
		}
	}
	return r.render(s)
}

func (r renderer) render(s *scenario.Scenario) error {
	if err := os.MkdirAll(r.out, 0o755); err != nil {
		return err
	}

	th := raster.DefaultTheme()
	th.ShowOverlay = r.overlay
	c := raster.NewCanvas(s.Canvas.Width, s.Canvas.Height)
	p := message.NewPrinter(language.English)

	p.Fprintf(r.report, "%s: %d steps, radius %.1f, avulsion %.1f\n",
		s.Name, len(s.Steps), s.CornerRadius, s.AvulsionDistance())
	p.Fprintf(r.report, "%5s %8s %8s %8s  %-12s %-8s %s\n",
		"frame", "dx", "dy", "travel", "constriction", "avulsion", "file")

	start := time.Now()
	n := 0
	err := s.Replay(func(sh scenario.Shot) error {
		c.DrawScene(raster.Scene{Baseline: s.Baseline.Rect(), Blob: sh.Blob, Radius: s.CornerRadius}, sh.Frame, th)
		if r.labels {
			if err := c.Label(8, 18, caption(sh), color.White); err != nil {
				return err
			}
		}
		name := filepath.Join(r.out, fmt.Sprintf("frame-%03d.png", sh.Index))
		if err := c.SavePNG(name); err != nil {
			return err
		}
		p.Fprintf(r.report, "%5d %8.1f %8.1f %8.1f  %-12v %-8v %s\n",
			sh.Index, sh.DX, sh.DY, sh.Frame.Travel, sh.Frame.Constriction, sh.Frame.Avulsion, name)
		n++
		return nil
	})
	if err != nil {
		return err
	}
	p.Fprintf(r.report, "wrote %d frames in %v\n", n, time.Since(start).Round(time.Millisecond))
	return nil
}

func caption(sh scenario.Shot) string {
	f := sh.Frame
	s := fmt.Sprintf("#%d travel %.0f %v %v", sh.Index, f.Travel, f.Constriction, f.Avulsion)
	switch {
	case sh.Released:
		s += " released"
	case f.Flattened:
		s += " flat"
	}
	return s
}

// watch re-renders path on every write until interrupted. The parent
// directory is watched because editors often replace files by rename.
func (r renderer) watch(path string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	slog.Info("watching", "file", abs)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := r.renderFile(abs); err != nil {
				// Keep watching: the file may be half-written.
				slog.Error("render failed", "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				slog.Warn("events dropped", "err", err)
				continue
			}
			return err
		case <-interrupt:
			return nil
		}
	}
}
