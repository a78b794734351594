// Command gooeyterm drags a gooey blob around in the terminal.
//
// Drag with the left mouse button or nudge with the arrow keys. Release
// the button (or press Enter) to end the drag. Press o to toggle the
// overlay and Esc, q or Ctrl-C to quit.
//
// Each terminal cell shows two pixels using the upper half block, so a
// terminal of C×R cells renders a C×2R canvas.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/gooey"
	"github.com/gogpu/gooey/raster"
	"github.com/gogpu/gooey/scenario"
)

// nudge is the arrow-key step in world units.
const nudge = 5.0

func main() {
	var (
		file    = flag.String("scenario", "", "scenario TOML file for the blob and baseline")
		logFile = flag.String("log", "", "write debug logs to this file")
	)
	flag.Parse()

	s := scenario.Default()
	if *file != "" {
		var err error
		if s, err = scenario.Load(*file); err != nil {
			log.Fatalf("gooeyterm: %v", err)
		}
	}

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			log.Fatalf("gooeyterm: %v", err)
		}
		defer f.Close()
		gooey.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	t, err := newTerm(s)
	if err != nil {
		log.Fatalf("gooeyterm: %v", err)
	}
	defer t.screen.Fini()
	t.run()
}

type term struct {
	screen tcell.Screen
	sc     *scenario.Scenario
	sess   *gooey.Session
	theme  raster.Theme
	canvas *raster.Canvas
	world  gooey.Rect

	frame gooey.Frame

	// offset is the cumulative drag translation in world units.
	offset gooey.Point
	// grab is the world point under the pointer when the drag began.
	grab     gooey.Point
	dragging bool
}

func newTerm(s *scenario.Scenario) (*term, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	t := &term{
		screen: screen,
		sc:     s,
		sess:   s.Session(),
		theme:  raster.DefaultTheme(),
		world:  gooey.RectXYWH(0, 0, float64(s.Canvas.Width), float64(s.Canvas.Height)),
	}
	t.theme.ShowOverlay = s.Debug
	t.frame = t.sess.Engine().Initial()
	t.resize()
	return t, nil
}

func (t *term) resize() {
	w, h := t.screen.Size()
	t.canvas = raster.NewCanvas(max(1, w), max(2, 2*h))
	t.canvas.SetView(raster.Fit(t.world, max(1, w), max(2, 2*h)))
	t.screen.Sync()
}

func (t *term) run() {
	t.draw()
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			t.resize()
		case *tcell.EventKey:
			if !t.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			t.handleMouse(ev)
		}
		t.draw()
	}
}

func (t *term) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		t.release()
	case tcell.KeyUp:
		t.move(t.offset.Move(gooey.Up, nudge))
	case tcell.KeyDown:
		t.move(t.offset.Move(gooey.Down, nudge))
	case tcell.KeyLeft:
		t.move(t.offset.Move(gooey.Left, nudge))
	case tcell.KeyRight:
		t.move(t.offset.Move(gooey.Right, nudge))
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'o':
			t.theme.ShowOverlay = !t.theme.ShowOverlay
		}
	}
	return true
}

func (t *term) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	v := t.canvas.View()
	// Cell centre in pixels, then back to world.
	p := gooey.Pt(float64(x)+0.5, float64(2*y)+1).Mul(1 / v.Scale).Add(v.Origin)

	switch {
	case ev.Buttons()&tcell.Button1 != 0 && !t.dragging:
		t.dragging = true
		t.grab = p
	case ev.Buttons()&tcell.Button1 != 0:
		t.move(p.Sub(t.grab))
	case t.dragging:
		t.dragging = false
		t.release()
	}
}

func (t *term) move(off gooey.Point) {
	t.offset = off
	t.frame = t.sess.Move(off.X, off.Y)
}

func (t *term) release() {
	t.offset = gooey.Point{}
	t.frame = t.sess.End()
}

func (t *term) draw() {
	t.canvas.DrawScene(raster.Scene{
		Baseline: t.sess.Baseline(),
		Blob:     t.sess.Blob(),
		Radius:   t.sess.Radius(),
	}, t.frame, t.theme)

	img := t.canvas.Image()
	w, h := t.screen.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			st := tcell.StyleDefault.
				Foreground(rgb(img.RGBAAt(x, 2*y))).
				Background(rgb(img.RGBAAt(x, 2*y+1)))
			t.screen.SetContent(x, y, '▀', nil, st)
		}
	}

	status := fmt.Sprintf(" %s  travel %.0f  %v  %v ", t.sc.Name,
		t.frame.Travel, t.frame.Constriction, t.frame.Avulsion)
	st := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range status {
		if i >= w {
			break
		}
		t.screen.SetContent(i, h-1, r, nil, st)
	}
	t.screen.Show()
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
