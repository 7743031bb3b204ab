// Full-screen viewer for genetic nonogram runs. Renders the best
// solution as a colored grid alongside convergence sparklines, and
// plays a chime when a run reaches a perfect score.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/nonogram/genetic"
	"github.com/lixenwraith/nonogram/nonogram"
	"github.com/lixenwraith/nonogram/parameter"
)

// sparklineChars provides 8-level vertical resolution
var sparklineChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

type Viewer struct {
	screen  tcell.Screen
	width   int
	height  int
	puzzle  nonogram.Puzzle
	palette nonogram.Palette
	config  genetic.Config
	seed    uint64

	history  genetic.History
	elapsed  time.Duration
	chimed   bool
	audioOK  bool
	puzzleID string
}

func NewViewer(puzzle nonogram.Puzzle, palette nonogram.Palette, cfg genetic.Config, seed uint64, name string) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	v := &Viewer{
		screen:   screen,
		puzzle:   puzzle,
		palette:  palette,
		config:   cfg,
		seed:     seed,
		puzzleID: name,
	}
	v.width, v.height = screen.Size()

	// Initialize audio
	if err := v.initAudio(); err != nil {
		// Non-fatal, viewer can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	return v, nil
}

func (v *Viewer) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		v.audioOK = true
	}
	return err
}

func (v *Viewer) playWinSound() {
	if !v.audioOK {
		return
	}

	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(150 * time.Millisecond)
	sine, _ := generators.SineTone(sampleRate, 880)

	buffer := beep.Take(duration, sine)
	speaker.Play(buffer)
}

// search runs one full search with the current seed and records the outcome.
func (v *Viewer) search() {
	rng := genetic.NewRand(v.seed)
	start := time.Now()
	v.history = genetic.Search(context.Background(), v.config, v.puzzle, rng)
	v.elapsed = time.Since(start)
	v.chimed = false
}

func (v *Viewer) cellColor(color int) tcell.Color {
	hex := v.palette.Get(color)
	r, g, b, ok := nonogram.ParseColor(hex)
	if !ok {
		return tcell.ColorGray
	}
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (v *Viewer) drawGrid(x, y int) {
	winner := v.history.Winner
	for row := 0; row < winner.Rows(); row++ {
		for col := 0; col < winner.Cols(); col++ {
			style := tcell.StyleDefault.Foreground(v.cellColor(winner.Grid[row][col]))
			// Two columns per cell to keep the grid roughly square
			v.screen.SetContent(x+col*2, y+row, '█', nil, style)
			v.screen.SetContent(x+col*2+1, y+row, '█', nil, style)
		}
	}
}

func (v *Viewer) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		if x+i >= v.width {
			break
		}
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// drawSparkline maps values onto 8-level block characters. Values beyond
// width are trimmed from the front so the tail of the run stays visible.
func (v *Viewer) drawSparkline(x, y, width int, values []float64, style tcell.Style) {
	if len(values) == 0 || width <= 0 {
		return
	}

	min, max := values[0], values[0]
	for _, val := range values {
		if val < min {
			min = val
		}
		if val > max {
			max = val
		}
	}
	rangeV := max - min
	if rangeV == 0 {
		rangeV = 1
	}

	sampled := values
	if len(sampled) > width {
		sampled = sampled[len(sampled)-width:]
	}

	for i, val := range sampled {
		if x+i >= v.width {
			break
		}
		norm := (val - min) / rangeV
		idx := int(norm * 7.99)
		if idx > 7 {
			idx = 7
		}
		v.screen.SetContent(x+i, y, sparklineChars[idx], nil, style)
	}
}

func intSeries(values []int) []float64 {
	out := make([]float64, len(values))
	for i, val := range values {
		out[i] = float64(val)
	}
	return out
}

func (v *Viewer) draw() {
	v.screen.Clear()

	title := fmt.Sprintf(" %s  seed=%d ", v.puzzleID, v.seed)
	v.drawText(1, 0, title, tcell.StyleDefault.Bold(true))

	gridY := 2
	v.drawGrid(2, gridY)

	legendX := v.puzzle.Cols*2 + 5
	for i := 0; i < v.palette.Len(); i++ {
		style := tcell.StyleDefault.Foreground(v.cellColor(i))
		v.screen.SetContent(legendX, gridY+i, '█', nil, style)
		v.drawText(legendX+2, gridY+i, v.palette.Get(i), tcell.StyleDefault)
	}

	sparkY := gridY + v.puzzle.Rows + 2
	sparkW := v.width - 10
	if sparkW > v.history.Iterations {
		sparkW = v.history.Iterations
	}

	v.drawText(1, sparkY, "best  ", tcell.StyleDefault)
	v.drawSparkline(8, sparkY, sparkW, intSeries(v.history.Best), tcell.StyleDefault.Foreground(tcell.ColorGreen))
	v.drawText(1, sparkY+1, "median", tcell.StyleDefault)
	v.drawSparkline(8, sparkY+1, sparkW, v.history.Median, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	v.drawText(1, sparkY+2, "worst ", tcell.StyleDefault)
	v.drawSparkline(8, sparkY+2, sparkW, intSeries(v.history.Worst), tcell.StyleDefault.Foreground(tcell.ColorRed))

	statusY := sparkY + 4
	var status string
	if v.history.Solved() {
		status = fmt.Sprintf("solved in %d iterations (%v)", v.history.Iterations, v.elapsed.Round(time.Millisecond))
	} else {
		best := 0
		if n := len(v.history.Best); n > 0 {
			best = v.history.Best[n-1]
		}
		status = fmt.Sprintf("exhausted after %d iterations, best score %d (%v)",
			v.history.Iterations, best, v.elapsed.Round(time.Millisecond))
	}
	v.drawText(1, statusY, status, tcell.StyleDefault)
	v.drawText(1, statusY+2, "r: rerun with next seed   q/esc: quit", tcell.StyleDefault.Dim(true))

	v.screen.Show()
}

func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'r':
				v.seed++
				v.search()
				v.draw()
			}
		}

	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.screen.Sync()
		v.draw()
	}

	return true
}

func (v *Viewer) run() {
	v.search()
	v.draw()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- v.screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if v.history.Solved() && !v.chimed {
				v.playWinSound()
				v.chimed = true
			}
		}
	}
}

func (v *Viewer) cleanup() {
	if v.audioOK {
		speaker.Close()
	}
	v.screen.Fini()
}

func main() {
	var (
		path = flag.String("file", "", "puzzle file (.ngram), defaults to the built-in tree")
		seed = flag.Uint64("seed", parameter.GASeed, "search seed")
	)
	flag.Parse()

	puzzle := nonogram.TreePuzzle()
	palette := nonogram.TreePalette()
	name := "tree"
	if *path != "" {
		file, err := nonogram.LoadFile(*path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load puzzle: %v\n", err)
			os.Exit(1)
		}
		puzzle = file.Puzzle()
		palette = file.Palette
		name = *path
	}

	if err := puzzle.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid puzzle: %v\n", err)
		os.Exit(1)
	}

	viewer, err := NewViewer(puzzle, palette, genetic.DefaultConfig(), *seed, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer viewer.cleanup()

	viewer.run()
}
