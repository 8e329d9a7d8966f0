// Package plot renders bankroll trajectories to PNG.
package plot

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lox/blackjacksim/internal/fileutil"
)

// Curve colors match the terminal report's palette.
var (
	basicColor    = color.RGBA{R: 0xFF, G: 0x5F, B: 0x87, A: 0xFF}
	countingColor = color.RGBA{R: 0x04, G: 0xB5, B: 0x75, A: 0xFF}
	startColor    = color.RGBA{R: 0x62, G: 0x62, B: 0x62, A: 0xFF}
)

// Trajectories describes one run's bankroll curves. Index zero is the
// starting bankroll; index n is the balance after hand n.
type Trajectories struct {
	Basic            []float64
	Counting         []float64
	StartingBankroll float64
}

// Render draws both bankroll curves plus a dashed reference line at
// the starting bankroll, and writes the PNG to w.
func Render(t Trajectories, w io.Writer) error {
	if len(t.Basic) == 0 || len(t.Counting) == 0 {
		return fmt.Errorf("plot: empty trajectory")
	}

	p := plot.New()
	p.Title.Text = "Blackjack Bankroll Over Time"
	p.X.Label.Text = "Hand"
	p.Y.Label.Text = "Bankroll"
	p.Add(plotter.NewGrid())

	basicLine, err := plotter.NewLine(series(t.Basic))
	if err != nil {
		return fmt.Errorf("plot: basic line: %w", err)
	}
	basicLine.Color = basicColor
	basicLine.Width = vg.Points(1.5)

	countingLine, err := plotter.NewLine(series(t.Counting))
	if err != nil {
		return fmt.Errorf("plot: counting line: %w", err)
	}
	countingLine.Color = countingColor
	countingLine.Width = vg.Points(1.5)

	hands := len(t.Basic)
	if len(t.Counting) > hands {
		hands = len(t.Counting)
	}
	startLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: t.StartingBankroll},
		{X: float64(hands - 1), Y: t.StartingBankroll},
	})
	if err != nil {
		return fmt.Errorf("plot: reference line: %w", err)
	}
	startLine.Color = startColor
	startLine.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}

	basicProfit := t.Basic[len(t.Basic)-1] - t.Basic[0]
	countingProfit := t.Counting[len(t.Counting)-1] - t.Counting[0]

	p.Add(basicLine, countingLine, startLine)
	p.Legend.Add(fmt.Sprintf("basic strategy (%+.2f)", basicProfit), basicLine)
	p.Legend.Add(fmt.Sprintf("card counting (%+.2f)", countingProfit), countingLine)
	p.Legend.Top = true
	p.Legend.Left = true

	wt, err := p.WriterTo(8*vg.Inch, 5*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("plot: render: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("plot: write: %w", err)
	}
	return nil
}

// Save renders the trajectories to a PNG file atomically
func Save(t Trajectories, filename string) error {
	return fileutil.WriteFileAtomicFunc(filename, 0644, func(w io.Writer) error {
		return Render(t, w)
	})
}

func series(values []float64) plotter.XYs {
	xys := make(plotter.XYs, len(values))
	for i, v := range values {
		xys[i].X = float64(i)
		xys[i].Y = v
	}
	return xys
}
