package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/rivo/uniseg"
)

// cellRun is one terminal cell worth of text
type cellRun struct {
	main  rune
	comb  []rune
	width int
}

// splitCells groups s into grapheme clusters; variation selectors and joiners ride on the first rune
func splitCells(s string) []cellRun {
	var cells []cellRun
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		runes := g.Runes()
		w := g.Width()
		if w == 0 {
			if len(cells) > 0 {
				cells[len(cells)-1].comb = append(cells[len(cells)-1].comb, runes...)
			}
			continue
		}
		cells = append(cells, cellRun{main: runes[0], comb: runes[1:], width: w})
	}
	return cells
}

// textWidth is the number of columns drawText advances for s
func textWidth(s string) int {
	w := 0
	for _, c := range splitCells(s) {
		w += c.width
	}
	return w
}

// drawText writes s starting at x, clipped to [minX, maxX), and returns the column after the text
func drawText(screen tcell.Screen, x, y, minX, maxX int, s string, style tcell.Style) int {
	for _, c := range splitCells(s) {
		if x >= minX && x+c.width <= maxX {
			screen.SetContent(x, y, c.main, c.comb, style)
		}
		x += c.width
	}
	return x
}

// drawCentered writes s centred in [minX, maxX)
func drawCentered(screen tcell.Screen, y, minX, maxX int, s string, style tcell.Style) {
	w := textWidth(s)
	x := minX + (maxX-minX-w)/2
	drawText(screen, x, y, minX, maxX, s, style)
}

// wrapLines wraps s to width, keeping at most maxLines and truncating over-long words
func wrapLines(s string, width, maxLines int) []string {
	if s == "" || width <= 0 {
		return nil
	}
	var out []string
	for _, line := range strings.Split(wordwrap.String(s, width), "\n") {
		if len(out) == maxLines {
			last := out[len(out)-1]
			out[len(out)-1] = runewidth.Truncate(last+" "+line, width, "…")
			break
		}
		out = append(out, runewidth.Truncate(line, width, "…"))
	}
	return out
}
