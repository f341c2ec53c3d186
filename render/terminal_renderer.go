package render

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pixel-spin/constants"
	"github.com/lixenwraith/pixel-spin/engine"
	"github.com/lixenwraith/pixel-spin/question"
)

const helpText = "SPACE spin   1-6 category   0 all   M mute   Q quit"

// Status is the chrome state the reel cannot derive from effects
type Status struct {
	Filter         question.Filter
	Muted          bool
	AudioAvailable bool
	Spinning       bool
	Spins          int64
}

// cardView is the last applied state of one card surface
type cardView struct {
	shift     float64 // Percent of card height
	blur      float64
	settled   bool
	content   question.Item
	bounce    float64 // Rows, driven by the settle spring
	bounceVel float64
}

// Reel draws the slot machine to a tcell screen
// Effects arrive through Apply, drawing happens in RenderFrame; both run on the loop goroutine
type Reel struct {
	mu      sync.Mutex
	cards   [2]cardView
	needles [2]float64 // Left, right in degrees
	lit     bool
	label   string
	status  Status

	spring harmonica.Spring
	clock  engine.TimeProvider
	start  time.Time
}

// NewReel creates a reel renderer animating at fps
func NewReel(fps int, clock engine.TimeProvider) *Reel {
	if fps <= 0 {
		fps = constants.DefaultFPS
	}
	return &Reel{
		label:  constants.LabelIdle,
		status: Status{Filter: question.NewFilter()},
		spring: harmonica.NewSpring(harmonica.FPS(fps), constants.SettleFrequency, constants.SettleDamping),
		clock:  clock,
		start:  clock.Now(),
	}
}

// Apply implements engine.Surface
func (r *Reel) Apply(id engine.SurfaceID, e engine.Effect) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch id {
	case engine.SurfaceCardA, engine.SurfaceCardB:
		c := &r.cards[id-engine.SurfaceCardA]
		if e.Has(engine.MaskTransform) {
			c.shift = e.Transform
		}
		if e.Has(engine.MaskBlur) {
			c.blur = e.Blur
		}
		if e.Has(engine.MaskContent) {
			c.content = e.Content
		}
		if e.Has(engine.MaskSettled) {
			if e.Settled && !c.settled {
				c.bounce = constants.SettleKick
				c.bounceVel = 0
			}
			if !e.Settled {
				c.bounce, c.bounceVel = 0, 0
			}
			c.settled = e.Settled
		}
	case engine.SurfaceNeedleLeft:
		if e.Has(engine.MaskTransform) {
			r.needles[0] = e.Transform
		}
	case engine.SurfaceNeedleRight:
		if e.Has(engine.MaskTransform) {
			r.needles[1] = e.Transform
		}
	case engine.SurfaceScreen:
		if e.Has(engine.MaskBorder) {
			r.lit = e.Border
		}
	case engine.SurfaceButton:
		if e.Has(engine.MaskLabel) {
			r.label = e.Label
		}
	}
}

// SetStatus updates the header, button and help chrome
func (r *Reel) SetStatus(s Status) {
	r.mu.Lock()
	r.status = s
	r.mu.Unlock()
}

// Label returns the current button label
func (r *Reel) Label() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.label
}

// RenderFrame draws the whole reel and shows it
func (r *Reel) RenderFrame(screen tcell.Screen) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stepSprings()

	w, h := screen.Size()
	l := ComputeLayout(w, h)
	bg := tcell.StyleDefault.Background(RgbBackground)

	screen.SetStyle(bg)
	screen.Clear()

	r.drawCorners(screen, l)
	r.drawHeader(screen, l, bg)
	r.drawTitle(screen, l, bg)
	r.drawBox(screen, l)
	for i := range r.cards {
		r.drawCard(screen, l, &r.cards[i])
	}
	r.drawNeedles(screen, l, bg)
	r.drawButton(screen, l, bg)
	drawCentered(screen, l.HelpY, 0, w, helpText, bg.Foreground(RgbHint))

	screen.Show()
}

// stepSprings advances settle bounces by one frame
func (r *Reel) stepSprings() {
	for i := range r.cards {
		c := &r.cards[i]
		if !c.settled || (c.bounce == 0 && c.bounceVel == 0) {
			continue
		}
		c.bounce, c.bounceVel = r.spring.Update(c.bounce, c.bounceVel, 0)
		if math.Abs(c.bounce) < 0.01 && math.Abs(c.bounceVel) < 0.01 {
			c.bounce, c.bounceVel = 0, 0
		}
	}
}

func (r *Reel) drawCorners(screen tcell.Screen, l Layout) {
	if l.Width < 2 || l.Height < 2 {
		return
	}
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbCorner)
	screen.SetContent(0, 0, '┏', nil, style)
	screen.SetContent(l.Width-1, 0, '┓', nil, style)
	screen.SetContent(0, l.Height-1, '┗', nil, style)
	screen.SetContent(l.Width-1, l.Height-1, '┛', nil, style)
}

// drawHeader draws the audio indicator on the left and the category bar on the right
func (r *Reel) drawHeader(screen tcell.Screen, l Layout, bg tcell.Style) {
	audio := "[SOUND ON]"
	switch {
	case !r.status.AudioAvailable:
		audio = "[NO AUDIO]"
	case r.status.Muted:
		audio = "[MUTED]"
	}
	x := drawText(screen, l.BoxX, l.HeaderY, 0, l.Width, audio, bg.Foreground(RgbHint))

	bar := categoryBar(r.status.Filter)
	width := 0
	for _, seg := range bar {
		width += textWidth(seg.text) + 1
	}
	cx := l.BoxX + l.BoxW - width
	if cx <= x {
		cx = x + 1
	}
	for _, seg := range bar {
		style := bg.Foreground(RgbCategoryOff)
		if seg.on {
			style = bg.Foreground(RgbCategoryOn).Bold(true)
		}
		cx = drawText(screen, cx, l.HeaderY, 0, l.Width, seg.text, style) + 1
	}
}

type barSegment struct {
	text string
	on   bool
}

// categoryBar lists every category with its hotkey, marking the selected ones
func categoryBar(f question.Filter) []barSegment {
	segs := make([]barSegment, 0, len(question.Categories))
	for i, c := range question.Categories {
		segs = append(segs, barSegment{
			text: string(rune('1'+i)) + ":" + c.Tag,
			on:   f.Selected(c.Tag),
		})
	}
	return segs
}

// drawTitle draws the blinking prompt and, once spun, the spin counter on the right
func (r *Reel) drawTitle(screen tcell.Screen, l Layout, bg tcell.Style) {
	style := bg.Foreground(RgbNeonGreen).Bold(true)
	x := drawText(screen, l.BoxX, l.TitleY, 0, l.Width, constants.ReelTitle, style)
	if (r.clock.Now().Sub(r.start)/constants.CursorBlinkInterval)%2 == 0 {
		x = drawText(screen, x, l.TitleY, 0, l.Width, "_", style)
	}

	if r.status.Spins > 0 {
		counter := fmt.Sprintf("SPINS %03d", r.status.Spins)
		cx := l.BoxX + l.BoxW - textWidth(counter)
		if cx > x {
			drawText(screen, cx, l.TitleY, 0, l.Width, counter, bg.Foreground(RgbHint))
		}
	}
}

// drawBox fills the screen and draws its border, lit while flashing
func (r *Reel) drawBox(screen tcell.Screen, l Layout) {
	fill := tcell.StyleDefault.Background(RgbScreenBg)
	for y := l.InnerY; y < l.InnerY+l.InnerH; y++ {
		for x := l.InnerX; x < l.InnerX+l.InnerW; x++ {
			screen.SetContent(x, y, ' ', nil, fill)
		}
	}

	border := RgbBorder
	if r.lit {
		border = RgbBorderLit
	}
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(border)
	right, bottom := l.BoxX+l.BoxW-1, l.BoxY+l.BoxH-1
	for x := l.BoxX + 1; x < right; x++ {
		screen.SetContent(x, l.BoxY, '═', nil, style)
		screen.SetContent(x, bottom, '═', nil, style)
	}
	for y := l.BoxY + 1; y < bottom; y++ {
		screen.SetContent(l.BoxX, y, '║', nil, style)
		screen.SetContent(right, y, '║', nil, style)
	}
	screen.SetContent(l.BoxX, l.BoxY, '╔', nil, style)
	screen.SetContent(right, l.BoxY, '╗', nil, style)
	screen.SetContent(l.BoxX, bottom, '╚', nil, style)
	screen.SetContent(right, bottom, '╝', nil, style)
}

// cardLine is one row of card content relative to the card top
type cardLine struct {
	row  int
	text string
	fg   tcell.Color
	bold bool
}

// cardLines lays out icon, primary and secondary text centred vertically in the card
func cardLines(item question.Item, l Layout, settled bool) []cardLine {
	width := l.InnerW - 2
	var lines []cardLine
	if item.Icon != "" {
		lines = append(lines, cardLine{text: item.Icon, fg: RgbTextBright})
	}
	primary := RgbTextBright
	if settled {
		primary = RgbNeonGreen
	}
	for _, s := range wrapLines(item.Primary, width, 3) {
		lines = append(lines, cardLine{text: s, fg: primary, bold: true})
	}
	for _, s := range wrapLines(item.Secondary, width, 2) {
		lines = append(lines, cardLine{text: s, fg: RgbTextDim})
	}
	if len(lines) > l.InnerH {
		lines = lines[:l.InnerH]
	}
	top := (l.InnerH - len(lines)) / 2
	for i := range lines {
		lines[i].row = top + i
	}
	return lines
}

// shiftRows converts a percent shift to a whole-row offset inside the screen
func shiftRows(shift float64, innerH int) int {
	return int(math.Round(shift / constants.CardSpan * float64(innerH)))
}

// drawCard draws one card at its shift, with blur ghosts trailing upward and clipping to the screen interior
func (r *Reel) drawCard(screen tcell.Screen, l Layout, c *cardView) {
	if c.content.IsZero() {
		return
	}
	base := shiftRows(c.shift, l.InnerH) + int(math.Round(c.bounce))
	if base <= -l.InnerH || base >= l.InnerH {
		return
	}
	lines := cardLines(c.content, l, c.settled)

	ghosts := 0
	if c.blur >= 1 {
		ghosts = 1
	}
	if c.blur >= constants.MaxBlur/2 {
		ghosts = 2
	}
	dim := c.blur / constants.MaxBlur * 0.5

	for g := ghosts; g >= 0; g-- {
		fade := dim
		if g > 0 {
			fade = dim + 0.2*float64(g)
		}
		for _, ln := range lines {
			y := l.InnerY + base + ln.row - g
			if y < l.InnerY || y >= l.InnerY+l.InnerH {
				continue
			}
			style := tcell.StyleDefault.Background(RgbScreenBg).Foreground(Lerp(ln.fg, RgbScreenBg, fade))
			if ln.bold && g == 0 {
				style = style.Bold(true)
			}
			drawCentered(screen, y, l.InnerX+1, l.InnerX+l.InnerW-1, ln.text, style)
		}
	}
}

// needleRows converts a rotation to a tip row displacement
func needleRows(deg float64) int {
	dy := int(math.Round(deg / constants.NeedleRowDegrees))
	if dy > constants.NeedleMaxRows {
		dy = constants.NeedleMaxRows
	}
	if dy < -constants.NeedleMaxRows {
		dy = -constants.NeedleMaxRows
	}
	return dy
}

// drawNeedles draws the pointers flanking the screen, tips displaced by rotation
func (r *Reel) drawNeedles(screen tcell.Screen, l Layout, bg tcell.Style) {
	style := bg.Foreground(RgbNeonPink).Bold(true)
	mid := l.MidRow()

	if l.BoxX >= 2 {
		screen.SetContent(l.BoxX-2, mid, '━', nil, style)
		screen.SetContent(l.BoxX-1, mid+needleRows(r.needles[0]), '▶', nil, style)
	}
	right := l.BoxX + l.BoxW
	if right+1 < l.Width {
		// Right needle is mirrored: positive rotation moves its tip up
		screen.SetContent(right, mid-needleRows(r.needles[1]), '◀', nil, style)
		screen.SetContent(right+1, mid, '━', nil, style)
	}
}

// drawButton draws the spin button, dimmed while spinning
func (r *Reel) drawButton(screen tcell.Screen, l Layout, bg tcell.Style) {
	style := tcell.StyleDefault.Background(RgbButtonBg).Foreground(RgbButtonText).Bold(true)
	if r.status.Spinning {
		style = tcell.StyleDefault.Background(RgbButtonBusyBg).Foreground(RgbButtonBusyText)
	}
	drawCentered(screen, l.ButtonY, 0, l.Width, "[ "+r.label+" ]", style)
}
