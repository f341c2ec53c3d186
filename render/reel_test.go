package render

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pixel-spin/engine"
	"github.com/lixenwraith/pixel-spin/question"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestReel() (*Reel, *engine.MockTimeProvider) {
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	return NewReel(60, clock), clock
}

func readRow(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		m, _, _, _ := screen.GetContent(x, y)
		if m == 0 {
			m = ' '
		}
		b.WriteRune(m)
	}
	return b.String()
}

func findRow(screen tcell.Screen, text string) int {
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(readRow(screen, y), text) {
			return y
		}
	}
	return -1
}

// findCol returns the screen column where text starts on row y, or -1
func findCol(screen tcell.Screen, y int, text string) int {
	row := readRow(screen, y)
	idx := strings.Index(row, text)
	if idx < 0 {
		return -1
	}
	return utf8.RuneCountInString(row[:idx])
}

func content(primary string) engine.Effect {
	return engine.Effect{
		Mask:    engine.MaskContent | engine.MaskTransform,
		Content: question.Item{Primary: primary},
	}
}

// TestReelDrawsActiveCardAtMidRow verifies a resting single-line card sits on the needle row
func TestReelDrawsActiveCardAtMidRow(t *testing.T) {
	screen := newTestScreen(t)
	reel, _ := newTestReel()
	l := ComputeLayout(80, 24)

	reel.Apply(engine.SurfaceCardA, content("Hello"))
	reel.RenderFrame(screen)

	if row := findRow(screen, "Hello"); row != l.MidRow() {
		t.Errorf("Card row = %d, want %d", row, l.MidRow())
	}
}

// TestReelShiftMovesCard verifies transform percent maps to whole rows
func TestReelShiftMovesCard(t *testing.T) {
	screen := newTestScreen(t)
	reel, _ := newTestReel()
	l := ComputeLayout(80, 24)

	e := content("Hello")
	e.Transform = 30 // 2.1 rows of 7
	reel.Apply(engine.SurfaceCardA, e)
	reel.RenderFrame(screen)

	if row := findRow(screen, "Hello"); row != l.MidRow()+2 {
		t.Errorf("Card row = %d, want %d", row, l.MidRow()+2)
	}
}

// TestReelHidesWaitingCard verifies the card parked one span above is not drawn
func TestReelHidesWaitingCard(t *testing.T) {
	screen := newTestScreen(t)
	reel, _ := newTestReel()

	e := content("World")
	e.Transform = -100
	reel.Apply(engine.SurfaceCardB, e)
	reel.RenderFrame(screen)

	if row := findRow(screen, "World"); row != -1 {
		t.Errorf("Waiting card drawn at row %d", row)
	}
}

// TestReelClipsToInterior verifies text pushed past the bottom edge never overwrites the border
func TestReelClipsToInterior(t *testing.T) {
	screen := newTestScreen(t)
	reel, _ := newTestReel()
	l := ComputeLayout(80, 24)

	e := content("Hello")
	e.Transform = 60
	reel.Apply(engine.SurfaceCardA, e)
	reel.RenderFrame(screen)

	if row := findRow(screen, "Hello"); row != -1 {
		t.Errorf("Clipped card drawn at row %d", row)
	}
	if m, _, _, _ := screen.GetContent(l.InnerX+l.InnerW/2, l.BoxY+l.BoxH-1); m != '═' {
		t.Errorf("Bottom border = %q, want '═'", m)
	}
}

// TestReelBorderFlash verifies the border color follows the screen surface highlight
func TestReelBorderFlash(t *testing.T) {
	screen := newTestScreen(t)
	reel, _ := newTestReel()
	l := ComputeLayout(80, 24)

	borderFg := func() tcell.Color {
		_, _, style, _ := screen.GetContent(l.BoxX, l.BoxY)
		fg, _, _ := style.Decompose()
		return fg
	}

	reel.RenderFrame(screen)
	if fg := borderFg(); fg != RgbBorder {
		t.Errorf("Idle border = %v, want %v", fg, RgbBorder)
	}

	reel.Apply(engine.SurfaceScreen, engine.Effect{Mask: engine.MaskBorder, Border: true})
	reel.RenderFrame(screen)
	if fg := borderFg(); fg != RgbBorderLit {
		t.Errorf("Flashing border = %v, want %v", fg, RgbBorderLit)
	}

	reel.Apply(engine.SurfaceScreen, engine.Effect{Mask: engine.MaskBorder, Border: false})
	reel.RenderFrame(screen)
	if fg := borderFg(); fg != RgbBorder {
		t.Errorf("Reverted border = %v, want %v", fg, RgbBorder)
	}
}

// TestReelNeedlesMirror verifies mirrored rotations move both tips the same way
func TestReelNeedlesMirror(t *testing.T) {
	screen := newTestScreen(t)
	reel, _ := newTestReel()
	l := ComputeLayout(80, 24)

	reel.Apply(engine.SurfaceNeedleLeft, engine.Effect{Mask: engine.MaskTransform, Transform: 20})
	reel.Apply(engine.SurfaceNeedleRight, engine.Effect{Mask: engine.MaskTransform, Transform: -20})
	reel.RenderFrame(screen)

	if m, _, _, _ := screen.GetContent(l.BoxX-1, l.MidRow()+2); m != '▶' {
		t.Errorf("Left tip = %q, want '▶'", m)
	}
	if m, _, _, _ := screen.GetContent(l.BoxX+l.BoxW, l.MidRow()+2); m != '◀' {
		t.Errorf("Right tip = %q, want '◀'", m)
	}
}

// TestReelButtonLabel verifies the applied label is drawn and dimmed while spinning
func TestReelButtonLabel(t *testing.T) {
	screen := newTestScreen(t)
	reel, _ := newTestReel()
	l := ComputeLayout(80, 24)

	reel.RenderFrame(screen)
	if !strings.Contains(readRow(screen, l.ButtonY), "[ SPIN THE REEL ]") {
		t.Errorf("Idle button row = %q", readRow(screen, l.ButtonY))
	}

	reel.Apply(engine.SurfaceButton, engine.Effect{Mask: engine.MaskLabel, Label: "MAX SPEED!"})
	reel.SetStatus(Status{Filter: question.NewFilter(), Spinning: true})
	reel.RenderFrame(screen)

	x := findCol(screen, l.ButtonY, "[ MAX SPEED! ]")
	if x < 0 {
		t.Fatalf("Button row = %q", readRow(screen, l.ButtonY))
	}
	_, _, style, _ := screen.GetContent(x, l.ButtonY)
	if _, bg, _ := style.Decompose(); bg != RgbButtonBusyBg {
		t.Errorf("Spinning button bg = %v, want %v", bg, RgbButtonBusyBg)
	}
	if reel.Label() != "MAX SPEED!" {
		t.Errorf("Label() = %q", reel.Label())
	}
}

// TestReelSettleBounce verifies a settled card drops and springs back to rest
func TestReelSettleBounce(t *testing.T) {
	screen := newTestScreen(t)
	reel, _ := newTestReel()
	l := ComputeLayout(80, 24)

	reel.Apply(engine.SurfaceCardA, content("Hello"))
	reel.Apply(engine.SurfaceCardA, engine.Effect{Mask: engine.MaskSettled, Settled: true})
	reel.RenderFrame(screen)

	if row := findRow(screen, "Hello"); row <= l.MidRow() {
		t.Errorf("Settling card row = %d, want below %d", row, l.MidRow())
	}

	for i := 0; i < 180; i++ {
		reel.RenderFrame(screen)
	}
	row := findRow(screen, "Hello")
	if row != l.MidRow() {
		t.Fatalf("Settled card row = %d, want %d", row, l.MidRow())
	}
	x := findCol(screen, row, "Hello")
	_, _, style, _ := screen.GetContent(x, row)
	if fg, _, _ := style.Decompose(); fg != RgbNeonGreen {
		t.Errorf("Settled text fg = %v, want %v", fg, RgbNeonGreen)
	}
}

// TestReelBlurDimsText verifies motion blur fades the crisp text and adds a ghost row
func TestReelBlurDimsText(t *testing.T) {
	screen := newTestScreen(t)
	reel, _ := newTestReel()
	l := ComputeLayout(80, 24)

	reel.Apply(engine.SurfaceCardA, content("Hello"))
	reel.Apply(engine.SurfaceCardA, engine.Effect{Mask: engine.MaskBlur, Blur: 4})
	reel.RenderFrame(screen)

	x := findCol(screen, l.MidRow(), "Hello")
	if x < 0 {
		t.Fatalf("Crisp row = %q", readRow(screen, l.MidRow()))
	}
	_, _, style, _ := screen.GetContent(x, l.MidRow())
	if fg, _, _ := style.Decompose(); fg == RgbTextBright {
		t.Error("Blurred text should be dimmed")
	}
	if !strings.Contains(readRow(screen, l.MidRow()-1), "Hello") {
		t.Error("Expected a ghost row above the crisp text")
	}
}

// TestReelHeaderStatus verifies the audio indicator and category bar
func TestReelHeaderStatus(t *testing.T) {
	screen := newTestScreen(t)
	reel, _ := newTestReel()
	l := ComputeLayout(80, 24)

	reel.SetStatus(Status{Filter: question.NewFilter("TECH"), AudioAvailable: true, Muted: true})
	reel.RenderFrame(screen)

	header := readRow(screen, l.HeaderY)
	if !strings.Contains(header, "[MUTED]") {
		t.Errorf("Header = %q, want mute indicator", header)
	}
	x := findCol(screen, l.HeaderY, "3:TECH")
	if x < 0 {
		t.Fatalf("Header = %q, want TECH segment", header)
	}
	_, _, style, _ := screen.GetContent(x, l.HeaderY)
	if fg, _, _ := style.Decompose(); fg != RgbCategoryOn {
		t.Errorf("Selected category fg = %v, want %v", fg, RgbCategoryOn)
	}
	x = findCol(screen, l.HeaderY, "1:ALL")
	_, _, style, _ = screen.GetContent(x, l.HeaderY)
	if fg, _, _ := style.Decompose(); fg != RgbCategoryOff {
		t.Errorf("Unselected category fg = %v, want %v", fg, RgbCategoryOff)
	}

	reel.SetStatus(Status{Filter: question.NewFilter()})
	reel.RenderFrame(screen)
	if !strings.Contains(readRow(screen, l.HeaderY), "[NO AUDIO]") {
		t.Errorf("Header = %q, want no-audio indicator", readRow(screen, l.HeaderY))
	}
}

// TestReelTitleCursorBlinks verifies the title cursor toggles every blink interval
func TestReelTitleCursorBlinks(t *testing.T) {
	screen := newTestScreen(t)
	reel, clock := newTestReel()
	l := ComputeLayout(80, 24)

	reel.RenderFrame(screen)
	if !strings.Contains(readRow(screen, l.TitleY), "ENGINE_") {
		t.Errorf("Title = %q, want cursor", readRow(screen, l.TitleY))
	}

	clock.Advance(500 * time.Millisecond)
	reel.RenderFrame(screen)
	if strings.Contains(readRow(screen, l.TitleY), "ENGINE_") {
		t.Errorf("Title = %q, want cursor hidden", readRow(screen, l.TitleY))
	}
}
