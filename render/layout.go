package render

import "github.com/lixenwraith/pixel-spin/constants"

// Layout is the reel geometry for one terminal size
type Layout struct {
	Width, Height int

	HeaderY int
	TitleY  int

	BoxX, BoxY, BoxW, BoxH int
	InnerX, InnerY         int
	InnerW, InnerH         int

	ButtonY int
	HelpY   int
}

// layoutRows is the total height of the reel stack
const layoutRows = 1 + 1 + 1 + 1 + constants.ReelHeight + 1 + 1 + 1 + 1

// ComputeLayout centres the reel stack in a w x h terminal
func ComputeLayout(w, h int) Layout {
	boxW := w - 8
	if boxW < constants.ReelMinWidth {
		boxW = constants.ReelMinWidth
	}
	if boxW > constants.ReelMaxWidth {
		boxW = constants.ReelMaxWidth
	}
	if boxW > w {
		boxW = w
	}

	top := (h - layoutRows) / 2
	if top < 0 {
		top = 0
	}

	l := Layout{
		Width:   w,
		Height:  h,
		HeaderY: top,
		TitleY:  top + 2,
		BoxX:    (w - boxW) / 2,
		BoxY:    top + 4,
		BoxW:    boxW,
		BoxH:    constants.ReelHeight,
	}
	l.InnerX = l.BoxX + 1
	l.InnerY = l.BoxY + 1
	l.InnerW = l.BoxW - 2
	l.InnerH = l.BoxH - 2
	l.ButtonY = l.BoxY + l.BoxH + 1
	l.HelpY = l.ButtonY + 2
	return l
}

// MidRow returns the interior row the needles point at
func (l Layout) MidRow() int {
	return l.InnerY + l.InnerH/2
}
