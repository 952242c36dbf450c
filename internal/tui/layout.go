package tui

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Center returns the coordinates of the rect's center point.
func (r Rect) Center() (x, y int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Layout holds the computed panel geometry for a given terminal size.
type Layout struct {
	Header, Footer Rect
	Files, Help    Rect
	Log, Preview   Rect
	TooSmall       bool // true when the terminal is below the configured minimum
}

// Calculate computes the panel layout for a terminal of the given dimensions.
// Returns a Layout with TooSmall=true if the terminal is below minW×minH.
//
// Geometry:
//   - Header: full width, 1 row at top
//   - Footer: full width, 1 row at bottom
//   - Left column: 30% of width, clamped to [24, 40]
//   - Files: left column × 60% of body height (top)
//   - Help: left column × remaining body height (bottom)
//   - Log: remaining width × 60% of body height (top-right)
//   - Preview: remaining width × remaining body height (bottom-right)
func Calculate(width, height, minW, minH int) Layout {
	if width < minW || height < minH {
		return Layout{TooSmall: true}
	}

	bodyH := height - 2 // subtract header + footer rows

	leftW := width * 30 / 100
	if leftW < 24 {
		leftW = 24
	}
	if leftW > 40 {
		leftW = 40
	}
	rightW := width - leftW

	filesH := bodyH * 60 / 100
	helpH := bodyH - filesH

	logH := bodyH * 60 / 100
	previewH := bodyH - logH

	return Layout{
		Header:  Rect{X: 0, Y: 0, Width: width, Height: 1},
		Footer:  Rect{X: 0, Y: height - 1, Width: width, Height: 1},
		Files:   Rect{X: 0, Y: 1, Width: leftW, Height: filesH},
		Help:    Rect{X: 0, Y: 1 + filesH, Width: leftW, Height: helpH},
		Log:     Rect{X: leftW, Y: 1, Width: rightW, Height: logH},
		Preview: Rect{X: leftW, Y: 1 + logH, Width: rightW, Height: previewH},
	}
}

// PanelRect returns the rect for the given focus target.
func (l Layout) PanelRect(f FocusTarget) Rect {
	switch f {
	case FocusFiles:
		return l.Files
	case FocusHelp:
		return l.Help
	case FocusLog:
		return l.Log
	default:
		return l.Preview
	}
}
