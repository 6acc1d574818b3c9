package render

// Button identifies one of the three action buttons
type Button uint8

const (
	ButtonNone Button = iota
	ButtonWork
	ButtonUpgrade
	ButtonExpand
)

// Rect is a cell rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

const (
	buttonWidth  = 20
	buttonHeight = 3
	buttonGap    = 2
)

// ButtonRects lays out Work, Upgrade and Expand centered along the bottom edge
// Depends only on the screen size so the input goroutine can hit-test without touching the renderer
func ButtonRects(width, height int) [3]Rect {
	total := 3*buttonWidth + 2*buttonGap
	x := (width - total) / 2
	if x < 0 {
		x = 0
	}
	y := height - buttonHeight
	if y < 0 {
		y = 0
	}

	var rects [3]Rect
	for i := range rects {
		rects[i] = Rect{X: x + i*(buttonWidth+buttonGap), Y: y, W: buttonWidth, H: buttonHeight}
	}
	return rects
}

// ButtonAt returns the button under cell (x, y)
func ButtonAt(width, height, x, y int) Button {
	for i, r := range ButtonRects(width, height) {
		if r.Contains(x, y) {
			return Button(i + 1)
		}
	}
	return ButtonNone
}
