package parameter

import "github.com/juwon-cha/TycoonPlayableAD/core"

// MaxLevel is the highest office level, indexes DeskLayout
const MaxLevel = 3

// Office geometry in world units
const (
	OfficeWidth  = 350.0
	OfficeHeight = 350.0
	OfficeGap    = 70.0
	DeskWidth    = 60.0
	DeskHeight   = 40.0
	DeskGapX     = 80.0
	DeskGapY     = 60.0
)

// OfficeOrigins places up to four offices in quadrants around the waiting line
var OfficeOrigins = [MaxOfficeCount]core.Vec2{
	{X: -(OfficeWidth/2 + OfficeGap), Y: -(OfficeHeight/2 + OfficeGap)},
	{X: OfficeWidth/2 + OfficeGap, Y: -(OfficeHeight/2 + OfficeGap)},
	{X: -(OfficeWidth/2 + OfficeGap), Y: OfficeHeight/2 + OfficeGap},
	{X: OfficeWidth/2 + OfficeGap, Y: OfficeHeight/2 + OfficeGap},
}

// DeskLayout lists the desk offsets each level adds, relative to the office origin
// Level n owns the union of rows 0..n: 1, 3, 6, 9 desks
var DeskLayout = [MaxLevel + 1][]core.Vec2{
	{{X: 0, Y: 0}},
	{{X: -DeskGapX, Y: 0}, {X: DeskGapX, Y: 0}},
	{{X: 0, Y: DeskGapY}, {X: -DeskGapX, Y: DeskGapY}, {X: DeskGapX, Y: DeskGapY}},
	{{X: 0, Y: -DeskGapY}, {X: -DeskGapX, Y: -DeskGapY}, {X: DeskGapX, Y: -DeskGapY}},
}

// DeskCount returns the cumulative desk count at level, clamped into [0, MaxLevel]
func DeskCount(level int) int {
	if level < 0 {
		level = 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	n := 0
	for i := 0; i <= level; i++ {
		n += len(DeskLayout[i])
	}
	return n
}

// DeskOffsets returns the ordered desk offsets for a level
func DeskOffsets(level int) []core.Vec2 {
	offsets := make([]core.Vec2, 0, DeskCount(level))
	for i := 0; i <= level && i <= MaxLevel; i++ {
		offsets = append(offsets, DeskLayout[i]...)
	}
	return offsets
}

// Waiting line and exit in world units
var (
	QueueOrigin = core.Vec2{X: 0, Y: 0}
	ExitPoint   = core.Vec2{X: 0, Y: -900}
)

const (
	QueueSpacing = 50.0

	// IndicatorOffsetY lifts the progress indicator above its desk
	IndicatorOffsetY = 50.0
)
