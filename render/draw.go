package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/juwon-cha/TycoonPlayableAD/component"
	"github.com/juwon-cha/TycoonPlayableAD/core"
	"github.com/juwon-cha/TycoonPlayableAD/parameter"
)

const (
	workerRune  = '@'
	deskRune    = '▭'
	barFull     = '█'
	barEmpty    = '░'
	barWidth    = 6
	debugWidth  = 34
	hudRowGold  = 0
	hudRowStats = 1
)

func (r *Renderer) base() tcell.Style {
	return tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
}

func (r *Renderer) fill(rect Rect, ch rune, style tcell.Style) {
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// drawText writes s starting at (x, y) and returns the column after the last cell
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}

func (r *Renderer) drawCentered(rect Rect, y int, s string, style tcell.Style) {
	x := rect.X + (rect.W-runewidth.StringWidth(s))/2
	r.drawText(x, y, s, style)
}

func (r *Renderer) drawBox(rect Rect, style tcell.Style) {
	if rect.W < 2 || rect.H < 2 {
		return
	}
	right, bottom := rect.X+rect.W-1, rect.Y+rect.H-1
	for x := rect.X + 1; x < right; x++ {
		r.screen.SetContent(x, rect.Y, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := rect.Y + 1; y < bottom; y++ {
		r.screen.SetContent(rect.X, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(rect.X, rect.Y, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(right, rect.Y, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(rect.X, bottom, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// worldRect projects a centered world-space box
func (r *Renderer) worldRect(center core.Vec2, w, h float64, width, height int) Rect {
	cw, ch := r.camera.Extent(w, h, width, height)
	x, y := r.camera.Project(center, width, height)
	return Rect{X: x - cw/2, Y: y - ch/2, W: max(cw, 1), H: max(ch, 1)}
}

func (r *Renderer) drawOffices(width, height int) {
	w := r.world
	for i := range w.OfficeOrder {
		_, oc, ok := w.Office(i)
		if !ok {
			continue
		}
		rect := r.worldRect(oc.Origin, parameter.OfficeWidth, parameter.OfficeHeight, width, height)

		if !oc.Unlocked {
			style := r.base().Foreground(RgbOfficeLocked)
			r.drawBox(rect, style)
			r.drawCentered(rect, rect.Y+rect.H/2, "LOCKED", style)
			continue
		}

		r.drawBox(rect, r.base().Foreground(RgbOfficeWall))
		r.drawText(rect.X+1, rect.Y, fmt.Sprintf(" Office %d  Lv.%d ", i+1, oc.Level+1), r.base().Foreground(RgbOfficeWall))

		for _, d := range oc.Desks {
			dc, ok := w.Desks.GetComponent(d)
			if !ok {
				continue
			}
			color := RgbDeskFree
			if dc.Occupied {
				color = RgbDeskOccupied
			}
			deskRect := r.worldRect(oc.Origin.Add(dc.Offset), parameter.DeskWidth, parameter.DeskHeight, width, height)
			r.fill(deskRect, deskRune, r.base().Foreground(color))
		}
	}
}

func (r *Renderer) drawQueue(width, height int) {
	q := r.world.Resources.Queue
	style := r.base().Foreground(RgbWorkerQueue)
	for i := 0; i < q.Len(); i++ {
		pos, ok := r.world.Positions.GetComponent(q.At(i))
		if !ok {
			continue
		}
		x, y := r.camera.Project(pos.Vec2, width, height)
		r.screen.SetContent(x, y, workerRune, nil, style)
	}
}

func (r *Renderer) drawWorkers(width, height int) {
	style := r.base().Foreground(RgbWorker)
	for _, e := range r.world.Workers.GetAllEntities() {
		worker, ok := r.world.Workers.GetComponent(e)
		if !ok || !worker.Working {
			continue
		}
		pos, ok := r.world.Positions.GetComponent(e)
		if !ok {
			continue
		}
		x, y := r.camera.Project(pos.Vec2, width, height)
		r.screen.SetContent(x, y, workerRune, nil, style)
	}
}

func (r *Renderer) drawIndicators(width, height int) {
	for _, e := range r.world.Indicators.GetAllEntities() {
		ind, ok := r.world.Indicators.GetComponent(e)
		if !ok || !ind.Visible {
			continue
		}
		pos, ok := r.world.Positions.GetComponent(e)
		if !ok {
			continue
		}
		x, y := r.camera.Project(pos.Vec2, width, height)
		r.drawBar(x-barWidth/2, y, ind)
	}
}

func (r *Renderer) drawBar(x, y int, ind component.IndicatorComponent) {
	filled := int(math.Round(ind.Progress * barWidth))
	for i := 0; i < barWidth; i++ {
		ch, color := barEmpty, RgbProgressEmpty
		if i < filled {
			ch, color = barFull, RgbProgressFill
		}
		r.screen.SetContent(x+i, y, ch, nil, r.base().Foreground(color))
	}
}

func (r *Renderer) drawHUD(width, height int) {
	w := r.world
	r.drawText(1, hudRowGold, fmt.Sprintf("Gold: %d", r.gold), r.base().Foreground(RgbGold).Bold(true))

	progress := w.Resources.Progress
	stats := fmt.Sprintf("Offices %d/%d  Level %d/%d  Working %d",
		progress.Unlocked, progress.MaxOffices, w.PrimaryLevel()+1, parameter.MaxLevel+1,
		w.Resources.Status.Counter("work.active").Load())
	r.drawText(1, hudRowStats, stats, r.base())
}

// ButtonLabel returns the caption for b given current prices and progression
func (r *Renderer) ButtonLabel(b Button) string {
	w := r.world
	switch b {
	case ButtonWork:
		return fmt.Sprintf("Work (%dG)", r.costs.Work)
	case ButtonUpgrade:
		if w.PrimaryLevel() >= parameter.MaxLevel {
			return "Max level"
		}
		return fmt.Sprintf("Upgrade (%dG)", r.costs.Upgrade)
	case ButtonExpand:
		if w.UnlockedCount() >= w.Resources.Progress.MaxOffices {
			return "Max expand"
		}
		return fmt.Sprintf("Expand (%dG)", r.costs.Expand)
	}
	return ""
}

func (r *Renderer) buttonEnabled(b Button) bool {
	w := r.world
	switch b {
	case ButtonWork:
		return r.gold >= r.costs.Work
	case ButtonUpgrade:
		return w.PrimaryLevel() < parameter.MaxLevel && r.gold >= r.costs.Upgrade
	case ButtonExpand:
		return w.UnlockedCount() < w.Resources.Progress.MaxOffices && r.gold >= r.costs.Expand
	}
	return false
}

func (r *Renderer) drawButtons(width, height int) {
	for i, rect := range ButtonRects(width, height) {
		b := Button(i + 1)
		bg, fg := RgbButton, RgbText
		if !r.buttonEnabled(b) {
			bg, fg = RgbButtonDisabled, RgbOfficeLocked
		}
		style := tcell.StyleDefault.Background(bg).Foreground(fg)
		r.fill(rect, ' ', style)
		r.drawBox(rect, style)
		r.drawCentered(rect, rect.Y+rect.H/2, r.ButtonLabel(b), style)
	}
}

func (r *Renderer) drawToast(width, height int) {
	if !r.toast.Visible() {
		return
	}
	text := r.toast.Text
	if scale := r.toast.Scale(); scale < 1 {
		n := int(math.Round(float64(len(text)) * math.Max(scale, 0)))
		text = text[:min(n, len(text))]
	} else if pad := int(math.Round((scale - 1) * float64(len(text)) / 2)); pad > 0 {
		text = strings.Repeat(" ", pad) + text + strings.Repeat(" ", pad)
	}
	color := Fade(RgbToast, RgbBackground, r.toast.Opacity())
	r.drawCentered(Rect{W: width}, height/3, text, r.base().Foreground(color).Bold(true))
}

func (r *Renderer) drawDebug(width, height int) {
	lines := r.world.Resources.Status.Lines()
	rect := Rect{X: max(width-debugWidth, 0), Y: 0, W: min(debugWidth, width), H: min(len(lines)+2, height)}
	style := tcell.StyleDefault.Background(RgbDebugPanel).Foreground(RgbText)
	r.fill(rect, ' ', style)
	r.drawBox(rect, style)
	for i, line := range lines {
		y := rect.Y + 1 + i
		if y >= rect.Y+rect.H-1 {
			break
		}
		if runewidth.StringWidth(line) > rect.W-2 {
			line = runewidth.Truncate(line, rect.W-2, "…")
		}
		r.drawText(rect.X+1, y, line, style)
	}
}
