package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/annaw245/Software/simulation"
	"github.com/annaw245/Software/vmath"
	"github.com/annaw245/Software/world"
)

// Glyphs
const (
	ballRune = 'o'
	lineRune = '·'
	goalRune = '#'
)

var (
	styleHeader   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleLine     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleGoal     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBall     = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleFriendly = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleGoalie   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// FieldView draws simulated frames onto a terminal screen.
// Row 0 is the header, the last row is the assignment list, the field fills
// the rows between with +x to the right and +y up
type FieldView struct {
	screen tcell.Screen
	field  world.Field
}

func NewFieldView(screen tcell.Screen, field world.Field) *FieldView {
	return &FieldView{screen: screen, field: field}
}

// Cell maps a field position to a screen cell, false when off screen
func (v *FieldView) Cell(p vmath.Vec2) (x, y int, ok bool) {
	w, h := v.screen.Size()
	rows := h - 3
	if w < 2 || rows < 1 {
		return 0, 0, false
	}
	b := v.field.FieldBoundary()
	sx := float64(w-1) / b.Width()
	sy := float64(rows) / b.Height()

	x = int(math.Round((p.X - b.Min.X) * sx))
	y = 1 + int(math.Round((b.Max.Y-p.Y)*sy))
	if x < 0 || x >= w || y < 1 || y > rows+1 {
		return 0, 0, false
	}
	return x, y, true
}

// Draw renders one frame and shows it
func (v *FieldView) Draw(f simulation.Frame) {
	v.screen.Clear()

	v.drawLines()
	v.drawTeam(f.World.Enemy, styleEnemy, styleEnemy)
	v.drawTeam(f.World.Friendly, styleFriendly, styleGoalie)
	v.set(f.World.Ball.Position, ballRune, styleBall)

	w := f.World
	header := fmt.Sprintf("tick %d  %.2fs  play %s  %s  possession %s",
		f.Tick, f.Time.Seconds(), f.Play, w.GameState.State(), w.Possession)
	v.text(0, 0, header, styleHeader)

	var parts []string
	for _, a := range f.Assignments {
		parts = append(parts, fmt.Sprintf("%d:%s", a.Robot, a.Tactic))
	}
	_, h := v.screen.Size()
	v.text(0, h-1, strings.Join(parts, " "), styleStatus)

	v.screen.Show()
}

func (v *FieldView) drawLines() {
	lines := v.field.FieldLines()
	v.segment(lines.NegXNegY(), lines.PosXNegY(), lineRune, styleLine)
	v.segment(lines.NegXPosY(), lines.PosXPosY(), lineRune, styleLine)
	v.segment(lines.NegXNegY(), lines.NegXPosY(), lineRune, styleLine)
	v.segment(lines.PosXNegY(), lines.PosXPosY(), lineRune, styleLine)
	v.segment(vmath.V2(0, lines.Min.Y), vmath.V2(0, lines.Max.Y), lineRune, styleLine)

	half := v.field.GoalWidth / 2
	for _, g := range []vmath.Vec2{v.field.FriendlyGoalCenter(), v.field.EnemyGoalCenter()} {
		v.segment(g.Add(vmath.V2(0, -half)), g.Add(vmath.V2(0, half)), goalRune, styleGoal)
	}
}

func (v *FieldView) drawTeam(t world.Team, style, goalie tcell.Style) {
	for _, r := range t.Robots {
		s := style
		if r.ID == t.GoalieID {
			s = goalie
		}
		v.set(r.Position, robotRune(r.ID), s)
	}
}

func robotRune(id world.RobotID) rune {
	if id >= 0 && id < 10 {
		return rune('0' + id)
	}
	return 'R'
}

// segment plots r along a-b, sampling twice per cell so no cell is skipped
func (v *FieldView) segment(a, b vmath.Vec2, r rune, style tcell.Style) {
	ax, ay, _ := v.Cell(a)
	bx, by, _ := v.Cell(b)
	steps := 2 * max(abs(bx-ax), abs(by-ay), 1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		v.set(a.Add(b.Sub(a).Scale(t)), r, style)
	}
}

func (v *FieldView) set(p vmath.Vec2, r rune, style tcell.Style) {
	if x, y, ok := v.Cell(p); ok {
		v.screen.SetContent(x, y, r, nil, style)
	}
}

func (v *FieldView) text(x, y int, s string, style tcell.Style) {
	w, _ := v.screen.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
