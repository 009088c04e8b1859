package tui

import (
	"fmt"
	"math"

	"github.com/automoto/tacdrill/assets"
	cfg "github.com/automoto/tacdrill/config"
	"github.com/automoto/tacdrill/systems"
	"github.com/gdamore/tcell/v2"
)

var (
	styleDefault  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorOlive)
	styleCross    = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleFalling  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePanel    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkOliveGreen)
	styleChosen   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorDarkOliveGreen)
	styleGood     = tcell.StyleDefault.Foreground(tcell.ColorLightGreen)
	styleBad      = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

var patternStyles = map[cfg.Pattern]tcell.Style{
	cfg.PatternPatrol:  tcell.StyleDefault.Foreground(tcell.ColorDarkKhaki),
	cfg.PatternCover:   tcell.StyleDefault.Foreground(tcell.ColorTan),
	cfg.PatternAdvance: tcell.StyleDefault.Foreground(tcell.ColorOrange),
	cfg.PatternStrafe:  tcell.StyleDefault.Foreground(tcell.ColorSandyBrown),
}

var particleRunes = map[cfg.EffectKind]rune{
	cfg.EffectProjectile:    '•',
	cfg.EffectSpark:         '*',
	cfg.EffectBlood:         ',',
	cfg.EffectPlayerDamage:  '!',
	cfg.EffectFallingMarker: 'v',
	cfg.EffectHitRing:       'o',
	cfg.EffectDeathRing:     'O',
}

// Renderer draws FrameViews onto a terminal. The whole terminal stands for
// the scene, so one cell covers Width/cols by Height/rows scene units.
type Renderer struct {
	screen tcell.Screen
	level  *assets.Level
	index  int
	count  int
	prompt *Prompt
}

func NewRenderer(screen tcell.Screen, level *assets.Level, index, count int, prompt *Prompt) *Renderer {
	return &Renderer{
		screen: screen,
		level:  level,
		index:  index,
		count:  count,
		prompt: prompt,
	}
}

// Render is installed as the scheduler's render pass
func (r *Renderer) Render(v systems.FrameView) {
	r.screen.Clear()
	if !v.Ready {
		r.screen.Show()
		return
	}

	cols, rows := r.screen.Size()
	toCell := func(x, y float64) (int, int) {
		return int(x * float64(cols) / float64(cfg.C.Width)), int(y * float64(rows) / float64(cfg.C.Height))
	}

	for _, e := range v.Entities {
		if e.Slot == cfg.SlotGone {
			continue
		}
		y := e.Y
		style, fill := patternStyles[e.Pattern], '█'
		if e.Fall != nil {
			y += e.Fall.OffsetY
			style, fill = styleFalling, '▒'
		} else if e.Selected {
			style = styleSelected
		}
		x0, y0 := toCell(e.X, y)
		x1, y1 := toCell(e.X+e.W, y+e.H)
		r.fill(x0, y0, max(x1, x0+1), max(y1, y0+1), fill, style)
	}

	for _, p := range v.Particles {
		if p.Alpha <= 0 {
			continue
		}
		x, y := toCell(p.X, p.Y)
		r.screen.SetContent(x, y, particleRunes[p.Kind], nil, styleDefault)
	}

	if v.MuzzleActive {
		x, y := toCell(v.MuzzleX, v.MuzzleY)
		r.screen.SetContent(x, y, '✶', nil, styleSelected)
	}

	cx, cy := toCell(v.AimX, v.AimY)
	r.screen.SetContent(cx, cy, '+', nil, styleCross)

	r.drawHUD(v, cols)
	r.drawNotice(v, cols)
	if v.Question != nil && r.prompt.IsOpen() {
		r.drawPrompt(v, cols, rows)
	}

	r.screen.Show()
}

func (r *Renderer) drawHUD(v systems.FrameView, cols int) {
	r.fill(0, 0, cols, 1, ' ', styleHUD)
	status := fmt.Sprintf(" SCORE %d  HEALTH %d/%d  TARGETS %d  LEVEL %d/%d %s",
		v.Score, v.Health, v.MaxHealth, v.Live, r.index+1, r.count, r.level.Name)
	r.text(0, 0, status, styleHUD)
}

func (r *Renderer) drawNotice(v systems.FrameView, cols int) {
	if v.Notice == "" || v.NoticeAge >= cfg.HUD.NoticeDuration {
		return
	}
	style := styleBad
	if v.NoticeGood {
		style = styleGood
	}
	r.text((cols-len(v.Notice))/2, 2, v.Notice, style)
}

func (r *Renderer) drawPrompt(v systems.FrameView, cols, rows int) {
	q := v.Question
	lines := []string{"TARGET ENGAGED", q.Text, ""}
	for i, option := range q.Options {
		mark := " "
		if i == r.prompt.Chosen() {
			mark = "x"
		}
		lines = append(lines, fmt.Sprintf("[%s] %d. %s", mark, i+1, option))
	}
	lines = append(lines, "", "1-4: Choose   Enter: Confirm   Esc: Cancel")

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width = min(width+4, cols)
	top := max(rows-len(lines)-2, 1)
	left := max((cols-width)/2, 0)

	r.fill(left, top, left+width, top+len(lines)+1, ' ', stylePanel)
	for i, l := range lines {
		style := stylePanel
		if opt := i - 3; opt >= 0 && opt < len(q.Options) && opt == r.prompt.Chosen() {
			style = styleChosen
		}
		r.text(left+2, top+1+i, l, style)
	}
}

func (r *Renderer) fill(x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// cellToScene maps the centre of a terminal cell onto the scene
func cellToScene(col, row, cols, rows int) (float64, float64) {
	x, y := systems.DisplayToScene(float64(col)+0.5, float64(row)+0.5, float64(cols), float64(rows))
	return math.Min(x, float64(cfg.C.Width)), math.Min(y, float64(cfg.C.Height))
}
