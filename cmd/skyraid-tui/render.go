package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/skyraid/common"
	"github.com/milk9111/skyraid/ecs/component"
	"github.com/milk9111/skyraid/scene"
)

var (
	skinStyles = [...]tcell.Style{
		1: tcell.StyleDefault.Foreground(tcell.ColorDeepSkyBlue),
		2: tcell.StyleDefault.Foreground(tcell.ColorLimeGreen),
		3: tcell.StyleDefault.Foreground(tcell.ColorGold),
	}

	enemyGlyphs = [...]struct {
		r     rune
		style tcell.Style
	}{
		component.EnemyBasic:   {'W', tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)},
		component.EnemyHazard:  {'@', tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)},
		component.EnemyFighter: {'V', tcell.StyleDefault.Foreground(tcell.ColorMediumPurple)},
		component.EnemyBoss:    {'#', tcell.StyleDefault.Foreground(tcell.ColorFuchsia)},
	}

	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// viewport maps playfield units onto terminal cells, leaving the top two
// rows for the HUD.
type viewport struct {
	cols, rows int
}

func (v viewport) cell(x, y float64) (int, int) {
	cx := int(x / common.ScreenWidth * float64(v.cols))
	cy := int(y/common.ScreenHeight*float64(v.rows)) + 2
	return cx, cy
}

func (v viewport) fill(s tcell.Screen, r common.Rect, ch rune, style tcell.Style) {
	x0, y0 := v.cell(r.X, r.Y)
	x1, y1 := v.cell(r.Right(), r.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for y := y0; y < y1; y++ {
		if y < 2 || y >= v.rows+2 {
			continue
		}
		for x := x0; x < x1; x++ {
			if x < 0 || x >= v.cols {
				continue
			}
			s.SetContent(x, y, ch, nil, style)
		}
	}
}

func (v viewport) point(s tcell.Screen, x, y float64, ch rune, style tcell.Style) {
	cx, cy := v.cell(x, y)
	if cx < 0 || cx >= v.cols || cy < 2 || cy >= v.rows+2 {
		return
	}
	s.SetContent(cx, cy, ch, nil, style)
}

func draw(s tcell.Screen, snap *scene.Snapshot) {
	s.Clear()
	w, h := s.Size()
	v := viewport{cols: w, rows: h - 3}
	if v.cols <= 0 || v.rows <= 0 {
		s.Show()
		return
	}

	for _, e := range snap.Effects {
		v.point(s, e.X, e.Y, '*', tcell.StyleDefault.Foreground(tcell.ColorOrange))
	}
	for _, e := range snap.Enemies {
		g := enemyGlyphs[e.Kind]
		v.fill(s, e.Box, g.r, g.style)
	}
	for _, b := range snap.PlayerBullets {
		ch := '|'
		if b.Kind.Heavy() {
			ch = 'o'
		}
		v.point(s, b.Box.CenterX(), b.Box.CenterY(), ch, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
	for _, b := range snap.EnemyBullets {
		v.point(s, b.Box.CenterX(), b.Box.CenterY(), '.', tcell.StyleDefault.Foreground(tcell.ColorRed))
	}
	if p := snap.Player; p.Visible && p.HP > 0 {
		v.fill(s, p.Box, 'A', skinStyles[p.Skin])
	}

	fire := "manual"
	if snap.Player.AutoFire {
		fire = "auto"
	}
	drawText(s, 0, 0, hudStyle, fmt.Sprintf("Score %d  Level %d  Kills %d  HP %d/%d  %s (%s)",
		snap.Score, snap.Level, snap.KillsThisLevel, snap.Player.HP, snap.Player.MaxHP, snap.Player.Weapon, fire))
	if boss, ok := snap.Boss(); ok {
		drawText(s, 0, 1, hudStyle, fmt.Sprintf("BOSS %d", boss.HP))
	}
	for x := 0; x < w; x++ {
		s.SetContent(x, h-1, '-', nil, borderStyle)
	}

	switch {
	case snap.PlayerDefeated:
		drawCentered(s, w, h, "GAME OVER  -  q to quit")
	case snap.Complete:
		drawCentered(s, w, h, "VICTORY!  -  q to quit")
	case snap.Paused:
		drawCentered(s, w, h, "PAUSED  -  p to resume")
	}
	s.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func drawCentered(s tcell.Screen, w, h int, text string) {
	drawText(s, (w-len(text))/2, h/2, hudStyle.Reverse(true), text)
}
