package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/skyraid/common"
	"github.com/milk9111/skyraid/ecs/component"
	"github.com/milk9111/skyraid/scene"
	"golang.org/x/image/colornames"
)

var (
	skinColors = [...]color.RGBA{
		1: colornames.Deepskyblue,
		2: colornames.Limegreen,
		3: colornames.Gold,
	}

	enemyColors = [...]color.RGBA{
		component.EnemyBasic:   colornames.Orangered,
		component.EnemyHazard:  colornames.Sienna,
		component.EnemyFighter: colornames.Mediumpurple,
		component.EnemyBoss:    colornames.Magenta,
	}

	backgroundColor = color.RGBA{R: 0x08, G: 0x08, B: 0x18, A: 0xff}
)

func drawSnapshot(screen *ebiten.Image, snap *scene.Snapshot, shake int) {
	screen.Fill(backgroundColor)

	var ox, oy float32
	if shake > 0 {
		ox = float32(math.Sin(float64(snap.Frame))) * float32(shake) / 3
		oy = float32(math.Cos(float64(snap.Frame)*1.3)) * float32(shake) / 3
	}

	for _, e := range snap.Effects {
		o := colornames.Orange
		c := color.NRGBA{R: o.R, G: o.G, B: o.B, A: uint8(255 * e.Fade)}
		vector.StrokeCircle(screen, float32(e.X)+ox, float32(e.Y)+oy, float32(e.Radius), 3, c, true)
	}

	for _, e := range snap.Enemies {
		fillRect(screen, e.Box, ox, oy, enemyColors[e.Kind])
		if e.Kind == component.EnemyBoss {
			bar := common.Rect{X: e.Box.X, Y: e.Box.Y - 10, Width: e.Box.Width, Height: 5}
			fillRect(screen, bar, ox, oy, colornames.Red)
			bar.Width *= e.HPRatio
			fillRect(screen, bar, ox, oy, colornames.Lime)
		}
	}

	for _, b := range snap.PlayerBullets {
		if b.Kind.Heavy() {
			pulse := 1 + 0.15*math.Sin(float64(snap.Frame)/3)
			vector.DrawFilledCircle(screen, float32(b.Box.CenterX())+ox, float32(b.Box.CenterY())+oy, float32(b.Box.Width/2*pulse), colornames.Cyan, true)
			continue
		}
		fillRect(screen, b.Box, ox, oy, colornames.Yellow)
	}
	for _, b := range snap.EnemyBullets {
		if b.Kind == component.BulletBossScatter {
			vector.DrawFilledCircle(screen, float32(b.Box.CenterX())+ox, float32(b.Box.CenterY())+oy, float32(b.Box.Width/2), colornames.Hotpink, true)
			continue
		}
		fillRect(screen, b.Box, ox, oy, colornames.Red)
	}

	p := snap.Player
	if p.Visible && p.HP > 0 {
		fillRect(screen, p.Box, ox, oy, skinColors[p.Skin])
	}
}

func fillRect(screen *ebiten.Image, r common.Rect, ox, oy float32, c color.Color) {
	vector.DrawFilledRect(screen, float32(r.X)+ox, float32(r.Y)+oy, float32(r.Width), float32(r.Height), c, false)
}

func drawHUD(screen *ebiten.Image, snap *scene.Snapshot) {
	fire := "manual"
	if snap.Player.AutoFire {
		fire = "auto"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  Level: %d  Kills: %d", snap.Score, snap.Level, snap.KillsThisLevel), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP: %d/%d  Weapon: %s (%s)", snap.Player.HP, snap.Player.MaxHP, snap.Player.Weapon, fire), 10, 26)
	if boss, ok := snap.Boss(); ok {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("BOSS HP: %d", boss.HP), common.ScreenWidth-110, 10)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()), 10, common.ScreenHeight-20)
}
