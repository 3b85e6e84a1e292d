package main

import (
	"flag"
	"log"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/skyraid/common"
	"github.com/milk9111/skyraid/prefabs"
	"github.com/milk9111/skyraid/scene"
)

func main() {
	skin := flag.Int("player", 1, "craft skin (1, 2 or 3)")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	tuningName := flag.String("tuning", prefabs.DefaultTuningFile, "tuning spec in prefabs/")
	watch := flag.Bool("watch", false, "reload tuning and boss script when they change on disk")
	autoFire := flag.Bool("autofire", true, "start with auto-fire on")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	tuning, err := prefabs.LoadTuning(*tuningName)
	if err != nil {
		log.Fatal(err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("skyraid: seed %d", *seed)

	s, err := scene.New(
		scene.WithRand(rand.New(rand.NewSource(*seed))),
		scene.WithTuning(tuning),
		scene.WithLogger(log.Default()),
		scene.WithSkin(*skin),
		scene.WithAutoFire(*autoFire),
	)
	if err != nil {
		log.Fatal(err)
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("skyraid: hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(common.ScreenWidth, common.ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("skyraid")
	ebiten.SetTPS(common.TicksPerSecond)

	if err := ebiten.RunGame(NewGame(s, *tuningName, watcher)); err != nil {
		log.Fatal(err)
	}
}
