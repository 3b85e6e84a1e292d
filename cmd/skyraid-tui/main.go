// Command skyraid-tui plays skyraid in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/skyraid/prefabs"
	"github.com/milk9111/skyraid/scene"
)

func main() {
	skin := flag.Int("player", 1, "craft skin (1, 2 or 3)")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	tuningName := flag.String("tuning", prefabs.DefaultTuningFile, "tuning spec in prefabs/")
	watch := flag.Bool("watch", false, "reload tuning and boss script when they change on disk")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "", "write logs to this file (the terminal is busy drawing)")
	flag.Parse()

	logger := log.New(io.Discard, "", log.LstdFlags)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	tuning, err := prefabs.LoadTuning(*tuningName)
	if err != nil {
		log.Fatal(err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	s, err := scene.New(
		scene.WithRand(rand.New(rand.NewSource(*seed))),
		scene.WithTuning(tuning),
		scene.WithLogger(logger),
		scene.WithSkin(*skin),
		scene.WithAutoFire(true),
	)
	if err != nil {
		log.Fatal(err)
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			logger.Printf("skyraid-tui: hot reload disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	var sound *Sound
	if !*mute {
		sound, err = NewSound()
		if err != nil {
			// Non-fatal, the game runs without sound.
			logger.Printf("skyraid-tui: audio: %v", err)
		}
	}

	app := &App{
		screen:     screen,
		scene:      s,
		sound:      sound,
		watcher:    watcher,
		tuningName: *tuningName,
		held:       map[scene.Action]time.Time{},
	}
	score := app.Run()
	screen.Fini()
	fmt.Printf("final score: %d (seed %d)\n", score, *seed)
}
