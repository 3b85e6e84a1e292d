package scene

import (
	"path/filepath"

	"github.com/milk9111/skyraid/prefabs"
)

// PollReload applies tuning and boss script edits the watcher reported
// since the last call. Failed reloads are logged and the scene keeps its
// current tuning. It reports whether anything was applied.
func (s *Scene) PollReload(w *prefabs.Watcher, tuningName string) bool {
	changed, err := w.Poll()
	if err != nil {
		s.logger.Printf("scene: watch: %v", err)
	}

	applied := false
	for _, path := range changed {
		switch {
		case prefabs.IsSpecFile(path) && filepath.Base(path) == filepath.Base(tuningName):
			t, err := prefabs.LoadTuning(tuningName)
			if err != nil {
				s.logger.Printf("scene: reload %s: %v", path, err)
				continue
			}
			if err := s.ApplyTuning(t); err != nil {
				s.logger.Printf("scene: reload %s: %v", path, err)
				continue
			}
			applied = true
		case prefabs.IsScriptFile(path) && filepath.Base(path) == filepath.Base(s.scriptPath):
			if err := s.ReloadBossScript(); err != nil {
				s.logger.Printf("scene: reload %s: %v", path, err)
				continue
			}
			applied = true
		}
	}
	return applied
}
