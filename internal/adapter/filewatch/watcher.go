package filewatch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
)

const DefaultDebounce = 500 * time.Millisecond

// Watcher calls reload after the watched file is written or recreated.
// Bursts of events inside the debounce window trigger one reload.
type Watcher struct {
	path     string
	debounce time.Duration
	reload   func(path string) error
	logger   ports.LoggerPort
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	stopCh   chan struct{}
	stopOnce sync.Once
}

// New watches the file's directory so that editors replacing the file are seen.
func New(path string, debounce time.Duration, reload func(path string) error, logger ports.LoggerPort) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}

	fw := &Watcher{
		path:     abs,
		debounce: debounce,
		reload:   reload,
		logger:   logger,
		watcher:  w,
		stopCh:   make(chan struct{}),
	}

	go fw.run()
	return fw, nil
}

func (fw *Watcher) run() {
	var debounce *time.Timer
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(fw.debounce, fw.fire)
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("File watcher error", map[string]interface{}{
				"error": err.Error(),
				"path":  fw.path,
			})
		case <-fw.stopCh:
			if debounce != nil {
				debounce.Stop()
			}
			return
		}
	}
}

func (fw *Watcher) fire() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	select {
	case <-fw.stopCh:
		return
	default:
	}

	if err := fw.reload(fw.path); err != nil {
		fw.logger.Error("Hot reload failed", map[string]interface{}{
			"error": err.Error(),
			"path":  fw.path,
		})
		return
	}
	fw.logger.Info("File reloaded", map[string]interface{}{
		"path": fw.path,
	})
}

func (fw *Watcher) Stop() error {
	var err error
	fw.stopOnce.Do(func() {
		close(fw.stopCh)
		err = fw.watcher.Close()
	})
	return err
}
