package config

import (
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// dynamicConfig is the subset of configuration that may change at runtime.
type dynamicConfig struct {
	LogLevel string `yaml:"logLevel"`
}

// LevelWatcher watches the config file and applies log level changes
// without a restart.
type LevelWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	level   zap.AtomicLevel
	logger  *zap.Logger
	stopCh  chan struct{}
}

// NewLevelWatcher starts watching path for log level changes. The watcher
// owns a goroutine until Stop is called.
func NewLevelWatcher(path string, level zap.AtomicLevel, logger *zap.Logger) (*LevelWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory too: editors and config maps replace files via
	// rename, which drops the watch on the file itself.
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		logger.Warn("Failed to watch config directory", zap.Error(err))
	}

	w := &LevelWatcher{
		path:    path,
		watcher: watcher,
		level:   level,
		logger:  logger,
		stopCh:  make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *LevelWatcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				w.reload()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Config watcher error", zap.Error(err))
		case <-w.stopCh:
			return
		}
	}
}

func (w *LevelWatcher) reload() {
	data, err := os.ReadFile(w.path)
	if err != nil {
		w.logger.Warn("Failed to reload config", zap.Error(err))
		return
	}

	var dyn dynamicConfig
	if err := yaml.Unmarshal(data, &dyn); err != nil {
		w.logger.Warn("Failed to parse config", zap.Error(err))
		return
	}
	if dyn.LogLevel == "" {
		return
	}

	var parsed zapcore.Level
	if err := parsed.UnmarshalText([]byte(dyn.LogLevel)); err != nil {
		w.logger.Warn("Invalid log level in config", zap.String("logLevel", dyn.LogLevel))
		return
	}

	if w.level.Level() != parsed {
		w.level.SetLevel(parsed)
		w.logger.Info("Log level changed", zap.String("logLevel", parsed.String()))
	}
}

// Stop ends the watch goroutine and releases the file watcher.
func (w *LevelWatcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
}
