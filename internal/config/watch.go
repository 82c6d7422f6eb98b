package config

import (
	"time"

	"github.com/agilira/argus"
)

// DefaultPollInterval is how often the watched file is checked.
const DefaultPollInterval = time.Second

// Watcher reloads a configuration file when it changes.
type Watcher struct {
	watcher *argus.Watcher
}

// Watch starts polling path. onChange receives every successfully loaded and
// validated configuration; onError receives load or validation failures.
// Deleting the file is reported to neither.
func Watch(path string, interval time.Duration, onChange func(Config), onError func(error)) (*Watcher, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if onError == nil {
		onError = func(error) {}
	}

	w := argus.New(argus.Config{
		PollInterval:         interval,
		MaxWatchedFiles:      1,
		OptimizationStrategy: argus.OptimizationSingleEvent,
		ErrorHandler: func(err error, filepath string) {
			onError(err)
		},
	})

	handler := func(event argus.ChangeEvent) {
		if event.IsDelete {
			return
		}
		cfg, err := Load(event.Path)
		if err != nil {
			onError(err)
			return
		}
		onChange(cfg)
	}

	if err := w.Watch(path, handler); err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		return nil, err
	}
	return &Watcher{watcher: w}, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Stop()
}
