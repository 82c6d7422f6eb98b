package cli

import (
	"os"

	"github.com/aretw0/textops/internal/config"
)

// WatchConfig applies every valid change of path to rt until the returned
// watcher is closed. Invalid files are logged and the previous settings stay.
// It returns nil, nil when path does not exist: there is nothing to watch.
func WatchConfig(rt *Runtime, path string) (*config.Watcher, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			rt.Logger.Debug("no configuration file to watch", "path", path)
			return nil, nil
		}
		return nil, err
	}

	w, err := config.Watch(path, config.DefaultPollInterval, rt.Apply, func(err error) {
		rt.Logger.Warn("configuration reload rejected", "path", path, "err", err)
	})
	if err != nil {
		return nil, err
	}
	rt.Logger.Info("watching configuration", "path", path)
	return w, nil
}
