//
// FrankyGo - UCI chess engine in GO for learning purposes
//

// Package config holds the engine's tunable settings, loaded from an
// optional TOML file at startup and otherwise filled with the defaults
// set by each sub-configuration's init().
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/kopparsynth/mailchess/internal/logging"
)

// configuration is the top-level settings tree. Settings is the package
// singleton every other package reads from; there is exactly one
// configuration per process.
type configuration struct {
	Search searchConfiguration
	Eval   evalConfiguration
	Log    logConfiguration
}

// Settings is the process-wide configuration instance.
var Settings configuration

var log = logging.GetLog()

// Load reads path as TOML and overlays it onto the current defaults.
// A missing file is not an error -- the engine runs fine on defaults
// alone -- but a malformed one is, so callers notice typos instead of
// silently running with unintended settings.
func Load(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Infof("config: %s not found, using defaults", path)
		return nil
	}
	_, err := toml.DecodeFile(path, &Settings)
	if err != nil {
		return err
	}
	log.Infof("config: loaded settings from %s", path)
	applyLogSettings()
	return nil
}

func applyLogSettings() {
	logging.SetLevel(Settings.Log.LogLevel)
	if Settings.Log.LogToFile {
		if err := logging.AddFileBackend(Settings.Log.LogFilePath); err != nil {
			log.Warningf("config: could not attach log file %s: %v", Settings.Log.LogFilePath, err)
		}
	}
}
