// Package config holds globally available engine configuration, set by
// defaults and overridden by a TOML settings file. Command-line flags do
// not write into Settings.
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/Alex7342/BitboatdChessEngine/internal/elog"
)

var log = elog.Get("config")

// SearchConfig controls search-time tunables.
type SearchConfig struct {
	TtSizeMB           int `toml:"tt_size_mb"`
	MaxDepth           int `toml:"max_depth"`
	NullMoveThreshold  int `toml:"null_move_threshold"`
	NullMoveReduction  int `toml:"null_move_reduction"`
	MoveOverheadMillis int `toml:"move_overhead_millis"`
	UseNullMove        bool `toml:"use_null_move"`
}

// LogConfig holds the log level read from the settings file. Nothing
// applies it to the shared logger; the running level comes from the
// -loglvl flag.
type LogConfig struct {
	Level string `toml:"level"`
}

// Config is the full set of settings loaded from file and flags.
type Config struct {
	Search SearchConfig `toml:"search"`
	Log    LogConfig    `toml:"log"`
}

// Settings is the process-wide configuration, ready to use even if no
// config file is ever loaded.
var Settings = Config{
	Search: SearchConfig{
		TtSizeMB:           128,
		MaxDepth:           64,
		NullMoveThreshold:  4,
		NullMoveReduction:  3,
		MoveOverheadMillis: 30,
		UseNullMove:        true,
	},
	Log: LogConfig{Level: "info"},
}

// LoadFile overlays settings from a TOML file onto the current defaults.
// A missing or unparsable file is not fatal: it is logged and the
// defaults (or whatever was already loaded) stand.
func LoadFile(path string) {
	if path == "" {
		return
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Noticef("config file %q not used: %v (falling back to current defaults)", path, err)
	}
}
