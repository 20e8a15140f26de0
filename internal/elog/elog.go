// Package elog wires every other package to a single shared
// github.com/op/go-logging backend: one formatted stderr backend, one
// named *logging.Logger per caller.
package elog

import (
	"os"
	"sync"

	"github.com/op/go-logging"
)

var (
	once    sync.Once
	backend logging.LeveledBackend
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfile} %{level:.4s} %{module}: %{message}`,
)

func setup() {
	raw := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(raw, format)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(logging.INFO, "")
	logging.SetBackend(backend)
}

// Get returns a named logger backed by the shared formatted backend.
func Get(name string) *logging.Logger {
	once.Do(setup)
	return logging.MustGetLogger(name)
}

// SetLevel adjusts the minimum level for every logger sharing the backend,
// e.g. when the command-line "-loglvl debug" flag is set.
func SetLevel(level logging.Level) {
	once.Do(setup)
	backend.SetLevel(level, "")
}
