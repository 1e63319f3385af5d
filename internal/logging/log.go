//
// FrankyGo - UCI chess engine in GO for learning purposes
//

// Package logging is a thin helper over "github.com/op/go-logging" that
// gives each concern (general engine log, search log, UCI protocol
// transcript) its own preconfigured Logger. It intentionally has no
// dependency on the config package: config depends on logging (to log
// its own loading), so the level is set lazily via SetLevel once
// settings are available instead of read from config at Logger-creation
// time.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"
)

var standardFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-10.10s}:%{shortfile:-16.16s} %{level:-7.7s}: %{message}`)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger
	uciLog      *logging.Logger
)

func init() {
	standardLog = logging.MustGetLogger("engine")
	searchLog = logging.MustGetLogger("search")
	uciLog = logging.MustGetLogger("uci")

	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix), standardFormat)
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(logging.INFO, "")
	standardLog.SetBackend(leveled)
	searchLog.SetBackend(leveled)
	uciLog.SetBackend(leveled)
}

// GetLog returns the general-purpose engine logger.
func GetLog() *logging.Logger { return standardLog }

// GetSearchLog returns the logger used by the search driver for
// per-iteration and statistics output.
func GetSearchLog() *logging.Logger { return searchLog }

// GetUciLog returns the logger used to transcript UCI protocol traffic.
func GetUciLog() *logging.Logger { return uciLog }

// SetLevel applies levelName (one of go-logging's level names, e.g.
// "DEBUG", "INFO", "WARNING") to every logger this package manages.
// Called once by config.Load after settings are parsed; an unrecognised
// name is ignored and the previous level stays in effect.
func SetLevel(levelName string) {
	level, err := logging.LogLevel(levelName)
	if err != nil {
		standardLog.Warningf("logging: unknown level %q, keeping current level", levelName)
		return
	}
	logging.SetLevel(level, "")
}

// AddFileBackend attaches path as a second, file-based backend for the
// UCI transcript logger, on top of its existing stdout backend.
func AddFileBackend(path string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return err
	}
	uciFormat := logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
	stdoutBackend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix), uciFormat)
	fileBackend := logging.NewBackendFormatter(logging.NewLogBackend(f, "", log.Lmsgprefix), uciFormat)
	multi := logging.SetBackend(
		logging.AddModuleLevel(stdoutBackend),
		logging.AddModuleLevel(fileBackend),
	)
	uciLog.SetBackend(multi)
	return nil
}
