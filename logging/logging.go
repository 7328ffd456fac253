// Package logging routes debug records to a rotating file.
// stdout and stderr carry the animation, so nothing is ever logged there.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	LogDir      = "logs"
	LogFileName = "tomatrix.log"
	MaxLogSize  = 10 * 1024 * 1024 // Rotate once the file grows past 10MB

	// EnvDebug enables the debug log when set to a true value
	EnvDebug = "TOMATRIX_DEBUG"
)

// DebugFromEnv reports whether EnvDebug parses as true
func DebugFromEnv() bool {
	v, err := strconv.ParseBool(os.Getenv(EnvDebug))
	return err == nil && v
}

// Setup installs the global logger
// With debug off every record is discarded and the returned file is nil
func Setup(debug bool) (*os.File, error) {
	if !debug {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		log.Logger = zerolog.Nop()
		return nil, nil
	}

	if err := os.MkdirAll(LogDir, 0755); err != nil {
		return nil, errors.Wrap(err, "create log directory")
	}

	logPath := filepath.Join(LogDir, LogFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > MaxLogSize {
		rotated := filepath.Join(LogDir, fmt.Sprintf("tomatrix-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			return nil, errors.Wrap(err, "rotate log file")
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open log file")
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = zerolog.New(f).With().Timestamp().Logger()
	return f, nil
}
