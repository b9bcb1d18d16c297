package main

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "kanadrop.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes log output to logs/kanadrop.log when debug is set.
// Anything written to the terminal would corrupt the game screen, so
// without debug all output is discarded. The caller closes the file.
func setupLogging(log *logrus.Logger, debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		stdlog.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		stdlog.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("kanadrop_%s.log", time.Now().Format("20060102_150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		stdlog.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	stdlog.SetOutput(f)
	log.WithField("pid", os.Getpid()).Info("logging started")
	return f
}
