package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "coilhop.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns the session logger
// With debug off every record is discarded; with debug on records go to logs/coilhop.log,
// rotating the previous file aside once it grows past maxLogSize. stdout and stderr belong to the screen.
func setupLogging(debug bool, level slog.Level) (*slog.Logger, *os.File) {
	if !debug {
		return slog.New(slog.DiscardHandler), nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return slog.New(slog.DiscardHandler), nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("coilhop-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return slog.New(slog.DiscardHandler), nil
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f
}
