// Package logx routes the standard logger to a rotating file. The terminal
// belongs to the UI, so nothing may be logged to stderr while it runs.
package logx

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the log file.
type Options struct {
	File       string
	MaxSizeMB  int
	MaxAgeDays int
}

// Setup points the standard logger at a lumberjack-rotated file and returns
// the writer so the caller can close it on exit.
func Setup(opts Options) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, err
	}
	w := &lumberjack.Logger{
		Filename: opts.File,
		MaxSize:  opts.MaxSizeMB,  // megabytes
		MaxAge:   opts.MaxAgeDays, // days
	}
	log.SetOutput(w)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	return w, nil
}
