// Package errlog appends timestamped error lines to a text file for
// postmortem diagnosis. The game never reads it back.
package errlog

import (
	"io"
	"log"
	"os"
)

const flags = log.LstdFlags | log.Lmicroseconds

type Log struct {
	*log.Logger
	c io.Closer
}

// Open appends to path, creating it if needed.
func Open(path string) (*Log, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &Log{Logger: log.New(f, "", flags), c: f}, nil
}

// Stderr is the fallback when the log file cannot be opened.
func Stderr() *Log {
	return &Log{Logger: log.New(os.Stderr, "", flags)}
}

func (l *Log) Close() error {
	if l.c == nil {
		return nil
	}
	return l.c.Close()
}
