// Package logwriter wraps a io.Writer for dpp logging.
package logwriter // import "github.com/zixu-w/DPP/logwriter"

import (
	"bufio"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/pingcap/errors"
)

// Writer is a log writer and its configurations.
type Writer struct {
	io.Writer

	LogFile       string
	EnableLogging bool
	EnableColour  bool
	Cleanup       func()
}

// NewFile creates a new file writer. An empty logfile means stdout.
func NewFile(logfile string, enableLogging, enableColour bool) *Writer {
	return &Writer{
		LogFile:       logfile,
		EnableLogging: enableLogging,
		EnableColour:  enableColour,
	}
}

// New creates a new log writer.
func New(w io.Writer, enableLogging, enableColour bool) *Writer {
	return &Writer{
		Writer:        w,
		EnableLogging: enableLogging,
		EnableColour:  enableColour,
	}
}

// Create initialises a new writer.
func (w *Writer) Create() error {
	if !w.EnableColour {
		color.NoColor = true
	}
	w.Cleanup = func() {}
	if !w.EnableLogging {
		w.Writer = io.Discard
		return nil
	}
	if w.Writer != nil {
		return nil
	}
	if w.LogFile == "" {
		w.Writer = os.Stdout
		return nil
	}
	f, err := os.Create(w.LogFile)
	if err != nil {
		return errors.Annotate(err, "failed to create log file")
	}
	bufWriter := bufio.NewWriter(f)
	w.Writer = bufWriter
	w.Cleanup = func() {
		if err := bufWriter.Flush(); err != nil {
			log.Printf("flush: %s", err)
		}
		if err := f.Close(); err != nil {
			log.Printf("close: %s", err)
		}
	}
	return nil
}

// Logger returns a logger on w with the given prefix.
func (w *Writer) Logger(prefix string) *log.Logger {
	return log.New(w, prefix, log.LstdFlags)
}
