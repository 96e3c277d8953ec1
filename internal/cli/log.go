// Package cli implements the sbgnconv command-line interface.
//
// The commands convert SBGN-ML documents between schema generations,
// summarize and preview maps, serve the same operations over HTTP, and
// manage the local result cache. The CLI is built using cobra and logs
// through charmbracelet/log.
//
// # Commands
//
//   - convert: Rewrite a document as SBGN-ML 0.2 or 0.3
//   - check: Detect the generation of one or more documents
//   - inspect: Summarize a map as text, JSON, YAML or MessagePack
//   - preview: Draw a map as DOT, SVG, PDF or PNG
//   - serve: Run the HTTP conversion service
//   - cache: Manage the result cache
//
// # Configuration
//
// Defaults are read from ~/.config/sbgnconv/config.toml (or --config).
// Flags given on the command line take precedence.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Log lines
// about a single document carry its file name in the "input" field.
package cli

import (
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger that stamps lines with a wall-clock time such
// as "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// inputLogger scopes l to one input document. Standard input is logged as "-".
func inputLogger(l *log.Logger, input string) *log.Logger {
	if input != "-" {
		input = filepath.Base(input)
	}
	return l.With("input", input)
}

// progress measures one command run.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the time elapsed since newProgress, rounded to
// milliseconds: "Converted map.sbgn from sbgnml-0.2 to sbgnml-0.3 (12ms)".
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Info(msg+" ("+time.Since(p.start).Round(time.Millisecond).String()+")", keyvals...)
}
