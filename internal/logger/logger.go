package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

const DefaultLevel = "warn"

// New returns a logger writing to w at the named level. An empty level
// means DefaultLevel.
func New(w io.Writer, level string) (*log.Logger, error) {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "caixa",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	}), nil
}
