package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/otabekd/factoryops-go/internal/application/common"
	"github.com/otabekd/factoryops-go/internal/infrastructure/config"
)

var levelRank = map[string]int{
	"DEBUG": 0,
	"INFO":  1,
	"WARN":  2,
	"ERROR": 3,
}

// consoleLogger writes operation logs to stdout or stderr in text or JSON
// form, filtered by the configured level.
type consoleLogger struct {
	out      io.Writer
	format   string
	minLevel int
}

func newConsoleLogger(cfg *config.LoggingConfig) *consoleLogger {
	out := os.Stdout
	if cfg.Output == "stderr" {
		out = os.Stderr
	}

	min, ok := levelRank[strings.ToUpper(cfg.Level)]
	if !ok {
		min = levelRank["INFO"]
	}

	return &consoleLogger{
		out:      out,
		format:   cfg.Format,
		minLevel: min,
	}
}

func (l *consoleLogger) Log(level, message string, metadata map[string]interface{}) {
	rank, ok := levelRank[strings.ToUpper(level)]
	if !ok {
		rank = levelRank["INFO"]
	}
	if rank < l.minLevel {
		return
	}

	now := time.Now().Format(time.RFC3339)

	if l.format == "json" {
		entry := map[string]interface{}{
			"time":    now,
			"level":   level,
			"message": message,
		}
		for k, v := range metadata {
			entry[k] = v
		}
		if data, err := json.Marshal(entry); err == nil {
			fmt.Fprintln(l.out, string(data))
		}
		return
	}

	fmt.Fprintf(l.out, "%s [%s] %s", now, level, message)
	for k, v := range metadata {
		fmt.Fprintf(l.out, " %s=%v", k, v)
	}
	fmt.Fprintln(l.out)
}

// multiLogger fans one log call out to several loggers
type multiLogger []common.OperationLogger

func (m multiLogger) Log(level, message string, metadata map[string]interface{}) {
	for _, logger := range m {
		logger.Log(level, message, metadata)
	}
}
