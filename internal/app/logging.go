package app

import (
	"fmt"
	"strings"

	"github.com/ds124wfegd/storeassets/config"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// fieldsHook stamps every entry with fixed fields.
type fieldsHook struct {
	fields logrus.Fields
}

func (h *fieldsHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *fieldsHook) Fire(entry *logrus.Entry) error {
	for k, v := range h.fields {
		if _, ok := entry.Data[k]; !ok {
			entry.Data[k] = v
		}
	}
	return nil
}

// ConfigureLogging sets level and formatter on the standard logrus logger.
// JSON output carries the tool name and a per-run id on every entry.
func ConfigureLogging(cfg config.LogConfig, tool string) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	logrus.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		logrus.SetFormatter(new(logrus.JSONFormatter))
		logrus.AddHook(&fieldsHook{fields: logrus.Fields{
			"tool":   tool,
			"run_id": uuid.NewString(),
		}})
	case "", "text":
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp:       true,
			DisableLevelTruncation: true,
			PadLevelText:           true,
		})
	default:
		return fmt.Errorf("log.format: unknown format %q", cfg.Format)
	}
	return nil
}
