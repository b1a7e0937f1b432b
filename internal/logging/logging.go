package logging

import (
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/tingly-dev/bot-admin/internal/constant"
)

// LogRotationConfig holds configuration for log rotation
type LogRotationConfig struct {
	Filename   string // Log file path
	MaxSize    int    // Maximum size in megabytes
	MaxBackups int    // Maximum number of old log files to retain
	MaxAge     int    // Maximum number of days to retain old log files
	Compress   bool   // Compress old log files
}

// DefaultLogRotationConfig returns default log rotation settings
func DefaultLogRotationConfig(logFile string) *LogRotationConfig {
	return &LogRotationConfig{
		Filename:   logFile,
		MaxSize:    constant.LogMaxSizeMB,
		MaxBackups: constant.LogMaxBackups,
		MaxAge:     constant.LogMaxAgeDays,
		Compress:   true,
	}
}

// NewRotatingWriter creates a lumberjack logger with the given configuration
func NewRotatingWriter(cfg *LogRotationConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
}

// Setup configures the global logrus logger. Logs go to stderr unless logFile
// is set, in which case they go to a rotating file. The returned closer
// releases the file and is a no-op for stderr.
func Setup(verbose bool, logFile string, stderr io.Writer) io.Closer {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.TraceLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	if logFile == "" {
		logrus.SetOutput(stderr)
		return nopCloser{}
	}

	writer := NewRotatingWriter(DefaultLogRotationConfig(logFile))
	logrus.SetOutput(writer)
	return writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
