package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// --------------------------------------------------------------------------
// Logger Factory
// --------------------------------------------------------------------------

// GetLogger returns a named component logger. All loggers share the same
// backend so that InitLoggers applies to every component at once.
func GetLogger(pkgName string) *logrus.Entry {
	return logrus.StandardLogger().WithField("component", pkgName)
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// parseLogLevel converts a string level to logrus.Level
func parseLogLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warning", "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		panic(fmt.Sprintf("invalid log level: %s. must be one of debug, info, warn, error", level))
	}
}

// --------------------------------------------------------------------------
// Logger initialization
// --------------------------------------------------------------------------

// InitLoggers configures the shared logging backend from the server config
func InitLoggers(config ServerConfig) {
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(parseLogLevel(config.LogLevel))
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}
