package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Ready to use before InitLogger runs, e.g. from tests.
var (
	InfoLogger  = logrus.New()
	ErrorLogger = logrus.New()
)

func InitLogger() {
	InitLoggerWithOutput(os.Stdout, os.Stderr, "info")
}

// InitLoggerWithOutput sets up both loggers. level applies to InfoLogger and
// falls back to info when it cannot be parsed.
func InitLoggerWithOutput(info, errs io.Writer, level string) {
	InfoLogger = logrus.New()
	ErrorLogger = logrus.New()

	// Set output untuk InfoLogger ke stdout
	InfoLogger.SetOutput(info)
	InfoLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// Set output untuk ErrorLogger ke stderr
	ErrorLogger.SetOutput(errs)
	ErrorLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	InfoLogger.SetLevel(lvl)
	ErrorLogger.SetLevel(logrus.ErrorLevel)
}
