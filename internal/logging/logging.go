package logging

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

func SetupLogging() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Hooks: make(logrus.LevelHooks),
		Level: logrus.InfoLevel,
	}

	return &logger
}

// Configure applies the level and, when logPath is set, sends output to a
// rotating file instead of stdout.
func Configure(logger *logrus.Logger, logLevel string, logPath string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	if logPath != "" && logPath != "console" {
		logger.SetOutput(&lumberjack.Logger{
			Filename:   filepath.ToSlash(logPath),
			MaxSize:    5, // MB
			MaxBackups: 10,
			MaxAge:     30, // days
			Compress:   true,
		})
	}
	return nil
}
