package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DataFile string
	Port     string
	LogLevel string
	LogFile  string
	Workers  int
}

// ProcessEnvironmentVariables loads an optional .env file from the working
// directory, then reads the BANK_* variables over the defaults.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	env := Config{
		DataFile: "data.json",
		Port:     "9446",
		LogLevel: "info",
		LogFile:  "",
		Workers:  1,
	}

	envDataFile := os.Getenv("BANK_DATA_FILE")
	envPort := os.Getenv("BANK_PORT")
	envLogLevel := os.Getenv("BANK_LOG_LEVEL")
	envLogFile := os.Getenv("BANK_LOG_FILE")
	envWorkers := os.Getenv("BANK_WORKERS")

	if len(envDataFile) != 0 {
		env.DataFile = envDataFile
	}

	if len(envPort) != 0 {
		port, err := strconv.Atoi(envPort)
		if err != nil || port < 1 || port > 65535 {
			return nil, fmt.Errorf("config: invalid BANK_PORT %q", envPort)
		}
		env.Port = envPort
	}

	if len(envLogLevel) != 0 {
		if _, err := logrus.ParseLevel(envLogLevel); err != nil {
			return nil, fmt.Errorf("config: invalid BANK_LOG_LEVEL: %w", err)
		}
		env.LogLevel = envLogLevel
	}

	if len(envLogFile) != 0 {
		env.LogFile = envLogFile
	}

	if len(envWorkers) != 0 {
		workers, err := strconv.Atoi(envWorkers)
		if err != nil || workers < 1 {
			return nil, fmt.Errorf("config: invalid BANK_WORKERS %q", envWorkers)
		}
		env.Workers = workers
	}

	return &env, nil
}
