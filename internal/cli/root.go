package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carson-networks/simple-bank/internal/config"
	"github.com/carson-networks/simple-bank/internal/logging"
	"github.com/carson-networks/simple-bank/internal/metrics"
	"github.com/carson-networks/simple-bank/internal/operator"
	"github.com/carson-networks/simple-bank/internal/service"
	"github.com/carson-networks/simple-bank/internal/storage"
)

const (
	dataFileFlag = "data-file"
	logLevelFlag = "log-level"
	logFileFlag  = "log-file"
	portFlag     = "port"
)

// NewRootCommand builds the simple-bank command tree.
func NewRootCommand() *cobra.Command {
	var cfg config.Config

	rootCmd := &cobra.Command{
		Use:          "simple-bank",
		Short:        "A small JSON file backed bank",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, &cfg)
		},
	}

	rootCmd.PersistentFlags().String(dataFileFlag, "", "path of the JSON data file (default from BANK_DATA_FILE or data.json)")
	rootCmd.PersistentFlags().String(logLevelFlag, "", "log level (default from BANK_LOG_LEVEL or info)")
	rootCmd.PersistentFlags().String(logFileFlag, "", "rotating log file; console or empty logs to the terminal")

	rootCmd.AddCommand(newServeCommand(&cfg))
	rootCmd.AddCommand(newAccountCommand(&cfg))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

// loadConfig reads the environment, then lets explicitly set flags win.
func loadConfig(cmd *cobra.Command, cfg *config.Config) error {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		return err
	}
	*cfg = *envConfig

	flags := cmd.Flags()
	if flags.Changed(dataFileFlag) {
		cfg.DataFile, _ = flags.GetString(dataFileFlag)
	}
	if flags.Changed(logLevelFlag) {
		cfg.LogLevel, _ = flags.GetString(logLevelFlag)
	}
	if flags.Changed(logFileFlag) {
		cfg.LogFile, _ = flags.GetString(logFileFlag)
	}
	if flags.Lookup(portFlag) != nil && flags.Changed(portFlag) {
		port, _ := flags.GetInt(portFlag)
		if port < 1 || port > 65535 {
			return fmt.Errorf("invalid --%s %d", portFlag, port)
		}
		cfg.Port = fmt.Sprint(port)
	}
	return nil
}

// bank wires the store, operator and services for one command run.
type bank struct {
	logger    *logrus.Logger
	store     *storage.AccountStore
	recorder  *metrics.Recorder
	delegator *operator.OperatorDelegator
	service   *service.Service
}

func openBank(cmd *cobra.Command, cfg *config.Config) (*bank, error) {
	logger := logging.SetupLogging()
	logger.SetOutput(cmd.ErrOrStderr())
	if err := logging.Configure(logger, cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, err
	}

	recorder := metrics.NewRecorder()
	store := storage.NewAccountStore(cfg.DataFile, logger, recorder)
	if err := store.Load(); err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.DataFile, err)
	}

	delegator := operator.NewOperatorDelegator(store, logger, cfg.Workers)
	delegator.Start()

	return &bank{
		logger:    logger,
		store:     store,
		recorder:  recorder,
		delegator: delegator,
		service:   service.NewService(store, delegator, recorder),
	}, nil
}

func (b *bank) Close() {
	b.delegator.Stop()
}
