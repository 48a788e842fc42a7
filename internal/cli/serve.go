package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/carson-networks/simple-bank/api"
	"github.com/carson-networks/simple-bank/internal/config"
)

func newServeCommand(cfg *config.Config) *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBank(cmd, cfg)
			if err != nil {
				return err
			}
			if cfg.LogFile == "" || cfg.LogFile == "console" {
				b.logger.SetOutput(os.Stdout)
			}
			defer b.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			b.logger.WithField("dataFile", b.store.Path()).Info("simple-bank starting")
			httpRest := api.Rest{
				Logger:  b.logger,
				Port:    cfg.Port,
				Store:   b.store,
				Service: b.service,
				Metrics: b.recorder,
			}
			serveErr := httpRest.Serve(ctx)

			b.delegator.Stop()
			if err := b.store.Save(); err != nil {
				b.logger.WithError(err).Error("simple-bank.shutdown.save failed")
				if serveErr == nil {
					serveErr = err
				}
			}
			return serveErr
		},
	}
	serveCmd.Flags().Int(portFlag, 0, "port to listen on (default from BANK_PORT or 9446)")
	return serveCmd
}
