// Command btcterm shows live Coinbase prices of a fixed set of crypto pairs
// in the terminal, refreshing every few seconds until [Q] is pressed.
//
// Usage:
//
//	btcterm
//	btcterm --config config.yaml
//	btcterm --log-file btcterm.log --log-level debug
//	btcterm --setup (interactive configuration wizard)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/vadiminshakov/btcterm/config"
	"github.com/vadiminshakov/btcterm/internal"
	"github.com/vadiminshakov/btcterm/internal/setup"
	"github.com/vadiminshakov/btcterm/internal/terminal"
	"github.com/vadiminshakov/btcterm/internal/ui"
)

func main() {
	conf, err := config.Get(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if conf.Setup {
		conf, err = setup.RunTUI(conf, setup.DefaultPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	logger, err := conf.NewLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(conf, logger); err != nil {
		logger.Error("dashboard failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(conf config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if conf.ShowBanner {
		if err := ui.Banner(os.Stdout); err != nil {
			logger.Warn("failed to print banner", zap.Error(err))
		}
	}

	session, err := terminal.Open(os.Stdin, os.Stdout, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Error("failed to restore terminal", zap.Error(err))
		}
	}()

	dashboard := internal.NewDashboard(conf, os.Stdout, session, logger)
	return dashboard.Run(ctx)
}
