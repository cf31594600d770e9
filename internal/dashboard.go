package internal

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/vadiminshakov/btcterm/config"
	"github.com/vadiminshakov/btcterm/internal/clients"
	"github.com/vadiminshakov/btcterm/internal/domain"
	"github.com/vadiminshakov/btcterm/internal/services/collector"
	"github.com/vadiminshakov/btcterm/internal/services/pricer"
	"github.com/vadiminshakov/btcterm/internal/terminal"
	"github.com/vadiminshakov/btcterm/internal/ui"
)

type snapshotCollector interface {
	Collect(ctx context.Context, pairs []domain.TrackedPair) *domain.Snapshot
}

type screen interface {
	Render(snapshot *domain.Snapshot, now time.Time) error
	Farewell() error
}

type keyInput interface {
	Interactive() bool
	Keys() <-chan byte
}

type state int

const (
	stateRunning state = iota
	stateTerminating
)

// Dashboard runs the fetch, render, wait cycle until quit or interrupt.
type Dashboard struct {
	Config config.Config

	pairs     []domain.TrackedPair
	collector snapshotCollector
	screen    screen
	input     keyInput
	keys      <-chan byte
	logger    *zap.Logger
	now       func() time.Time
	state     state
}

// NewDashboard creates a dashboard for the fixed pair set, drawing to out.
func NewDashboard(conf config.Config, out io.Writer, input keyInput, logger *zap.Logger) *Dashboard {
	client := clients.NewCoinbaseClient(conf.BaseURL, conf.RequestTimeout)
	p := pricer.NewCoinbasePricer(client, logger)
	c := collector.NewCollector(p, conf.Concurrency, logger)

	return newDashboard(conf, domain.DefaultPairs(), c, ui.NewRenderer(out), input, logger)
}

func newDashboard(conf config.Config, pairs []domain.TrackedPair, c snapshotCollector,
	s screen, input keyInput, logger *zap.Logger) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dashboard{
		Config:    conf,
		pairs:     pairs,
		collector: c,
		screen:    s,
		input:     input,
		logger:    logger,
		now:       time.Now,
	}
}

// Run blocks until a quit key is pressed or ctx is cancelled. Both end the
// loop gracefully with a farewell line, network failures never end it.
func (d *Dashboard) Run(ctx context.Context) error {
	d.state = stateRunning
	interactive := d.input.Interactive()
	if interactive {
		d.keys = d.input.Keys()
	}

	d.logger.Info("Starting dashboard loop",
		zap.Int("pairs", len(d.pairs)),
		zap.Bool("interactive", interactive),
		zap.Duration("refresh_interval", d.Config.RefreshInterval))

	for d.state == stateRunning {
		snapshot := d.collector.Collect(ctx, d.pairs)
		if ctx.Err() != nil {
			d.handle(terminal.CommandInterrupt)
			break
		}

		if err := d.screen.Render(snapshot, d.now()); err != nil {
			d.logger.Warn("failed to render dashboard", zap.Error(err))
		}

		var cmd terminal.Command
		if interactive {
			cmd = d.waitKey(ctx, d.Config.KeyWait)
		} else {
			cmd = d.pause(ctx, d.Config.NonInteractiveWait)
		}
		d.handle(cmd)
		if d.state != stateRunning {
			continue
		}

		d.handle(d.pause(ctx, d.Config.RefreshInterval))
	}

	if err := d.screen.Farewell(); err != nil {
		d.logger.Warn("failed to print farewell", zap.Error(err))
	}
	d.logger.Info("Dashboard loop stopped")

	return nil
}

func (d *Dashboard) handle(cmd terminal.Command) {
	switch cmd {
	case terminal.CommandQuit, terminal.CommandInterrupt:
		d.logger.Info("Stopping dashboard", zap.Stringer("reason", cmd))
		d.state = stateTerminating
	case terminal.CommandRefresh:
		d.logger.Debug("Refresh requested")
	}
}

// waitKey returns on the first key press, on timeout or on ctx cancellation.
func (d *Dashboard) waitKey(ctx context.Context, timeout time.Duration) terminal.Command {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return terminal.CommandInterrupt
	case <-timer.C:
		return terminal.CommandNone
	case key, ok := <-d.keys:
		if !ok {
			d.inputClosed()
			return terminal.CommandNone
		}
		return terminal.ParseKey(key)
	}
}

// pause sleeps for the given duration. Only quit and interrupt end it early,
// refresh and other keys are ignored.
func (d *Dashboard) pause(ctx context.Context, duration time.Duration) terminal.Command {
	timer := time.NewTimer(duration)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return terminal.CommandInterrupt
		case <-timer.C:
			return terminal.CommandNone
		case key, ok := <-d.keys:
			if !ok {
				d.inputClosed()
				continue
			}
			switch cmd := terminal.ParseKey(key); cmd {
			case terminal.CommandQuit, terminal.CommandInterrupt:
				return cmd
			}
		}
	}
}

// inputClosed stops reading keys; a nil channel blocks forever in select.
func (d *Dashboard) inputClosed() {
	d.logger.Info("input closed, controls disabled")
	d.keys = nil
}
