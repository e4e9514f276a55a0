package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rusenback/dockerdash/internal/config"
	"github.com/rusenback/dockerdash/internal/docker"
	"github.com/rusenback/dockerdash/internal/history"
	"github.com/rusenback/dockerdash/internal/logging"
	"github.com/rusenback/dockerdash/internal/model"
	"github.com/rusenback/dockerdash/internal/poller"
	"github.com/rusenback/dockerdash/internal/snapshot"
	"github.com/rusenback/dockerdash/internal/tui"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// dashboardCommand connects to the engine and runs the TUI until the user
// quits or ctx is cancelled.
func dashboardCommand(ctx context.Context, cfg *config.Config) error {
	log, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	client, err := connect(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer client.Close()

	builder, scheduler, err := newPipeline(ctx, client, cfg, log)
	if err != nil {
		return err
	}

	log.Info("dashboard started", zap.String("host", cfg.Host))
	return runDashboard(ctx, scheduler, func(ctx context.Context) error {
		m := tui.NewModel(builder, tui.Options{
			FrameInterval: cfg.FrameInterval,
			Logger:        log.Named("tui"),
		})
		_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
		return err
	})
}

// newPipeline fetches the initial container list and builds the snapshot
// builder and scheduler around it. A failing first list is fatal.
func newPipeline(ctx context.Context, inspector docker.Inspector, cfg *config.Config, log *zap.Logger) (*snapshot.Builder, *poller.Scheduler, error) {
	initial, err := initialList(ctx, inspector)
	if err != nil {
		return nil, nil, err
	}

	store := history.NewStore()
	lists := poller.NewSlot[[]model.Container]()

	builder := snapshot.NewBuilder(lists, store)
	builder.Seed(initial)

	scheduler := poller.NewScheduler(inspector, store, lists, poller.Options{
		ListInterval:  cfg.ListInterval,
		StatsInterval: cfg.StatsInterval,
		Logger:        log.Named("scheduler"),
	})
	return builder, scheduler, nil
}

func initialList(ctx context.Context, inspector docker.Inspector) ([]model.Container, error) {
	containers, err := inspector.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("initial container list: %w", err)
	}
	poller.Sort(containers)
	return containers, nil
}

// runDashboard runs the scheduler in the background while ui runs. When ui
// returns the scheduler is cancelled; cancelling ctx stops both.
func runDashboard(ctx context.Context, scheduler *poller.Scheduler, ui func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return scheduler.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		err := ui(gctx)
		if errors.Is(err, tea.ErrProgramKilled) && gctx.Err() != nil {
			return nil
		}
		return err
	})

	return g.Wait()
}
