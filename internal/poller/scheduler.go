// Package poller runs the background loops that fetch container lists and
// stats from the engine.
package poller

import (
	"context"
	"time"

	"github.com/rusenback/dockerdash/internal/docker"
	"github.com/rusenback/dockerdash/internal/history"
	"github.com/rusenback/dockerdash/internal/metrics"
	"github.com/rusenback/dockerdash/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MinInterval is the shortest allowed poll interval.
const MinInterval = time.Second

// Scheduler owns the list and stats polling loops.
type Scheduler struct {
	inspector     docker.Inspector
	store         *history.Store
	lists         *Slot[[]model.Container]
	tracker       *metrics.Tracker
	listInterval  time.Duration
	statsInterval time.Duration
	log           *zap.Logger
}

// Options configures a Scheduler. Zero intervals default to MinInterval.
type Options struct {
	ListInterval  time.Duration
	StatsInterval time.Duration
	Logger        *zap.Logger
}

// NewScheduler creates a scheduler publishing sorted lists to lists and
// appending derived metrics to store.
func NewScheduler(inspector docker.Inspector, store *history.Store, lists *Slot[[]model.Container], opts Options) *Scheduler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{
		inspector:     inspector,
		store:         store,
		lists:         lists,
		tracker:       metrics.NewTracker(),
		listInterval:  clampInterval(opts.ListInterval),
		statsInterval: clampInterval(opts.StatsInterval),
		log:           log,
	}
}

func clampInterval(d time.Duration) time.Duration {
	if d < MinInterval {
		return MinInterval
	}
	return d
}

// Run starts both loops and blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.loop(ctx, s.listInterval, s.pollList)
		return nil
	})
	g.Go(func() error {
		s.loop(ctx, s.statsInterval, s.pollStats)
		return nil
	})

	return g.Wait()
}

// loop calls fn once per interval until ctx is done. A tick that runs longer
// than the interval makes the ticker drop the missed ticks, so calls to fn
// never overlap.
func (s *Scheduler) loop(ctx context.Context, interval time.Duration, fn func(context.Context)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(ctx)
		}
	}
}

// pollList fetches, sorts and publishes the container list.
func (s *Scheduler) pollList(ctx context.Context) {
	containers, err := s.inspector.List(ctx)
	if err != nil {
		s.log.Debug("list poll failed", zap.Error(err))
		return
	}

	Sort(containers)
	s.lists.Publish(containers)
}

// pollStats fetches stats for every known container, one at a time.
func (s *Scheduler) pollStats(ctx context.Context) {
	ids := s.store.IDs()

	for _, id := range ids {
		if ctx.Err() != nil {
			return
		}

		sample, err := s.inspector.Stats(ctx, id)
		if err != nil {
			s.log.Debug("stats poll failed", zap.String("container", id), zap.Error(err))
			continue
		}
		sample.ContainerID = id

		for _, m := range s.tracker.Observe(sample) {
			s.store.Append(id, m)
		}
	}

	s.tracker.Retain(ids)
}
