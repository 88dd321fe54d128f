package components

import (
	"context"
	"log/slog"

	"raffle-draw/internal/pkg/clock"
	"raffle-draw/internal/pkg/config"
	"raffle-draw/internal/pkg/metrics"
	"raffle-draw/internal/usecase/commands"
	"raffle-draw/internal/usecase/queue"

	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		fx.Annotate(
			func() queue.LogSink { return queue.LogSink{} },
			fx.As(new(queue.Sink)),
		),
		NewQueue,
		fx.Annotate(
			func(q *queue.Queue) *queue.Queue { return q },
			fx.As(new(queue.Submitter)),
		),
	),
	fx.Invoke(startQueue),
)

func NewQueue(executor queue.Executor, sink queue.Sink, clk clock.Clock, cfg config.Config, m *metrics.Metrics) (*queue.Queue, error) {
	return queue.New(executor, sink, clk, cfg.Queue.Pacing, cfg.Queue.TicketCacheSize, m)
}

// startQueue clears markers left by an interrupted run before the worker
// takes its first request.
func startQueue(lc fx.Lifecycle, q *queue.Queue, guard commands.DuplicateGuard) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			released, err := guard.ReleaseStale(ctx)
			if err != nil {
				return err
			}
			slog.Info("draw queue starting", "released_stale", released)
			q.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return q.Stop(ctx)
		},
	})
}
