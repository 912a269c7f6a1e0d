package bootstrap

import (
	"context"

	"field-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		fx.Annotate(worker.NewHoldSweeper, fx.ResultTags(`group:"loops"`)),
		fx.Annotate(worker.NewOutboxPublisher, fx.ResultTags(`group:"loops"`)),
		fx.Annotate(worker.NewGroup, fx.ParamTags(`group:"loops"`)),
	),
	fx.Invoke(startWorkers),
)

func startWorkers(lc fx.Lifecycle, g *worker.Group) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			g.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return g.Stop(ctx)
		},
	})
}
