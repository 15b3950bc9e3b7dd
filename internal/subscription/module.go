package subscription

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/darzi-app/darzi/internal/config"
	"github.com/darzi-app/darzi/internal/domain/repository"
)

// Module wires the subscription manager and ties it to the fx lifecycle.
var Module = fx.Options(
	fx.Provide(newManager),
	fx.Invoke(registerLifecycle),
)

type managerParams struct {
	fx.In

	Jobs   repository.JobRepository
	Feed   repository.ChangeFeed
	Config *config.Config
	Logger *slog.Logger
}

func newManager(p managerParams) *Manager {
	return NewManager(p.Jobs, p.Feed, p.Config.InitialDelay, p.Config.PollInterval, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, m *Manager) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			m.Stop()
			return nil
		},
	})
}
