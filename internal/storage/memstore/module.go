package memstore

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/darzi-app/darzi/internal/config"
	"github.com/darzi-app/darzi/internal/domain/repository"
)

// Module wires the in-memory store and its repository adapters.
var Module = fx.Options(
	fx.Provide(newStore),
	fx.Provide(
		func(s *Store) repository.JobRepository { return s.Jobs() },
		func(s *Store) repository.TailorRepository { return s.Tailors() },
		func(s *Store) repository.ChangeFeed { return s },
	),
)

type storeParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) *Store {
	return New(p.Config.StoreLatency, p.Config.StrictTransitions, p.Logger)
}
