package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/darzi-app/darzi/internal/app"
	"github.com/darzi-app/darzi/internal/config"
)

func TestModuleComposesGraph(t *testing.T) {
	cfg := &config.Config{
		RunAddress:        ":0",
		StoreLatency:      0,
		PollInterval:      time.Hour,
		InitialDelay:      time.Millisecond,
		StrictTransitions: true,
		ShutdownTimeout:   time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	var facade *app.TailoringFacade
	fxApp := fx.New(
		fx.NopLogger,
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected tailoring facade instance")
	}
	if len(facade.Categories()) == 0 {
		t.Fatal("facade resolved without catalog data")
	}
}
