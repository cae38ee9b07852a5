package app

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shandysiswandi/goamviajes/internal/amviajes"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.amviajes.enabled") {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		mod, err := amviajes.New(ctx, amviajes.Dependency{
			Config: a.config,
			Router: a.router,
			UUID:   a.uuid,
		})
		if err != nil {
			slog.Error("failed to init module amviajes", "error", err)
			os.Exit(1)
		}
		a.addCloser("Module amviajes", mod.Close)
	}
}
