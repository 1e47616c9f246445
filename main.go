package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Sumitb09/music-player/internal/app"
	"github.com/Sumitb09/music-player/internal/catalog"
	"github.com/Sumitb09/music-player/internal/config"
	"github.com/Sumitb09/music-player/internal/downloads"
	"github.com/Sumitb09/music-player/internal/errmsg"
	"github.com/Sumitb09/music-player/internal/logging"
	"github.com/Sumitb09/music-player/internal/mpris"
	"github.com/Sumitb09/music-player/internal/playback"
	"github.com/Sumitb09/music-player/internal/player"
	"github.com/Sumitb09/music-player/internal/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, logCloser, err := logging.Setup(cfg.Logging)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	store, err := state.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	closers := []io.Closer{store}
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i].Close(); err != nil {
				logger.Warn("shutdown", "error", err)
			}
		}
	}()

	cc := cfg.GetCatalogConfig()
	cat := catalog.New(cc.BaseURL, cc.Timeout(), logger)
	engine := player.NewBeepEngine(cfg.GetPlayerConfig().StatusInterval(), nil, logger)
	closers = append(closers, engine)

	svc := playback.New(playback.Deps{
		Engine:           engine,
		Resolver:         cat,
		Transport:        downloads.NewFileTransport(cfg.Downloads.Dir, nil, logger),
		Store:            store,
		Logger:           logger,
		PreferredQuality: cc.PreferredQuality,
	})
	// Closed before the engine and store so queued writes land.
	closers = append(closers, svc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := svc.Hydrate(ctx); err != nil {
		logger.Warn("hydrate state", "error", err)
	}
	if stale := svc.PruneDownloads(); len(stale) > 0 {
		logger.Info("removed missing downloads", "ids", stale)
	}
	go svc.Run(ctx)

	if cfg.MPRISEnabled() {
		adapter, err := mpris.New(ctx, svc, logger.With(slog.String("component", "mpris")))
		if err != nil {
			logger.Warn("mpris unavailable", "error", err)
		} else {
			closers = append(closers, adapter)
		}
	}

	model := app.New(app.Deps{
		Service: svc,
		Catalog: cat,
		Logger:  logger,
		Context: ctx,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
