package main

import (
	"context"
	"fmt"

	"github.com/saransh1220/framesync/internal/gateway"
	"github.com/saransh1220/framesync/internal/modules/design"
	"github.com/saransh1220/framesync/internal/modules/filestorage"
	"github.com/saransh1220/framesync/internal/modules/imagesync"
	"github.com/saransh1220/framesync/internal/modules/imagesync/application"
	"github.com/saransh1220/framesync/internal/shared/infrastructure/config"
	"github.com/saransh1220/framesync/internal/shared/logger"
)

// app holds the wired modules shared by the serve and sync commands
type app struct {
	cfg     *config.Config
	storage *filestorage.Module
	sync    *imagesync.Module
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	logger.SetLevel(cfg.LogLevel)

	var source application.DesignSource
	designModule, err := design.NewModule(cfg.Figma)
	if err != nil {
		// The bucket endpoints do not need Figma, so only syncs fail
		logger.Log.Warn().Err(err).Msg("design source not configured, syncs will fail until FILE_KEY is set")
		source = design.UnavailableSource{Err: err}
	} else {
		source = designModule.Client()
	}

	storageModule, err := filestorage.NewModule(ctx, cfg.FileStorage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	syncModule := imagesync.NewModule(source, storageModule.Service(), cfg.Sync)

	return &app{
		cfg:     cfg,
		storage: storageModule,
		sync:    syncModule,
	}, nil
}

func (a *app) router() *gateway.Router {
	return gateway.SetupRoutes(gateway.RouterConfig{
		StorageHandler: a.storage.Handler(),
		SyncHandler:    a.sync.SyncHandler,
		UploadsDir:     a.storage.UploadsDir(),
	})
}

func (a *app) server() *gateway.Server {
	s := a.cfg.Server
	return gateway.NewServer(s.Port, a.router().Handler(s.AllowedOrigins), s.ReadTimeout, s.WriteTimeout)
}
