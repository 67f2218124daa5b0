package imagesync

import (
	"github.com/saransh1220/framesync/internal/modules/imagesync/application"
	syncHTTP "github.com/saransh1220/framesync/internal/modules/imagesync/interfaces/http"
	"github.com/saransh1220/framesync/internal/shared/infrastructure/config"
)

type Module struct {
	SyncService application.SyncService
	SyncHandler *syncHTTP.SyncHandler
}

func NewModule(source application.DesignSource, store application.ImageStore, cfg config.SyncConfig) *Module {
	service := application.NewSyncService(source, store, application.Options{
		Concurrency: cfg.Concurrency,
	})

	return &Module{
		SyncService: service,
		SyncHandler: syncHTTP.NewSyncHandler(service),
	}
}
