package filestorage

import (
	"context"
	"fmt"

	"github.com/saransh1220/framesync/internal/modules/filestorage/application"
	"github.com/saransh1220/framesync/internal/modules/filestorage/domain"
	"github.com/saransh1220/framesync/internal/modules/filestorage/infrastructure/local"
	"github.com/saransh1220/framesync/internal/modules/filestorage/infrastructure/s3"
	storageHTTP "github.com/saransh1220/framesync/internal/modules/filestorage/interfaces/http"
	"github.com/saransh1220/framesync/internal/shared/infrastructure/config"
	"github.com/saransh1220/framesync/internal/web"
)

// Module represents the FileStorage module
type Module struct {
	service *application.FileService
	storage domain.FileStorage
	handler *storageHTTP.StorageHandler
	// uploadsDir is set when objects live on the local filesystem
	uploadsDir string
}

// NewModule creates and initializes the FileStorage module
func NewModule(ctx context.Context, cfg config.FileStorageConfig) (*Module, error) {
	var storage domain.FileStorage
	var err error

	if cfg.UseS3 {
		s3Cfg := s3.S3Config{
			BucketName:     cfg.S3BucketName,
			Region:         cfg.S3Region,
			Endpoint:       cfg.S3Endpoint,
			PublicEndpoint: cfg.S3PublicEndpoint,
			AccessKey:      cfg.S3AccessKey,
			SecretKey:      cfg.S3SecretKey,
		}
		storage, err = s3.NewS3Storage(ctx, s3Cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
	} else {
		storage, err = local.NewLocalStorage(cfg.LocalPath, "/uploads")
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
	}

	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	service := application.NewFileService(storage)

	m := &Module{
		service: service,
		storage: storage,
		handler: storageHTTP.NewStorageHandler(service, templates),
	}
	if !cfg.UseS3 {
		m.uploadsDir = cfg.LocalPath
	}
	return m, nil
}

// Service returns the file service for use by other modules
func (m *Module) Service() *application.FileService {
	return m.service
}

// Handler returns the HTTP handler for the read endpoints
func (m *Module) Handler() *storageHTTP.StorageHandler {
	return m.handler
}

// UploadsDir returns the directory to serve under /uploads/, or "" for S3
func (m *Module) UploadsDir() string {
	return m.uploadsDir
}
