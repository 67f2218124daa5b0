package design

import (
	"context"
	"fmt"

	"github.com/saransh1220/framesync/internal/modules/design/domain"
	"github.com/saransh1220/framesync/internal/modules/design/infrastructure/figma"
	"github.com/saransh1220/framesync/internal/shared/infrastructure/config"
)

// Module represents the design source module
type Module struct {
	client *figma.Client
}

// NewModule creates the Figma client from configuration
func NewModule(cfg config.FigmaConfig) (*Module, error) {
	client, err := figma.NewClient(figma.Config{
		BaseURL:   cfg.BaseURL,
		Token:     cfg.Token,
		FileKey:   cfg.FileKey,
		Scale:     cfg.ImageScale,
		BatchSize: cfg.ImageBatchSize,
		Timeout:   cfg.HTTPTimeout,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize figma client: %w", err)
	}
	return &Module{client: client}, nil
}

// Client returns the design source client
func (m *Module) Client() *figma.Client {
	return m.client
}

// UnavailableSource stands in for the client when it could not be
// configured. Every call fails with the configuration error, so the
// storage endpoints keep working while syncs report what is missing.
type UnavailableSource struct {
	Err error
}

func (u UnavailableSource) FetchFile(ctx context.Context) (*domain.File, error) {
	return nil, u.Err
}

func (u UnavailableSource) FetchImageURLs(ctx context.Context, ids []string) (map[string]string, error) {
	return nil, u.Err
}

func (u UnavailableSource) DownloadImage(ctx context.Context, url string) ([]byte, error) {
	return nil, u.Err
}
