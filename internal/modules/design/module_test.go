package design

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/saransh1220/framesync/internal/shared/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModule(t *testing.T) {
	_, err := NewModule(config.FigmaConfig{})
	require.Error(t, err)

	m, err := NewModule(config.FigmaConfig{Token: "t", FileKey: "k", ImageScale: 2, HTTPTimeout: time.Second})
	require.NoError(t, err)
	require.NotNil(t, m.Client())
}

func TestUnavailableSource(t *testing.T) {
	cause := errors.New("figma file key is required")
	src := UnavailableSource{Err: cause}
	ctx := context.Background()

	file, err := src.FetchFile(ctx)
	assert.Nil(t, file)
	assert.ErrorIs(t, err, cause)

	urls, err := src.FetchImageURLs(ctx, []string{"1:1"})
	assert.Nil(t, urls)
	assert.ErrorIs(t, err, cause)

	data, err := src.DownloadImage(ctx, "http://x")
	assert.Nil(t, data)
	assert.ErrorIs(t, err, cause)
}
