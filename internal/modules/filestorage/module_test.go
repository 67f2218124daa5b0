package filestorage

import (
	"context"
	"testing"

	"github.com/saransh1220/framesync/internal/shared/infrastructure/config"
	"github.com/stretchr/testify/require"
)

func TestNewModule_LocalAndS3Error(t *testing.T) {
	dir := t.TempDir()
	m, err := NewModule(context.Background(), config.FileStorageConfig{UseS3: false, LocalPath: dir})
	require.NoError(t, err)
	require.Equal(t, dir, m.UploadsDir())
	require.NotNil(t, m)
	require.NotNil(t, m.Service())
	require.NotNil(t, m.Handler())

	_, err = NewModule(context.Background(), config.FileStorageConfig{UseS3: true, S3BucketName: ""})
	require.Error(t, err)
}

func TestNewModule_S3(t *testing.T) {
	m, err := NewModule(context.Background(), config.FileStorageConfig{
		UseS3:        true,
		S3BucketName: "frames",
		S3Region:     "ru-central1",
		S3Endpoint:   "https://storage.yandexcloud.net",
		S3AccessKey:  "ak",
		S3SecretKey:  "sk",
	})
	require.NoError(t, err)
	require.NotNil(t, m.Service())
	require.Empty(t, m.UploadsDir())
}
