package application_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/saransh1220/framesync/internal/modules/filestorage/application"
	"github.com/saransh1220/framesync/internal/modules/filestorage/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockStorage struct {
	listFn func(context.Context, string, string) (*domain.Listing, error)
	putFn  func(context.Context, string, io.Reader, string) error
}

func (m mockStorage) ListObjects(ctx context.Context, prefix, delimiter string) (*domain.Listing, error) {
	return m.listFn(ctx, prefix, delimiter)
}
func (m mockStorage) PutObject(ctx context.Context, key string, body io.Reader, ct string) error {
	return m.putFn(ctx, key, body, ct)
}
func (m mockStorage) PublicURL(key string) string { return "https://storage.test/bucket/" + key }

func TestFileService_ListFolders(t *testing.T) {
	var gotDelimiter string
	svc := application.NewFileService(mockStorage{
		listFn: func(_ context.Context, _ string, d string) (*domain.Listing, error) {
			gotDelimiter = d
			return &domain.Listing{Folders: []string{"Home", "", "Icons"}}, nil
		},
	})

	folders, err := svc.ListFolders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/", gotDelimiter)
	assert.Equal(t, []string{"Home", "Icons"}, folders)
}

func TestFileService_ListFolders_Empty(t *testing.T) {
	svc := application.NewFileService(mockStorage{
		listFn: func(context.Context, string, string) (*domain.Listing, error) { return &domain.Listing{}, nil },
	})

	folders, err := svc.ListFolders(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, folders)
	assert.Empty(t, folders)
}

func TestFileService_ListImagesByFolder(t *testing.T) {
	svc := application.NewFileService(mockStorage{
		listFn: func(_ context.Context, _ string, d string) (*domain.Listing, error) {
			assert.Empty(t, d)
			return &domain.Listing{Objects: []domain.Object{
				{Key: "Home/Hero-Banner.png"},
				{Key: "Home/Footer.png"},
				{Key: "Icons/Close.png"},
				{Key: "loose.png"},
			}}, nil
		},
	})

	grouped, err := svc.ListImagesByFolder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"Home": {
			"https://storage.test/bucket/Home/Hero-Banner.png",
			"https://storage.test/bucket/Home/Footer.png",
		},
		"Icons":     {"https://storage.test/bucket/Icons/Close.png"},
		"loose.png": {"https://storage.test/bucket/loose.png"},
	}, grouped)
}

func TestFileService_Errors(t *testing.T) {
	boom := errors.New("bucket unreachable")
	svc := application.NewFileService(mockStorage{
		listFn: func(context.Context, string, string) (*domain.Listing, error) { return nil, boom },
		putFn:  func(context.Context, string, io.Reader, string) error { return boom },
	})

	_, err := svc.ListFolders(context.Background())
	assert.ErrorIs(t, err, boom)
	_, err = svc.ListImagesByFolder(context.Background())
	assert.ErrorIs(t, err, boom)
	err = svc.UploadWithKey(context.Background(), bytes.NewBufferString("x"), "k", "image/png")
	assert.ErrorIs(t, err, boom)
}

func TestFileService_UploadWithKey(t *testing.T) {
	var gotKey, gotType string
	svc := application.NewFileService(mockStorage{
		putFn: func(_ context.Context, key string, _ io.Reader, ct string) error {
			gotKey, gotType = key, ct
			return nil
		},
	})

	require.NoError(t, svc.UploadWithKey(context.Background(), bytes.NewBufferString("x"), "Home/A.png", "image/png"))
	assert.Equal(t, "Home/A.png", gotKey)
	assert.Equal(t, "image/png", gotType)
}
