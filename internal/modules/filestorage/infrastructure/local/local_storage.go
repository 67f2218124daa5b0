package local

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/saransh1220/framesync/internal/modules/filestorage/domain"
)

// LocalStorage implements FileStorage on a local directory tree, one file per key
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a new local filesystem storage
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// ListObjects walks the tree in lexical order, mirroring S3 listing semantics
func (l *LocalStorage) ListObjects(ctx context.Context, prefix, delimiter string) (*domain.Listing, error) {
	listing := &domain.Listing{}
	seen := make(map[string]bool)

	err := filepath.WalkDir(l.basePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(l.basePath, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if !strings.HasPrefix(key, prefix) {
			return nil
		}

		if delimiter != "" {
			rest := key[len(prefix):]
			if i := strings.Index(rest, delimiter); i >= 0 {
				folder := prefix + rest[:i]
				if !seen[folder] {
					seen[folder] = true
					listing.Folders = append(listing.Folders, folder)
				}
				return nil
			}
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		listing.Objects = append(listing.Objects, domain.Object{
			Key:          key,
			Size:         info.Size(),
			LastModified: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list local storage: %w", err)
	}
	return listing, nil
}

// PutObject writes body to basePath/key, replacing any existing file
func (l *LocalStorage) PutObject(ctx context.Context, key string, body io.Reader, contentType string) error {
	fullPath, err := l.resolve(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	outFile, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, body); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// PublicURL returns baseURL/key with each key segment escaped
func (l *LocalStorage) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", l.baseURL, domain.EscapeKey(key))
}

func (l *LocalStorage) resolve(key string) (string, error) {
	fullPath := filepath.Join(l.basePath, filepath.FromSlash(key))
	rel, err := filepath.Rel(l.basePath, fullPath)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("invalid object key: %q", key)
	}
	return fullPath, nil
}

var _ domain.FileStorage = (*LocalStorage)(nil)
