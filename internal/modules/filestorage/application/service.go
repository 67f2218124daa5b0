package application

import (
	"context"
	"io"

	"github.com/saransh1220/framesync/internal/modules/filestorage/domain"
)

const folderDelimiter = "/"

// FileService provides bucket-level queries and uploads
type FileService struct {
	storage domain.FileStorage
}

// NewFileService creates a new file service
func NewFileService(storage domain.FileStorage) *FileService {
	return &FileService{
		storage: storage,
	}
}

// ListFolders returns the first-level folders of the bucket without the trailing "/"
func (s *FileService) ListFolders(ctx context.Context) ([]string, error) {
	listing, err := s.storage.ListObjects(ctx, "", folderDelimiter)
	if err != nil {
		return nil, err
	}
	folders := make([]string, 0, len(listing.Folders))
	for _, f := range listing.Folders {
		if f != "" {
			folders = append(folders, f)
		}
	}
	return folders, nil
}

// ListImagesByFolder lists every object and groups its public URL under the
// key segment before the first "/"
func (s *FileService) ListImagesByFolder(ctx context.Context) (map[string][]string, error) {
	listing, err := s.storage.ListObjects(ctx, "", "")
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]string)
	for _, obj := range listing.Objects {
		folder := domain.FolderOf(obj.Key)
		grouped[folder] = append(grouped[folder], s.storage.PublicURL(obj.Key))
	}
	return grouped, nil
}

// UploadWithKey uploads body under key
func (s *FileService) UploadWithKey(ctx context.Context, body io.Reader, key string, contentType string) error {
	return s.storage.PutObject(ctx, key, body, contentType)
}
