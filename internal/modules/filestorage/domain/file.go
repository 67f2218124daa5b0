package domain

import (
	"net/url"
	"strings"
	"time"
)

// Object represents a stored bucket entry
type Object struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Listing is the result of a bucket listing. Folders holds the common
// prefixes with the trailing delimiter removed and is only populated when
// a delimiter was requested.
type Listing struct {
	Folders []string
	Objects []Object
}

// FolderOf returns the key segment before the first "/"
func FolderOf(key string) string {
	folder, _, _ := strings.Cut(key, "/")
	return folder
}

// EscapeKey path-escapes each segment of key for use in a URL, keeping
// the "/" separators
func EscapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}
