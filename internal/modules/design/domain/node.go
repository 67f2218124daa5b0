package domain

import "errors"

var (
	ErrImagesMissing = errors.New("image response has no images mapping")
	ErrNoImageURL    = errors.New("no image url for frame")
)

// Node is an element of the design file tree. Top-level children of the
// document are pages; their children are frames.
type Node struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Children []Node `json:"children,omitempty"`
}

// File is a design file as returned by the files endpoint
type File struct {
	Name     string `json:"name"`
	Document Node   `json:"document"`
}

// Pages returns the top-level pages of the document
func (f *File) Pages() []Node {
	return f.Document.Children
}

// FrameIDs returns the ids of n's direct children in order
func (n Node) FrameIDs() []string {
	ids := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		ids = append(ids, c.ID)
	}
	return ids
}
