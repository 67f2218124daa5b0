package domain

import "time"

type FrameStatus string

const (
	FrameUploaded FrameStatus = "uploaded"
	FrameSkipped  FrameStatus = "skipped"
	FrameFailed   FrameStatus = "failed"
)

const SkipReasonEmoji = "emoji"

// FrameResult is the outcome of syncing one frame
type FrameResult struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Key    string      `json:"key"`
	Status FrameStatus `json:"status"`
	Bytes  int         `json:"bytes,omitempty"`
	Width  int         `json:"width,omitempty"`
	Height int         `json:"height,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// PageResult holds the frames of one attempted page. Error is set when the
// page was aborted before any upload.
type PageResult struct {
	Name   string        `json:"name"`
	Frames []FrameResult `json:"frames"`
	Error  string        `json:"error,omitempty"`
}

type SkippedPage struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Report aggregates the outcome of one sync run
type Report struct {
	RunID      string        `json:"run_id"`
	Folder     string        `json:"folder,omitempty"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Pages      []PageResult  `json:"pages"`
	Skipped    []SkippedPage `json:"skipped,omitempty"`
}

// Target names what was processed: the folder filter or "all pages"
func (r *Report) Target() string {
	if r.Folder == "" {
		return "all pages"
	}
	return r.Folder
}

// Counts tallies frame outcomes across all pages
func (r *Report) Counts() (uploaded, skipped, failed int) {
	for _, p := range r.Pages {
		for _, f := range p.Frames {
			switch f.Status {
			case FrameUploaded:
				uploaded++
			case FrameSkipped:
				skipped++
			case FrameFailed:
				failed++
			}
		}
	}
	return uploaded, skipped, failed
}
