package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/saransh1220/framesync/internal/modules/imagesync/domain"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
)

func printReport(w io.Writer, r *domain.Report) {
	fmt.Fprintf(w, "Sync %s: %s\n\n", r.RunID, r.Target())

	for _, p := range r.Skipped {
		warnColor.Fprintf(w, "skipped page %q (%s)\n", p.Name, p.Reason)
	}

	for _, p := range r.Pages {
		fmt.Fprintf(w, "%s\n", p.Name)
		if p.Error != "" {
			errColor.Fprintf(w, "  aborted: %s\n", p.Error)
			continue
		}
		for _, f := range p.Frames {
			switch f.Status {
			case domain.FrameUploaded:
				okColor.Fprintf(w, "  uploaded  %s (%dx%d, %d bytes)\n", f.Key, f.Width, f.Height, f.Bytes)
			case domain.FrameSkipped:
				warnColor.Fprintf(w, "  skipped   %s\n", f.Name)
			case domain.FrameFailed:
				errColor.Fprintf(w, "  failed    %s: %s\n", f.Key, f.Error)
			}
		}
	}

	uploaded, skipped, failed := r.Counts()
	fmt.Fprintf(w, "\n%d uploaded, %d skipped, %d failed\n", uploaded, skipped, failed)
}
