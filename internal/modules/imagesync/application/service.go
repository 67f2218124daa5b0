package application

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	designDomain "github.com/saransh1220/framesync/internal/modules/design/domain"
	"github.com/saransh1220/framesync/internal/modules/imagesync/domain"
	"github.com/saransh1220/framesync/internal/shared/logger"
	"golang.org/x/sync/errgroup"
)

// DesignSource is the remote design file API
type DesignSource interface {
	FetchFile(ctx context.Context) (*designDomain.File, error)
	FetchImageURLs(ctx context.Context, ids []string) (map[string]string, error)
	DownloadImage(ctx context.Context, url string) ([]byte, error)
}

// ImageStore uploads rendered images to object storage
type ImageStore interface {
	UploadWithKey(ctx context.Context, body io.Reader, key string, contentType string) error
}

type SyncService interface {
	// Sync uploads the renders of every retained page, or only of the page
	// named folder when it is not empty. Only a failure to fetch the file
	// tree is returned as an error; page and frame failures land in the report.
	Sync(ctx context.Context, folder string) (*domain.Report, error)
}

// Options tunes a SyncService
type Options struct {
	// Concurrency bounds in-flight frames per page; 1 uploads strictly in
	// page order. Frames sharing a key are never uploaded concurrently.
	Concurrency int
	// SkipPage excludes pages by name; defaults to domain.HasEmoji
	SkipPage domain.PageFilter
}

type syncService struct {
	source      DesignSource
	store       ImageStore
	concurrency int
	skipPage    domain.PageFilter
}

func NewSyncService(source DesignSource, store ImageStore, opts Options) SyncService {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 1
	}
	if opts.SkipPage == nil {
		opts.SkipPage = domain.HasEmoji
	}
	return &syncService{
		source:      source,
		store:       store,
		concurrency: opts.Concurrency,
		skipPage:    opts.SkipPage,
	}
}

func (s *syncService) Sync(ctx context.Context, folder string) (*domain.Report, error) {
	report := &domain.Report{
		RunID:     uuid.NewString(),
		Folder:    folder,
		StartedAt: time.Now(),
		Pages:     []domain.PageResult{},
	}
	log := logger.Log.With().Str("run_id", report.RunID).Str("target", report.Target()).Logger()

	file, err := s.source.FetchFile(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch design file")
		return nil, fmt.Errorf("failed to fetch design file: %w", err)
	}

	for _, page := range file.Pages() {
		if folder != "" && page.Name != folder {
			continue
		}
		if s.skipPage(page.Name) {
			log.Info().Str("page", page.Name).Msg("page skipped, name contains emoji")
			report.Skipped = append(report.Skipped, domain.SkippedPage{Name: page.Name, Reason: domain.SkipReasonEmoji})
			pagesTotal.WithLabelValues("skipped").Inc()
			continue
		}
		report.Pages = append(report.Pages, s.syncFrames(ctx, log, page))
	}

	report.FinishedAt = time.Now()
	uploaded, skipped, failed := report.Counts()
	log.Info().
		Int("pages", len(report.Pages)).
		Int("uploaded", uploaded).
		Int("skipped", skipped).
		Int("failed", failed).
		Dur("took", report.FinishedAt.Sub(report.StartedAt)).
		Msg("sync finished")
	return report, nil
}

// syncFrames uploads the renders of one page. A failed URL request aborts
// the page; frame failures are recorded and never stop their siblings.
func (s *syncService) syncFrames(ctx context.Context, log zerolog.Logger, page designDomain.Node) domain.PageResult {
	frames := page.Children
	result := domain.PageResult{Name: page.Name, Frames: []domain.FrameResult{}}
	if len(frames) == 0 {
		pagesTotal.WithLabelValues("synced").Inc()
		return result
	}

	urls, err := s.source.FetchImageURLs(ctx, page.FrameIDs())
	if err != nil {
		log.Error().Err(err).Str("page", page.Name).Msg("failed to fetch image urls, page aborted")
		result.Error = err.Error()
		pagesTotal.WithLabelValues("aborted").Inc()
		return result
	}

	// Each frame owns one slot, so the report keeps frame order
	result.Frames = make([]domain.FrameResult, len(frames))
	run := func(i int) {
		result.Frames[i] = s.syncFrame(ctx, log, frames[i], page.Name, urls)
	}

	if s.concurrency == 1 {
		for i := range frames {
			run(i)
		}
		pagesTotal.WithLabelValues("synced").Inc()
		return result
	}

	// Frames that map to the same key upload one after another in page
	// order, so the last of them always ends up in the bucket
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, chain := range framesByKey(frames, page.Name) {
		g.Go(func() error {
			for _, i := range chain {
				run(i)
			}
			return nil
		})
	}
	g.Wait()

	pagesTotal.WithLabelValues("synced").Inc()
	return result
}

// framesByKey groups frame indexes by object key, keeping page order both
// across and within groups
func framesByKey(frames []designDomain.Node, pageName string) [][]int {
	var chains [][]int
	slot := make(map[string]int, len(frames))
	for i, f := range frames {
		key := domain.ObjectKey(pageName, f.Name)
		n, ok := slot[key]
		if !ok {
			n = len(chains)
			slot[key] = n
			chains = append(chains, nil)
		}
		chains[n] = append(chains[n], i)
	}
	return chains
}

func (s *syncService) syncFrame(ctx context.Context, log zerolog.Logger, frame designDomain.Node, pageName string, urls map[string]string) domain.FrameResult {
	res := domain.FrameResult{
		ID:   frame.ID,
		Name: frame.Name,
		Key:  domain.ObjectKey(pageName, frame.Name),
	}
	flog := log.With().Str("page", pageName).Str("frame", frame.Name).Str("key", res.Key).Logger()

	imageURL, ok := urls[frame.ID]
	if !ok {
		flog.Warn().Msg("no image url for frame")
		res.Status = domain.FrameSkipped
		res.Error = designDomain.ErrNoImageURL.Error()
		framesTotal.WithLabelValues(string(domain.FrameSkipped)).Inc()
		return res
	}

	fail := func(err error) domain.FrameResult {
		flog.Error().Err(err).Msg("failed to upload frame image")
		res.Status = domain.FrameFailed
		res.Error = err.Error()
		framesTotal.WithLabelValues(string(domain.FrameFailed)).Inc()
		return res
	}

	data, err := s.source.DownloadImage(ctx, imageURL)
	if err != nil {
		return fail(err)
	}

	// Dimensions are informational; the bytes are stored as downloaded
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		res.Width = cfg.Width
		res.Height = cfg.Height
	} else {
		flog.Debug().Err(err).Msg("render dimensions unavailable")
	}

	if err := s.store.UploadWithKey(ctx, bytes.NewReader(data), res.Key, domain.ImageContentType); err != nil {
		return fail(err)
	}

	res.Status = domain.FrameUploaded
	res.Bytes = len(data)
	framesTotal.WithLabelValues(string(domain.FrameUploaded)).Inc()
	flog.Info().Int("bytes", res.Bytes).Msg("frame image uploaded")
	return res
}
