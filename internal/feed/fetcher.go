package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"

	"github.com/jiyul/junior-insight/internal/logger"
	"github.com/jiyul/junior-insight/internal/models"
)

// ErrAllMirrorsFailed is returned when neither the feed endpoint nor any of
// its relay mirrors produced a parseable document. It is surfaced to the
// caller for display; retry is manual, never automatic.
var ErrAllMirrorsFailed = errors.New("all feed mirrors failed")

// Fetcher retrieves the candidate article pool from the syndication
// endpoint, falling back through the relay mirrors strictly in sequence.
type Fetcher struct {
	client   *resty.Client
	parser   *gofeed.Parser
	poolSize int
}

func NewFetcher(timeout time.Duration, poolSize int) *Fetcher {
	return &Fetcher{
		client: resty.New().
			SetTimeout(timeout).
			SetHeader("User-Agent", "Mozilla/5.0 (compatible; JuniorInsight/1.0)"),
		parser:   gofeed.NewParser(),
		poolSize: poolSize,
	}
}

// FetchPool fetches, parses and normalizes the candidate pool. Mirrors are
// tried strictly one at a time so upstream relays never see duplicate load.
// Item-level failures are skipped; only a fully failed fetch is an error.
func (f *Fetcher) FetchPool(ctx context.Context, src Sources, now time.Time) ([]models.Article, error) {
	log := logger.Get()
	var lastErr error

	for _, u := range src.AttemptURLs() {
		parsed, err := f.fetchOne(ctx, u)
		if err != nil {
			log.Warn().Err(err).Str("url", u).Msg("Feed attempt failed, trying next mirror")
			lastErr = err
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		pool := f.normalizePool(parsed, now)
		log.Info().Int("pool_size", len(pool)).Str("url", u).Msg("Fetched candidate pool")
		return pool, nil
	}

	if lastErr == nil {
		lastErr = errors.New("no feed sources configured")
	}
	return nil, fmt.Errorf("%w: %v", ErrAllMirrorsFailed, lastErr)
}

func (f *Fetcher) fetchOne(ctx context.Context, url string) (*gofeed.Feed, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed from %s: %w", url, err)
	}
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode(), url)
	}

	parsed, err := f.parser.ParseString(string(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed from %s: %w", url, err)
	}
	return parsed, nil
}

func (f *Fetcher) normalizePool(parsed *gofeed.Feed, now time.Time) []models.Article {
	log := logger.Get()
	pool := make([]models.Article, 0, f.poolSize)
	for _, item := range parsed.Items {
		if len(pool) >= f.poolSize {
			break
		}
		article, ok := Normalize(item, now)
		if !ok {
			log.Debug().Str("link", item.Link).Msg("Dropping malformed feed item")
			continue
		}
		pool = append(pool, article)
	}
	return pool
}
