package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jiyul/junior-insight/internal/logger"
	"github.com/jiyul/junior-insight/internal/models"
)

// Prebuilt loads the pre-generated daily feed document produced by the
// out-of-band batch job. The document is preferred over a live fetch, but
// only when its embedded date matches today.
type Prebuilt struct {
	client   *resty.Client
	location string
}

// NewPrebuilt returns a loader for the given location: an http(s) URL or a
// local file path. An empty location disables the prebuilt path.
func NewPrebuilt(location string, timeout time.Duration) *Prebuilt {
	return &Prebuilt{
		client:   resty.New().SetTimeout(timeout),
		location: location,
	}
}

// LoadDaily returns today's pre-generated article set, or ok=false when the
// document is unavailable, malformed, or dated. Failures here never abort
// the pipeline; the caller falls through to the live fetch.
func (p *Prebuilt) LoadDaily(ctx context.Context, now time.Time) ([]models.Article, bool) {
	if p == nil || p.location == "" {
		return nil, false
	}
	log := logger.Get()

	raw, err := p.read(ctx)
	if err != nil {
		log.Debug().Err(err).Str("location", p.location).Msg("Prebuilt feed unavailable")
		return nil, false
	}

	var doc models.PrebuiltFeed
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Warn().Err(err).Str("location", p.location).Msg("Prebuilt feed is malformed")
		return nil, false
	}

	today := now.Format(dateLayout)
	if doc.Date != today {
		log.Debug().Str("doc_date", doc.Date).Str("today", today).Msg("Prebuilt feed is dated, falling back to live fetch")
		return nil, false
	}

	articles := make([]models.Article, 0, len(doc.Articles))
	for i, rec := range doc.Articles {
		article, ok := NormalizePrebuilt(rec, now)
		if !ok {
			continue
		}
		if article.Importance == 0 {
			article.Importance = importanceAt(i)
		}
		articles = append(articles, article)
	}
	if len(articles) == 0 {
		return nil, false
	}
	return articles, true
}

func (p *Prebuilt) read(ctx context.Context) ([]byte, error) {
	if strings.HasPrefix(p.location, "http://") || strings.HasPrefix(p.location, "https://") {
		resp, err := p.client.R().SetContext(ctx).Get(p.location)
		if err != nil {
			return nil, err
		}
		if !resp.IsSuccess() {
			return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode(), p.location)
		}
		return resp.Body(), nil
	}
	return os.ReadFile(p.location)
}
