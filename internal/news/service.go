package news

import (
	"context"
	"time"

	"github.com/jiyul/junior-insight/internal/cache"
	"github.com/jiyul/junior-insight/internal/feed"
	"github.com/jiyul/junior-insight/internal/logger"
	"github.com/jiyul/junior-insight/internal/models"
)

// Service owns the daily article pipeline: cache first, then the
// pre-generated feed document, then a live fetch through the mirrors.
type Service struct {
	daily     *cache.Daily
	fetcher   *feed.Fetcher
	prebuilt  *feed.Prebuilt
	sources   feed.Sources
	dailySize int
	now       func() time.Time
}

func NewService(daily *cache.Daily, fetcher *feed.Fetcher, prebuilt *feed.Prebuilt, sources feed.Sources, dailySize int) *Service {
	return &Service{
		daily:     daily,
		fetcher:   fetcher,
		prebuilt:  prebuilt,
		sources:   sources,
		dailySize: dailySize,
		now:       time.Now,
	}
}

// TodaysArticles returns the current daily set, fetching it when the cache
// is empty or the 06:00 refresh boundary has been crossed. Fetch failures
// propagate to the caller for display; they are never retried on a timer.
func (s *Service) TodaysArticles(ctx context.Context) ([]models.Article, error) {
	now := s.now()
	if articles, ok := s.daily.Load(ctx, now); ok {
		return articles, nil
	}
	return s.refresh(ctx, now)
}

// Refresh bypasses the cache and re-runs the pipeline.
func (s *Service) Refresh(ctx context.Context) ([]models.Article, error) {
	return s.refresh(ctx, s.now())
}

func (s *Service) refresh(ctx context.Context, now time.Time) ([]models.Article, error) {
	log := logger.Get()

	if articles, ok := s.prebuilt.LoadDaily(ctx, now); ok {
		log.Info().Int("articles", len(articles)).Msg("Serving pre-generated daily feed")
		s.daily.Save(ctx, now, articles)
		return articles, nil
	}

	pool, err := s.fetcher.FetchPool(ctx, s.sources, now)
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		// A newer invocation owns the session now; drop this result.
		return nil, ctx.Err()
	}

	selected := feed.Select(pool, s.dailySize)
	log.Info().Int("pool", len(pool)).Int("selected", len(selected)).Msg("Selected daily article set")

	s.daily.Save(ctx, now, selected)
	return selected, nil
}
