package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jiyul/junior-insight/internal/config"
	"github.com/jiyul/junior-insight/internal/feed"
	"github.com/jiyul/junior-insight/internal/logger"
	"github.com/jiyul/junior-insight/internal/models"
	"github.com/jiyul/junior-insight/internal/publish"
)

// fetchnews is the out-of-band batch job: it fetches the article pool,
// selects the daily set, writes the pre-generated feed document to disk and
// optionally publishes it to R2 for the app server to pick up.
func main() {
	cfg := config.Load()

	if err := logger.Init(logger.Config{
		Level:  cfg.LogLevel,
		Output: "stdout",
		Pretty: cfg.Env == "development",
	}); err != nil {
		panic(err)
	}
	log := logger.Get()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	sources, err := feed.LoadSources(cfg.SourcesPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.SourcesPath).Msg("Failed to load feed sources")
	}

	now := time.Now()
	fetcher := feed.NewFetcher(cfg.FeedTimeout, cfg.PoolSize)
	pool, err := fetcher.FetchPool(ctx, sources, now)
	if err != nil {
		log.Fatal().Err(err).Msg("Feed fetch failed")
	}

	selected := feed.Select(pool, cfg.DailySize)
	log.Info().Int("pool", len(pool)).Int("selected", len(selected)).Msg("Selected daily article set")

	doc := models.PrebuiltFeed{
		FetchedAt: now,
		Date:      now.Format("2006-01-02"),
		Articles:  make([]models.PrebuiltArticle, 0, len(selected)),
	}
	for _, a := range selected {
		doc.Articles = append(doc.Articles, toPrebuilt(a))
	}

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal feed document")
	}

	if err := writeFile(cfg.PrebuiltOutPath, body); err != nil {
		log.Fatal().Err(err).Str("path", cfg.PrebuiltOutPath).Msg("Failed to write feed document")
	}
	log.Info().Str("path", cfg.PrebuiltOutPath).Int("articles", len(doc.Articles)).Msg("Wrote feed document")

	publisher, err := publish.NewR2Publisher(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize R2 publisher")
	}
	if publisher == nil {
		log.Info().Msg("R2 publishing not configured, skipping upload")
		return
	}
	if err := publisher.Publish(ctx, "news.json", body); err != nil {
		log.Fatal().Err(err).Msg("Failed to publish feed document")
	}
}

func toPrebuilt(a models.Article) models.PrebuiltArticle {
	rec := models.PrebuiltArticle{
		ID:         a.ID,
		Title:      a.Title,
		Source:     a.Source,
		Category:   string(a.Category),
		Summary:    strings.Join(a.Detail, " "),
		URL:        a.URL,
		Date:       a.Date,
		Importance: a.Importance,
	}
	if a.Enrichment != nil {
		rec.TranslatedTitle = a.Enrichment.TranslatedTitle
		rec.Keywords = a.Enrichment.Keywords
		rec.Difficulty = a.Enrichment.Difficulty
	}
	return rec
}

func writeFile(path string, body []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, body, 0644)
}
