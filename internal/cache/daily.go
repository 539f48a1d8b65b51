package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jiyul/junior-insight/internal/logger"
	"github.com/jiyul/junior-insight/internal/models"
)

const keyPrefix = "ji:"

// refreshHour is the local hour at which "today" rolls over. The product is
// a morning briefing, so the boundary is 06:00, not midnight.
const refreshHour = 6

// Entry is the serialized daily cache record.
type Entry struct {
	FetchedAt time.Time        `json:"fetchedAt"`
	Articles  []models.Article `json:"articles"`
}

// Daily is the versioned once-a-day article cache. The version tag is part
// of the key, so shipping a classifier or selection change under a new
// version makes every previous cache entry invisible (and Initialize purges
// it).
type Daily struct {
	store   Store
	version string
	ttl     time.Duration
}

func NewDaily(store Store, version string, ttl time.Duration) *Daily {
	return &Daily{store: store, version: version, ttl: ttl}
}

func (d *Daily) key() string {
	return keyPrefix + d.version + ":daily"
}

// RefreshBoundary returns the most recent 06:00 local instant at or before
// now. A cache entry is valid only when it was fetched at or after this
// boundary.
func RefreshBoundary(now time.Time) time.Time {
	b := time.Date(now.Year(), now.Month(), now.Day(), refreshHour, 0, 0, 0, now.Location())
	if now.Before(b) {
		b = b.AddDate(0, 0, -1)
	}
	return b
}

// Load returns the cached daily set when it is still fresh. Read errors and
// stale or malformed entries are all cache misses, never failures.
func (d *Daily) Load(ctx context.Context, now time.Time) ([]models.Article, bool) {
	log := logger.Get()

	raw, ok, err := d.store.Get(ctx, d.key())
	if err != nil {
		log.Warn().Err(err).Msg("Daily cache read failed")
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		log.Warn().Err(err).Msg("Daily cache entry is malformed")
		return nil, false
	}

	if entry.FetchedAt.Before(RefreshBoundary(now)) {
		log.Debug().Time("fetched_at", entry.FetchedAt).Msg("Daily cache entry is stale")
		return nil, false
	}
	return entry.Articles, true
}

// Save writes the daily set. Write failures are logged and swallowed; they
// must never block the in-memory result from being served.
func (d *Daily) Save(ctx context.Context, now time.Time, articles []models.Article) {
	raw, err := json.Marshal(Entry{FetchedAt: now, Articles: articles})
	if err != nil {
		logger.Get().Error().Err(err).Msg("Failed to marshal daily cache entry")
		return
	}
	if err := d.store.Set(ctx, d.key(), raw, d.ttl); err != nil {
		logger.Get().Warn().Err(err).Msg("Daily cache write failed")
	}
}

// Initialize purges every cache key belonging to a different version. It is
// called once at startup with the storage collaborator injected; nothing
// happens at package load time.
func Initialize(ctx context.Context, store Store, version string) error {
	keys, err := store.Keys(ctx, keyPrefix+"*")
	if err != nil {
		return err
	}

	keep := keyPrefix + version + ":"
	var stale []string
	for _, k := range keys {
		if !strings.HasPrefix(k, keep) {
			stale = append(stale, k)
		}
	}
	if len(stale) == 0 {
		return nil
	}

	logger.Get().Info().Int("purged", len(stale)).Str("version", version).Msg("Purging previous-version cache entries")
	return store.Delete(ctx, stale...)
}
