package mission

import (
	"context"
	"sync"
	"time"

	"github.com/jiyul/junior-insight/internal/logger"
	"github.com/jiyul/junior-insight/internal/models"
	"github.com/jiyul/junior-insight/internal/storage"
)

// Service owns the in-memory mission state for the session and mirrors it
// into the row store. Persistence is write-behind: a failed write is logged
// and swallowed, never rolled back into the already-applied state.
type Service struct {
	mu      sync.Mutex
	entries []models.MissionEntry
	stats   models.ProgressStats
	store   *storage.Store
	userID  string
	now     func() time.Time
}

// NewService loads the user's history and stats from the store. A nil store
// starts an empty in-memory session.
func NewService(ctx context.Context, store *storage.Store, userID string) (*Service, error) {
	s := &Service{
		store:  store,
		userID: userID,
		now:    time.Now,
		stats:  models.ProgressStats{Level: 1},
	}
	if store == nil {
		return s, nil
	}

	entries, err := store.ListEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.entries = entries

	if stats, ok, err := store.GetStats(ctx, userID); err != nil {
		return nil, err
	} else if ok {
		s.stats = stats
	}
	return s, nil
}

// Submit validates and applies one mission submission, then persists the
// result fire-and-forget.
func (s *Service) Submit(sub Submission) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := Apply(s.stats, s.entries, sub, s.now())
	if err != nil {
		return Result{}, err
	}

	s.stats = result.Stats
	s.entries = result.Entries
	s.persist(result)
	return result, nil
}

// Entries returns the mission history, newest first.
func (s *Service) Entries() []models.MissionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MissionEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Stats returns the current progress stats.
func (s *Service) Stats() models.ProgressStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func (s *Service) persist(result Result) {
	if s.store == nil {
		return
	}
	entry, stats, userID := result.Entry, result.Stats, s.userID
	go func() {
		log := logger.Get()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.store.UpsertEntry(ctx, userID, entry); err != nil {
			log.Warn().Err(err).Str("news_id", entry.NewsID).Msg("Mission entry write failed")
		}
		if err := s.store.UpsertStats(ctx, userID, stats); err != nil {
			log.Warn().Err(err).Msg("Progress stats write failed")
		}
	}()
}
