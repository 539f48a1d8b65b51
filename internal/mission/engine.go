package mission

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jiyul/junior-insight/internal/models"
)

// Validation errors, one per mission field, checked in fixed order.
var (
	ErrSummaryRequired = errors.New("기사를 요약해주세요")
	ErrChoiceRequired  = errors.New("의견을 선택해주세요")
	ErrChoiceInvalid   = errors.New("선택한 의견이 올바르지 않습니다")
	ErrReasonRequired  = errors.New("이유를 적어주세요")
	ErrWordRequired    = errors.New("단어를 적어주세요")
)

// XP scoring constants. A full submission earns between 7 and 15 XP.
const (
	wordXP           = 5
	shortFieldXP     = 1
	fullFieldXP      = 5
	summaryThreshold = 20
	reasonThreshold  = 15
	dateLayout       = "2006-01-02"
)

// Submission is one mission attempt for one article.
type Submission struct {
	NewsID         string
	NewsTitle      string
	NewsCategory   models.Category
	OpinionOptions []string
	Summary        string
	Choice         *int
	Reason         string
	Word           string
}

// Result carries the state after a successful submission.
type Result struct {
	Stats     models.ProgressStats  `json:"stats"`
	Entries   []models.MissionEntry `json:"entries"`
	Entry     models.MissionEntry   `json:"entry"`
	XPGained  int                   `json:"xpGained"`
	LeveledUp bool                  `json:"leveledUp"`
}

// Validate checks the submission field by field, in fixed order, returning
// the first missing field's specific error.
func Validate(s Submission) error {
	if strings.TrimSpace(s.Summary) == "" {
		return ErrSummaryRequired
	}
	if s.Choice == nil {
		return ErrChoiceRequired
	}
	if *s.Choice < 0 || *s.Choice >= len(s.OpinionOptions) {
		return ErrChoiceInvalid
	}
	if strings.TrimSpace(s.Reason) == "" {
		return ErrReasonRequired
	}
	if strings.TrimSpace(s.Word) == "" {
		return ErrWordRequired
	}
	return nil
}

// Score computes the XP award for a validated submission: 5 for the
// collected word, plus 1 or 5 each for the summary and the reason depending
// on whether they meet their length thresholds. Lengths are counted in
// runes, not bytes, since the text is Korean.
func Score(summary, reason string) int {
	xp := wordXP
	if utf8.RuneCountInString(strings.TrimSpace(summary)) >= summaryThreshold {
		xp += fullFieldXP
	} else {
		xp += shortFieldXP
	}
	if utf8.RuneCountInString(strings.TrimSpace(reason)) >= reasonThreshold {
		xp += fullFieldXP
	} else {
		xp += shortFieldXP
	}
	return xp
}

// NextStreak computes the streak transition for a submission made today.
// Same day: unchanged (resubmission does not inflate the streak). Exactly
// yesterday: +1. Anything else, including a first-ever submission: reset
// to 1.
func NextStreak(prev int, lastDate string, today time.Time) int {
	switch lastDate {
	case today.Format(dateLayout):
		if prev < 1 {
			return 1
		}
		return prev
	case today.AddDate(0, 0, -1).Format(dateLayout):
		return prev + 1
	default:
		return 1
	}
}

// Apply validates the submission and folds it into the current state. The
// entry list is upserted by newsId: an existing entry is replaced in place,
// a new one is prepended. The lifetime total only counts new entries.
func Apply(stats models.ProgressStats, entries []models.MissionEntry, s Submission, now time.Time) (Result, error) {
	if err := Validate(s); err != nil {
		return Result{}, err
	}

	today := now.Format(dateLayout)
	options := s.OpinionOptions
	if len(options) == 0 {
		options = models.DefaultOpinionOptions
	}

	entry := models.MissionEntry{
		ID:             strconv.FormatInt(now.UnixMilli(), 10),
		Date:           today,
		NewsID:         s.NewsID,
		NewsTitle:      s.NewsTitle,
		NewsCategory:   s.NewsCategory,
		Summary:        strings.TrimSpace(s.Summary),
		Choice:         s.Choice,
		Reason:         strings.TrimSpace(s.Reason),
		Word:           strings.TrimSpace(s.Word),
		OpinionOptions: options,
	}

	updated := make([]models.MissionEntry, 0, len(entries)+1)
	replaced := false
	for _, e := range entries {
		if e.NewsID == s.NewsID {
			// Keep the original entry id so history links stay stable.
			entry.ID = e.ID
			updated = append(updated, entry)
			replaced = true
			continue
		}
		updated = append(updated, e)
	}
	if !replaced {
		updated = append([]models.MissionEntry{entry}, updated...)
	}

	xp := Score(s.Summary, s.Reason)
	prevLevel := models.LevelForXP(stats.XP)

	next := stats
	next.XP += xp
	next.Level = models.LevelForXP(next.XP)
	next.Streak = NextStreak(stats.Streak, stats.LastDate, now)
	next.LastDate = today
	if !replaced {
		next.Total++
	}

	return Result{
		Stats:     next,
		Entries:   updated,
		Entry:     entry,
		XPGained:  xp,
		LeveledUp: next.Level > prevLevel,
	}, nil
}
