package models

// MissionEntry is one completed reflection on one article. newsTitle,
// newsCategory and opinionOptions are denormalized snapshots so historical
// display stays correct even if classification rules change later.
type MissionEntry struct {
	ID             string   `json:"id"`
	Date           string   `json:"date"`
	NewsID         string   `json:"newsId"`
	NewsTitle      string   `json:"newsTitle"`
	NewsCategory   Category `json:"newsCategory"`
	Summary        string   `json:"summary"`
	Choice         *int     `json:"choice"`
	Reason         string   `json:"reason"`
	Word           string   `json:"word"`
	OpinionOptions []string `json:"opinionOptions"`
}

// DefaultOpinionOptions is the snapshot fallback for entries persisted
// before opinion options were stored alongside them.
var DefaultOpinionOptions = []string{"찬성한다", "반대한다", "기타 의견이 있다"}

// ProgressStats is the gamified progress record for the (single) user.
// Level is always floor(xp/500)+1; it is recomputed, never trusted from
// storage.
type ProgressStats struct {
	Streak   int    `json:"streak"`
	Total    int    `json:"total"`
	XP       int    `json:"xp"`
	Level    int    `json:"level"`
	LastDate string `json:"lastDate"`
}

// LevelForXP derives the level from cumulative XP.
func LevelForXP(xp int) int {
	return xp/500 + 1
}
