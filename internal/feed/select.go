package feed

import "github.com/jiyul/junior-insight/internal/models"

// Select picks the daily set from a larger candidate pool. The first
// target-1 articles are taken by feed order (a proxy for recency and
// prominence); if none of them is a World article, the remainder of the
// pool is scanned for the first World item to fill the last slot. When no
// World article exists anywhere, the first target articles are taken
// unconditionally; diversity is best-effort.
//
// Importance is assigned post-selection as max(60, 100-5*i); it weights
// display only and plays no part in selection.
func Select(pool []models.Article, target int) []models.Article {
	if target <= 0 {
		return nil
	}

	var selected []models.Article
	switch {
	case len(pool) <= target:
		selected = clone(pool)
	default:
		head := pool[:target-1]
		if hasWorld(head) {
			selected = clone(pool[:target])
		} else if w, ok := firstWorld(pool[target-1:]); ok {
			selected = append(clone(head), w)
		} else {
			selected = clone(pool[:target])
		}
	}

	for i := range selected {
		selected[i].Importance = importanceAt(i)
	}
	return selected
}

func hasWorld(articles []models.Article) bool {
	for _, a := range articles {
		if a.Category == models.CategoryWorld {
			return true
		}
	}
	return false
}

func firstWorld(articles []models.Article) (models.Article, bool) {
	for _, a := range articles {
		if a.Category == models.CategoryWorld {
			return a, true
		}
	}
	return models.Article{}, false
}

func importanceAt(i int) int {
	if v := 100 - 5*i; v > 60 {
		return v
	}
	return 60
}

func clone(articles []models.Article) []models.Article {
	out := make([]models.Article, len(articles))
	copy(out, articles)
	return out
}
