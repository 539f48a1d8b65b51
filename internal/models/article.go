package models

import "time"

// Category is the fixed topic taxonomy assigned to every article.
type Category string

const (
	CategoryTechEconomy Category = "Tech & Economy"
	CategoryEnvironment Category = "Environment"
	CategoryEconomy     Category = "Economy"
	CategorySociety     Category = "Society"
	CategoryWorld       Category = "World"
)

// Categories lists every valid category in display order.
var Categories = []Category{
	CategoryTechEconomy,
	CategoryEnvironment,
	CategoryEconomy,
	CategorySociety,
	CategoryWorld,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// Article is the canonical article shape served to the front-end.
// Articles are constructed once per fetch cycle and never mutated.
//
// ID is derived from the article URL (or title+date when no URL is known),
// never a sequential integer.
type Article struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Source         string   `json:"source"`
	Category       Category `json:"category"`
	Detail         []string `json:"detail"`
	URL            string   `json:"url"`
	Date           string   `json:"date"`
	Importance     int      `json:"importance"`
	OpinionOptions []string `json:"opinionOptions"`

	// Enrichment is present only on articles loaded from the pre-generated
	// feed document; live RSS articles carry the basic shape.
	Enrichment *Enrichment `json:"enrichment,omitempty"`
}

// Enrichment holds the extra fields the batch pipeline attaches to an
// article. It is a strict superset of the basic shape, never a replacement.
type Enrichment struct {
	TranslatedTitle string   `json:"translatedTitle,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
	Difficulty      int      `json:"difficulty,omitempty"`
}

// PrebuiltFeed is the pre-generated daily feed document produced by the
// out-of-band batch job.
type PrebuiltFeed struct {
	FetchedAt time.Time         `json:"fetchedAt"`
	Date      string            `json:"date"`
	Articles  []PrebuiltArticle `json:"articles"`
}

// PrebuiltArticle is one record of the pre-generated feed. Fields beyond the
// basic article shape are optional and map onto Enrichment.
type PrebuiltArticle struct {
	ID              string   `json:"id,omitempty"`
	Title           string   `json:"title"`
	TranslatedTitle string   `json:"title_en,omitempty"`
	Source          string   `json:"source"`
	Category        string   `json:"category,omitempty"`
	Summary         string   `json:"summary"`
	Keywords        []string `json:"keywords,omitempty"`
	Difficulty      int      `json:"difficulty,omitempty"`
	URL             string   `json:"url"`
	Date            string   `json:"date"`
	Importance      int      `json:"importance,omitempty"`
}
