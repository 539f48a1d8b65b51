package feed

import (
	"html"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/jiyul/junior-insight/internal/classify"
	"github.com/jiyul/junior-insight/internal/models"
	"github.com/jiyul/junior-insight/internal/utils"
)

const (
	dateLayout    = "2006-01-02"
	defaultSource = "Google 뉴스"
	maxDetailLen  = 200
)

var stripPolicy = bluemonday.StrictPolicy()

// Normalize converts a raw RSS item into the canonical article shape.
// Items without a title are dropped (ok=false): partial feed success is
// preferred over total failure.
func Normalize(item *gofeed.Item, now time.Time) (models.Article, bool) {
	rawTitle := strings.TrimSpace(item.Title)
	if rawTitle == "" {
		return models.Article{}, false
	}

	title, source := SplitSourceSuffix(rawTitle)
	link := strings.TrimSpace(item.Link)

	date := now.Format(dateLayout)
	if item.PublishedParsed != nil {
		date = item.PublishedParsed.Format(dateLayout)
	}

	category := classify.Title(title)

	return models.Article{
		ID:             utils.ArticleID(link, title, date),
		Title:          title,
		Source:         source,
		Category:       category,
		Detail:         detailFor(title, source, category, item.Description),
		URL:            link,
		Date:           date,
		OpinionOptions: classify.OpinionOptions(category),
	}, true
}

// NormalizePrebuilt maps one record of the pre-generated feed document onto
// the canonical article shape. Pre-assigned category and summary win over
// re-derivation; the classifier runs only when the category is absent.
func NormalizePrebuilt(rec models.PrebuiltArticle, now time.Time) (models.Article, bool) {
	title := strings.TrimSpace(rec.Title)
	if title == "" {
		return models.Article{}, false
	}

	category := models.Category(rec.Category)
	if !category.Valid() {
		category = classify.Title(title)
	}

	source := strings.TrimSpace(rec.Source)
	if source == "" {
		source = defaultSource
	}

	date := rec.Date
	if date == "" {
		date = now.Format(dateLayout)
	}

	summary := strings.TrimSpace(rec.Summary)
	if summary == "" {
		summary = title
	}

	id := rec.ID
	if id == "" {
		id = utils.ArticleID(rec.URL, title, date)
	}

	var enrichment *models.Enrichment
	if rec.TranslatedTitle != "" || len(rec.Keywords) > 0 || rec.Difficulty > 0 {
		enrichment = &models.Enrichment{
			TranslatedTitle: rec.TranslatedTitle,
			Keywords:        rec.Keywords,
			Difficulty:      rec.Difficulty,
		}
	}

	return models.Article{
		ID:             id,
		Title:          title,
		Source:         source,
		Category:       category,
		Detail:         []string{summary},
		URL:            rec.URL,
		Date:           date,
		Importance:     rec.Importance,
		OpinionOptions: classify.OpinionOptions(category),
		Enrichment:     enrichment,
	}, true
}

// SplitSourceSuffix splits a raw headline on the last " - " separator into
// the headline proper and the publisher name. Headlines without the
// separator keep the whole string and get the default source.
func SplitSourceSuffix(raw string) (title, source string) {
	idx := strings.LastIndex(raw, " - ")
	if idx <= 0 {
		return strings.TrimSpace(raw), defaultSource
	}
	return strings.TrimSpace(raw[:idx]), strings.TrimSpace(raw[idx+3:])
}

// detailFor builds the article synopsis. When the description carries
// related-article links a structured multi-sentence brief is generated;
// otherwise the HTML-stripped description is truncated, with the title as a
// last resort.
func detailFor(title, source string, category models.Category, descHTML string) []string {
	if related := RelatedHeadlines(descHTML); len(related) > 0 {
		return BuildBrief(title, source, category, related)
	}
	synopsis := truncateRunes(StripHTML(descHTML), maxDetailLen)
	if synopsis == "" {
		synopsis = title
	}
	return []string{synopsis}
}

// StripHTML removes markup, decodes HTML entities and collapses whitespace.
func StripHTML(input string) string {
	cleaned := stripPolicy.Sanitize(input)
	cleaned = html.UnescapeString(cleaned)
	return strings.Join(strings.Fields(cleaned), " ")
}

// RelatedHeadlines extracts the related-article titles embedded as anchors
// in an RSS description. Very short anchor texts are navigation noise.
func RelatedHeadlines(descHTML string) []string {
	if strings.TrimSpace(descHTML) == "" {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(descHTML))
	if err != nil {
		return nil
	}
	var related []string
	doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
		txt := strings.TrimSpace(sel.Text())
		if utf8.RuneCountInString(txt) > 4 {
			related = append(related, txt)
		}
	})
	return related
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
