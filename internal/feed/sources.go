package feed

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultFeedURL = "https://news.google.com/rss?hl=ko&gl=KR&ceid=KR:ko"

// Sources is the YAML config structure listing the syndication endpoint and
// the CORS relay mirrors used when the endpoint cannot be reached directly.
//
//	feed: https://news.google.com/rss?...
//	mirrors:
//	  - https://api.allorigins.win/raw?url=%s
type Sources struct {
	Feed    string   `yaml:"feed"`
	Mirrors []string `yaml:"mirrors"`
}

// DefaultSources returns the built-in source set.
func DefaultSources() Sources {
	return Sources{
		Feed: defaultFeedURL,
		Mirrors: []string{
			"https://api.allorigins.win/raw?url=%s",
			"https://corsproxy.io/?%s",
		},
	}
}

// LoadSources reads the feed source list from a YAML file. A missing file
// falls back to the defaults.
func LoadSources(path string) (Sources, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSources(), nil
		}
		return Sources{}, fmt.Errorf("failed to open sources file: %w", err)
	}
	defer f.Close()

	var src Sources
	if err := yaml.NewDecoder(f).Decode(&src); err != nil {
		return Sources{}, fmt.Errorf("failed to parse sources file: %w", err)
	}
	if src.Feed == "" {
		src.Feed = defaultFeedURL
	}
	return src, nil
}

// AttemptURLs expands the source set into the ordered list of URLs to try:
// the endpoint itself first, then each mirror in sequence.
func (s Sources) AttemptURLs() []string {
	urls := []string{s.Feed}
	escaped := url.QueryEscape(s.Feed)
	for _, m := range s.Mirrors {
		if strings.Contains(m, "%s") {
			urls = append(urls, fmt.Sprintf(m, escaped))
		} else {
			urls = append(urls, m+escaped)
		}
	}
	return urls
}
