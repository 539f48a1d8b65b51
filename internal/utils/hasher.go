package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash generates a SHA-256 hash of the input string
func Hash(input string) string {
	hasher := sha256.New()
	hasher.Write([]byte(input))
	return hex.EncodeToString(hasher.Sum(nil))
}

// ArticleID derives the stable identity for an article. It is a pure
// function of the canonical URL, or of title+date when no URL is known, so
// re-normalizing identical input always yields the same ID and IDs stay
// stable across fetch cycles and cache generations.
func ArticleID(url, title, date string) string {
	if url != "" {
		return Hash(url)
	}
	return Hash(title + "_" + date)
}
