package utils

import "testing"

func TestArticleID(t *testing.T) {
	url := "https://news.example.com/articles/1"

	a := ArticleID(url, "제목", "2026-08-31")
	b := ArticleID(url, "다른 제목", "2026-09-01")
	if a != b {
		t.Error("same URL should yield the same ID regardless of title and date")
	}

	c := ArticleID("", "제목", "2026-08-31")
	d := ArticleID("", "제목", "2026-08-31")
	if c != d {
		t.Error("same title+date should yield the same ID")
	}

	e := ArticleID("", "제목", "2026-09-01")
	if c == e {
		t.Error("different dates should yield different IDs when no URL is known")
	}

	if a == c {
		t.Error("URL-derived and title-derived IDs should differ")
	}
}
