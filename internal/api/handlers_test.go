package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jiyul/junior-insight/internal/cache"
	"github.com/jiyul/junior-insight/internal/config"
	"github.com/jiyul/junior-insight/internal/feed"
	"github.com/jiyul/junior-insight/internal/mission"
	"github.com/jiyul/junior-insight/internal/models"
	"github.com/jiyul/junior-insight/internal/news"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	doc := models.PrebuiltFeed{
		Date: time.Now().Format("2006-01-02"),
		Articles: []models.PrebuiltArticle{
			{Title: "협상 타결 임박", Summary: "요약문", URL: "https://news.example.com/1"},
			{Title: "코스피 사상 최고", Summary: "요약문", URL: "https://news.example.com/2"},
		},
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "news.json")
	if err := os.WriteFile(path, raw, 0644); err != nil {
		t.Fatal(err)
	}

	daily := cache.NewDaily(cache.NewMemoryStore(), "test", time.Hour)
	fetcher := feed.NewFetcher(200*time.Millisecond, 20)
	sources := feed.Sources{Feed: "http://127.0.0.1:1/rss"}
	newsSvc := news.NewService(daily, fetcher, feed.NewPrebuilt(path, time.Second), sources, 6)

	missionSvc, err := mission.NewService(context.Background(), nil, "jiyul")
	if err != nil {
		t.Fatal(err)
	}

	app := fiber.New()
	SetupRoutes(app, &config.Config{AdminAPIKey: "secret"}, newsSvc, missionSvc)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any, header map[string]string) (*http.Response, map[string]json.RawMessage) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	payload := map[string]json.RawMessage{}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			t.Fatalf("response is not a JSON object: %s", raw)
		}
	}
	return resp, payload
}

func todaysFirstArticle(t *testing.T, app *fiber.App) models.Article {
	t.Helper()
	resp, payload := doJSON(t, app, http.MethodGet, "/api/v1/news", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /news status = %d", resp.StatusCode)
	}
	var items []models.Article
	if err := json.Unmarshal(payload["items"], &items); err != nil {
		t.Fatal(err)
	}
	if len(items) == 0 {
		t.Fatal("no articles served")
	}
	return items[0]
}

func TestHealthCheck(t *testing.T) {
	app := newTestApp(t)
	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/health", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestGetNews(t *testing.T) {
	app := newTestApp(t)
	article := todaysFirstArticle(t, app)
	if article.ID == "" || article.Title == "" {
		t.Errorf("article = %+v, want id and title populated", article)
	}
	if len(article.OpinionOptions) != 3 {
		t.Errorf("opinion options = %d, want 3", len(article.OpinionOptions))
	}
}

func TestSubmitMission(t *testing.T) {
	app := newTestApp(t)
	article := todaysFirstArticle(t, app)

	choice := 0
	resp, payload := doJSON(t, app, http.MethodPost, "/api/v1/missions", map[string]any{
		"newsId":  article.ID,
		"summary": strings.Repeat("요", 20),
		"choice":  choice,
		"reason":  strings.Repeat("이", 15),
		"word":    "협상",
	}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body = %v", resp.StatusCode, payload)
	}

	var gained int
	if err := json.Unmarshal(payload["xpGained"], &gained); err != nil {
		t.Fatal(err)
	}
	if gained != 15 {
		t.Errorf("xpGained = %d, want 15", gained)
	}

	// The history and stats reflect the submission
	resp, payload = doJSON(t, app, http.MethodGet, "/api/v1/missions", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /missions status = %d", resp.StatusCode)
	}
	var total int
	if err := json.Unmarshal(payload["total"], &total); err != nil {
		t.Fatal(err)
	}
	if total != 1 {
		t.Errorf("missions total = %d, want 1", total)
	}

	resp, payload = doJSON(t, app, http.MethodGet, "/api/v1/stats", nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /stats status = %d", resp.StatusCode)
	}
	var xp int
	if err := json.Unmarshal(payload["xp"], &xp); err != nil {
		t.Fatal(err)
	}
	if xp != 15 {
		t.Errorf("xp = %d, want 15", xp)
	}
}

func TestSubmitMissionUnknownArticle(t *testing.T) {
	app := newTestApp(t)
	todaysFirstArticle(t, app)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/missions", map[string]any{
		"newsId":  "does-not-exist",
		"summary": "요약",
		"choice":  0,
		"reason":  "이유",
		"word":    "단어",
	}, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestSubmitMissionMissingNewsID(t *testing.T) {
	app := newTestApp(t)
	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/missions", map[string]any{
		"summary": "요약",
	}, nil)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
}

func TestSubmitMissionIncompleteFields(t *testing.T) {
	app := newTestApp(t)
	article := todaysFirstArticle(t, app)

	resp, payload := doJSON(t, app, http.MethodPost, "/api/v1/missions", map[string]any{
		"newsId": article.ID,
	}, nil)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	var msg string
	if err := json.Unmarshal(payload["error"], &msg); err != nil {
		t.Fatal(err)
	}
	if msg != mission.ErrSummaryRequired.Error() {
		t.Errorf("error = %q, want the field-specific message", msg)
	}
}

func TestAdminRefreshAuth(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/admin/refresh", nil, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no key: status = %d, want 401", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/admin/refresh", nil, map[string]string{"X-API-Key": "wrong"})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("wrong key: status = %d, want 403", resp.StatusCode)
	}

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/admin/refresh", nil, map[string]string{"X-API-Key": "secret"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("right key: status = %d, want 200", resp.StatusCode)
	}
}

func TestUnknownEndpoint(t *testing.T) {
	app := newTestApp(t)
	resp, _ := doJSON(t, app, http.MethodGet, "/api/v1/nope", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
