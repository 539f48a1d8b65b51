package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jiyul/junior-insight/internal/config"
	"github.com/jiyul/junior-insight/internal/feed"
	"github.com/jiyul/junior-insight/internal/logger"
	"github.com/jiyul/junior-insight/internal/middleware"
	"github.com/jiyul/junior-insight/internal/mission"
	"github.com/jiyul/junior-insight/internal/models"
	"github.com/jiyul/junior-insight/internal/news"
)

type Handlers struct {
	config    *config.Config
	news      *news.Service
	missions  *mission.Service
	validator *middleware.Validator
}

func NewHandlers(cfg *config.Config, newsSvc *news.Service, missionSvc *mission.Service) *Handlers {
	return &Handlers{
		config:    cfg,
		news:      newsSvc,
		missions:  missionSvc,
		validator: middleware.NewValidator(),
	}
}

// HealthCheck handles the /health endpoint
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": "1.0.0",
		"time":    time.Now().Format(time.RFC3339),
	})
}

// GetNews handles GET /api/v1/news. It returns today's article set, running
// the fetch pipeline when the cache is empty or stale.
func (h *Handlers) GetNews(c *fiber.Ctx) error {
	articles, err := h.news.TodaysArticles(c.Context())
	if err != nil {
		logger.Get().Error().Err(err).Msg("Error loading daily articles")
		status := fiber.StatusInternalServerError
		if errors.Is(err, feed.ErrAllMirrorsFailed) {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(fiber.Map{
			"error":     "뉴스를 불러오지 못했습니다. 잠시 후 다시 시도해주세요.",
			"retryable": true,
		})
	}

	return c.JSON(fiber.Map{
		"date":  time.Now().Format("2006-01-02"),
		"total": len(articles),
		"items": articles,
	})
}

// SubmitMissionRequest is the POST /api/v1/missions body.
type SubmitMissionRequest struct {
	NewsID  string `json:"newsId" validate:"required"`
	Summary string `json:"summary"`
	Choice  *int   `json:"choice"`
	Reason  string `json:"reason"`
	Word    string `json:"word"`
}

// SubmitMission handles POST /api/v1/missions. The article snapshot (title,
// category, opinion options) is taken from today's set, never from the
// client.
func (h *Handlers) SubmitMission(c *fiber.Ctx) error {
	var req SubmitMissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
			"msg":   err.Error(),
		})
	}
	if err := h.validator.Validate(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": middleware.Fields(err),
		})
	}

	article, ok := h.findArticle(c, req.NewsID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "News not found",
		})
	}

	result, err := h.missions.Submit(mission.Submission{
		NewsID:         article.ID,
		NewsTitle:      article.Title,
		NewsCategory:   article.Category,
		OpinionOptions: article.OpinionOptions,
		Summary:        req.Summary,
		Choice:         req.Choice,
		Reason:         req.Reason,
		Word:           req.Word,
	})
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	logger.Get().Info().
		Str("news_id", article.ID).
		Int("xp_gained", result.XPGained).
		Bool("leveled_up", result.LeveledUp).
		Msg("Mission submitted")

	return c.JSON(result)
}

// GetMissions handles GET /api/v1/missions
func (h *Handlers) GetMissions(c *fiber.Ctx) error {
	entries := h.missions.Entries()
	return c.JSON(fiber.Map{
		"total": len(entries),
		"items": entries,
	})
}

// GetStats handles GET /api/v1/stats
func (h *Handlers) GetStats(c *fiber.Ctx) error {
	return c.JSON(h.missions.Stats())
}

// RefreshNews handles POST /api/v1/admin/refresh. It bypasses the cache and
// re-runs the full pipeline.
func (h *Handlers) RefreshNews(c *fiber.Ctx) error {
	articles, err := h.news.Refresh(c.Context())
	if err != nil {
		logger.Get().Error().Err(err).Msg("Error refreshing daily articles")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to refresh news",
		})
	}

	return c.JSON(fiber.Map{
		"status": "refreshed",
		"total":  len(articles),
	})
}

func (h *Handlers) findArticle(c *fiber.Ctx, newsID string) (models.Article, bool) {
	articles, err := h.news.TodaysArticles(c.Context())
	if err != nil {
		return models.Article{}, false
	}
	for _, a := range articles {
		if a.ID == newsID {
			return a, true
		}
	}
	return models.Article{}, false
}
