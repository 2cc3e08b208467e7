package handlers

import (
	"errors"
	"strconv"

	"channelhub/helper"
	"channelhub/models"
	"channelhub/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: helper.NewHTTPHelper()}
}

func (h *ArticleHandler) SubmitArticle(c *gin.Context) {
	cid, err := strconv.ParseUint(c.Param("cid"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid channel ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.SubmitArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "missing required fields", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.SubmitArticle(uint(cid), req, c.GetString("username"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "article submitted", gin.H{
		"aid":    article.ID,
		"status": article.Status,
		"state":  article.State().String(),
	})
}

func (h *ArticleHandler) AcceptArticle(c *gin.Context) {
	aid, err := strconv.ParseUint(c.Param("aid"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	outcome, err := h.articleService.AcceptArticle(uint(aid), c.GetString("username"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, outcome.Message, outcome)
}

func (h *ArticleHandler) RejectArticle(c *gin.Context) {
	aid, err := strconv.ParseUint(c.Param("aid"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	outcome, err := h.articleService.RejectArticle(uint(aid), c.GetString("username"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, outcome.Message, outcome)
}

func (h *ArticleHandler) DisableArticle(c *gin.Context) {
	aid, err := strconv.ParseUint(c.Param("aid"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	outcome, err := h.articleService.DisableArticle(uint(aid), c.GetString("username"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, outcome.Message, outcome)
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	aid, err := strconv.ParseUint(c.Param("aid"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.GetArticle(uint(aid))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "article loaded", article)
}

func (h *ArticleHandler) ListArticles(c *gin.Context) {
	var channelID *uint
	if raw := c.Query("cid"); raw != "" {
		cid, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.Helper.SendBadRequest(c, "invalid channel ID", h.Helper.EmptyJsonMap())
			return
		}
		id := uint(cid)
		channelID = &id
	}

	articles, err := h.articleService.ListVisibleArticles(channelID, limitQuery(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "articles loaded", articles)
}

func (h *ArticleHandler) ListPendingRequests(c *gin.Context) {
	var channelID *uint
	if raw := c.Param("cid"); raw != "" {
		cid, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.Helper.SendBadRequest(c, "invalid channel ID", h.Helper.EmptyJsonMap())
			return
		}
		id := uint(cid)
		channelID = &id
	}

	pending, err := h.articleService.ListPendingRequests(channelID, c.GetString("username"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "pending requests loaded", pending)
}

func (h *ArticleHandler) Like(c *gin.Context) {
	aid, err := strconv.ParseUint(c.Param("aid"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	message, err := h.articleService.Like(uint(aid), c.GetString("username"))
	if err != nil {
		var conflict models.ErrorConflict
		if errors.As(err, &conflict) {
			h.Helper.SendSuccess(c, conflict.Message, h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, message, h.Helper.EmptyJsonMap())
}

func (h *ArticleHandler) Unlike(c *gin.Context) {
	aid, err := strconv.ParseUint(c.Param("aid"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	message, err := h.articleService.Unlike(uint(aid), c.GetString("username"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, message, h.Helper.EmptyJsonMap())
}

func (h *ArticleHandler) SubscriptionFeed(c *gin.Context) {
	articles, err := h.articleService.SubscriptionFeed(c.GetString("username"), limitQuery(c))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "feed loaded", articles)
}

func (h *ArticleHandler) FavoritesFeed(c *gin.Context) {
	limit := models.DefaultFeedLimit
	if raw := c.Param("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.Helper.SendBadRequest(c, "invalid limit", h.Helper.EmptyJsonMap())
			return
		}
		limit = parsed
	}

	articles, err := h.articleService.FavoritesFeed(c.GetString("username"), limit)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "favorites loaded", articles)
}

// limitQuery reads the optional ?limit= parameter; a limit below 1 is passed
// through so the service can answer with an empty list.
func limitQuery(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return models.DefaultFeedLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return models.DefaultFeedLimit
	}
	return limit
}
