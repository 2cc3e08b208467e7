package handlers

import (
	"strconv"

	"channelhub/helper"
	"channelhub/models"
	"channelhub/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: helper.NewHTTPHelper()}
}

func (h *CommentHandler) PostComment(c *gin.Context) {
	aid, err := strconv.ParseUint(c.Param("aid"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "empty comment", h.Helper.EmptyJsonMap())
		return
	}

	comment, err := h.commentService.PostComment(uint(aid), req, c.GetString("username"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "comment posted", gin.H{"coid": comment.ID})
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	aid, err := strconv.ParseUint(c.Param("aid"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	comments, err := h.commentService.ListComments(uint(aid))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "comments loaded", comments)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	aid, err := strconv.ParseUint(c.Param("aid"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	coid, err := strconv.ParseUint(c.Param("coid"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid comment ID", h.Helper.EmptyJsonMap())
		return
	}

	message, err := h.commentService.DeleteComment(uint(aid), uint(coid), c.GetString("username"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, message, h.Helper.EmptyJsonMap())
}
