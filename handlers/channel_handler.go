package handlers

import (
	"errors"
	"strconv"

	"channelhub/helper"
	"channelhub/models"
	"channelhub/services"

	"github.com/gin-gonic/gin"
)

type ChannelHandler struct {
	channelService services.ChannelService
	Helper         *helper.HTTPHelper
}

func NewChannelHandler(channelService services.ChannelService) *ChannelHandler {
	return &ChannelHandler{channelService: channelService, Helper: helper.NewHTTPHelper()}
}

func (h *ChannelHandler) CreateChannel(c *gin.Context) {
	var req models.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "missing required channel name", h.Helper.EmptyJsonMap())
		return
	}

	channel, err := h.channelService.CreateChannel(req, c.GetString("username"))
	if err != nil {
		// Duplicate names are idempotent from the caller's perspective
		var conflict models.ErrorConflict
		if errors.As(err, &conflict) {
			h.Helper.SendSuccess(c, conflict.Message, h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendCreated(c, "channel created", gin.H{"cid": channel.ID})
}

func (h *ChannelHandler) GetChannel(c *gin.Context) {
	cid, err := strconv.ParseUint(c.Param("cid"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid channel ID", h.Helper.EmptyJsonMap())
		return
	}

	channel, err := h.channelService.GetChannel(uint(cid))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "channel loaded", channel)
}

func (h *ChannelHandler) ListChannels(c *gin.Context) {
	channels, err := h.channelService.ListChannels()
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "channels loaded", channels)
}

func (h *ChannelHandler) DisableChannel(c *gin.Context) {
	cid, err := strconv.ParseUint(c.Param("cid"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid channel ID", h.Helper.EmptyJsonMap())
		return
	}

	outcome, err := h.channelService.DisableChannel(uint(cid), c.GetString("username"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, outcome.Message, outcome)
}

func (h *ChannelHandler) Subscribe(c *gin.Context) {
	cid, err := strconv.ParseUint(c.Param("cid"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid channel ID", h.Helper.EmptyJsonMap())
		return
	}

	message, err := h.channelService.Subscribe(uint(cid), c.GetString("username"))
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

func (h *ChannelHandler) Unsubscribe(c *gin.Context) {
	cid, err := strconv.ParseUint(c.Param("cid"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "invalid channel ID", h.Helper.EmptyJsonMap())
		return
	}

	message, err := h.channelService.Unsubscribe(uint(cid), c.GetString("username"))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, message, h.Helper.EmptyJsonMap())
}
