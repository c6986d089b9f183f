package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"giveaway-backend/internal/common/middleware"
	"giveaway-backend/internal/features/channel/service"
)

type ChannelHandler struct {
	service service.ChannelService
}

func NewChannelHandler(service service.ChannelService) *ChannelHandler {
	return &ChannelHandler{service: service}
}

func (h *ChannelHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/add_channel", h.add)
	router.GET("/get_channels", h.list)
}

type addChannelRequest struct {
	Username  string `json:"username"`
	CreatorID string `json:"creator_id"`
}

func (h *ChannelHandler) add(c *gin.Context) {
	var input addChannelRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if _, err := h.service.AddChannel(c.Request.Context(), input.Username, input.CreatorID); err != nil {
		middleware.RespondWith(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Channel added successfully!",
	})
}

func (h *ChannelHandler) list(c *gin.Context) {
	creatorID := c.Query("creator_id")

	channels, err := h.service.GetChannels(c.Request.Context(), creatorID)
	if err != nil {
		middleware.RespondWith(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"channels": channels,
	})
}
