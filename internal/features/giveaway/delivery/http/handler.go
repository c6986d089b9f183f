package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"giveaway-backend/internal/common/middleware"
	"giveaway-backend/internal/features/giveaway/models/dto"
	"giveaway-backend/internal/features/giveaway/service"
)

type GiveawayHandler struct {
	service service.GiveawayService
}

func NewGiveawayHandler(service service.GiveawayService) *GiveawayHandler {
	return &GiveawayHandler{service: service}
}

func (h *GiveawayHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/create_giveaway", h.create)
}

func (h *GiveawayHandler) create(c *gin.Context) {
	var input dto.GiveawayCreateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if _, err := h.service.Create(c.Request.Context(), input); err != nil {
		middleware.RespondWith(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Giveaway created and announced!",
	})
}
