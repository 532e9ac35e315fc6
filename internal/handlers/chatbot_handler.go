package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yatra-labs/yatra-server/internal/helpers"
	"github.com/yatra-labs/yatra-server/internal/services"
)

// ChatbotReply answers a single travel question. The bot is stateless, the
// client keeps the conversation transcript.
func ChatbotReply(cs *services.ChatbotService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody struct {
			Message string `json:"message" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("message is required"))
			return
		}

		message := strings.TrimSpace(reqBody.Message)
		if message == "" {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("message is required"))
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(gin.H{"reply": cs.Reply(message)}, ""))
	}
}
