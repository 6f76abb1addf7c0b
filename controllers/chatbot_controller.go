package controllers

import (
	"net/http"
	"time"

	"github.com/trung2605/bakery-assginment-be/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatbotController struct {
	svc *services.ChatbotService
	log *zap.Logger
}

func NewChatbotController(svc *services.ChatbotService, log *zap.Logger) *ChatbotController {
	return &ChatbotController{svc: svc, log: log}
}

type chatbotReq struct {
	UserMessage string                 `json:"userMessage" binding:"required"`
	ChatHistory []services.ChatMessage `json:"chatHistory"`
}

// POST /api/chatbot/message
func (ctl *ChatbotController) SendMessage(c *gin.Context) {
	var req chatbotReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
		return
	}

	reply, err := ctl.svc.SendMessage(c.Request.Context(), req.UserMessage, req.ChatHistory)
	if err != nil {
		ctl.log.Error("chatbot request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, services.ChatMessage{
			Text:      "Sorry, I'm having trouble right now. Please try again later.",
			Sender:    "bot",
			Timestamp: time.Now().Format("15:04"),
		})
		return
	}

	c.JSON(http.StatusOK, services.ChatMessage{
		Text:      reply,
		Sender:    "bot",
		Timestamp: time.Now().Format("15:04"),
	})
}

// GET /api/chatbot/greet
func (ctl *ChatbotController) Greet(c *gin.Context) {
	c.JSON(http.StatusOK, services.ChatMessage{
		Text:      ctl.svc.Greeting(),
		Sender:    "bot",
		Timestamp: time.Now().Format("15:04"),
	})
}
