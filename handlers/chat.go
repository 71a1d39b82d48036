package handlers

import (
	"errors"
	"net/http"
	"strings"

	"tripgenius/models"
	"tripgenius/services/conversation"
	"tripgenius/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the two conversation operations over HTTP.
type ChatHandler struct {
	Orchestrator *conversation.Orchestrator
}

func NewChatHandler(orchestrator *conversation.Orchestrator) *ChatHandler {
	return &ChatHandler{Orchestrator: orchestrator}
}

// InitiateHandler starts a new conversation from a free-form query.
func (h *ChatHandler) InitiateHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		utils.JSONError(c, http.StatusBadRequest, "query must not be empty", "")
		return
	}

	resp, err := h.Orchestrator.Initiate(c.Request.Context(), req.Query)
	if err != nil {
		utils.GetLogger().Error("initiate failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to start conversation", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ContinueHandler advances an existing conversation with the user's input.
func (h *ChatHandler) ContinueHandler(c *gin.Context) {
	var req models.ContinueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if strings.TrimSpace(req.SessionID) == "" {
		utils.JSONError(c, http.StatusBadRequest, "session_id must not be empty", "")
		return
	}

	resp, err := h.Orchestrator.Continue(c.Request.Context(), req.SessionID, req.UserInput)
	if err != nil {
		var notFound *conversation.SessionNotFoundError
		if errors.As(err, &notFound) {
			utils.JSONError(c, http.StatusNotFound, "session not found or expired", notFound.Error())
			return
		}
		utils.GetLogger().Error("continue failed",
			zap.String("sessionId", req.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to continue conversation", "")
		return
	}
	c.JSON(http.StatusOK, resp)
}
