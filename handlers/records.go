package handlers

import (
	"net/http"
	"strconv"

	recordsRepo "tripgenius/database/repository/records"
	"tripgenius/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecordsHandler serves persisted booking confirmations and itineraries.
type RecordsHandler struct {
	Repo recordsRepo.TripRecordRepository
}

func NewRecordsHandler(repo recordsRepo.TripRecordRepository) *RecordsHandler {
	return &RecordsHandler{Repo: repo}
}

// RecentRecordsHandler returns the newest trip records, default 20.
func (h *RecordsHandler) RecentRecordsHandler(c *gin.Context) {
	limit := int64(20)
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 1 || n > 100 {
			utils.JSONError(c, http.StatusBadRequest, "limit must be between 1 and 100", "")
			return
		}
		limit = n
	}

	records, err := h.Repo.Recent(c.Request.Context(), limit)
	if err != nil {
		utils.GetLogger().Error("failed to list recent records", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch records", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// SessionRecordsHandler returns all records written for one conversation.
func (h *RecordsHandler) SessionRecordsHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	records, err := h.Repo.GetBySessionID(c.Request.Context(), sessionID)
	if err != nil {
		utils.GetLogger().Error("failed to fetch session records",
			zap.String("sessionId", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch records", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}
