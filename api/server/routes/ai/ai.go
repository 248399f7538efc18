package ai

import (
	"errors"
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"github.com/DanZai233/LPH/internal/ai"
)

const unconfiguredMsg = "AI service not configured. Please configure an AI provider in settings."

type handler struct {
	svc *ai.Service
}

type explainRequest struct {
	PackageName string `json:"packageName"`
}

type searchRequest struct {
	Query string `json:"query"`
}

type suggestRequest struct {
	Command string `json:"command"`
}

func (h *handler) explainPackage(c *gin.Context) {
	var req explainRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PackageName == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Package name is required"})
		return
	}

	explanation, err := h.svc.ExplainPackage(c.Request.Context(), req.PackageName)
	if errors.Is(err, ai.ErrNoActiveProvider) {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": unconfiguredMsg})
		return
	}
	if err != nil {
		log.Errorf("failed to explain package: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"explanation": explanation})
}

func (h *handler) searchCommands(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Search query is required"})
		return
	}

	results, err := h.svc.SearchCommands(c.Request.Context(), req.Query)
	if errors.Is(err, ai.ErrNoActiveProvider) {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": unconfiguredMsg})
		return
	}
	if err != nil {
		log.Errorf("failed to search commands: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to search commands"})
		return
	}
	c.JSON(http.StatusOK, results)
}

func (h *handler) suggestAlias(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Command == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Command is required"})
		return
	}

	suggestion, err := h.svc.SuggestAlias(c.Request.Context(), req.Command)
	if errors.Is(err, ai.ErrNoActiveProvider) {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": unconfiguredMsg})
		return
	}
	if err != nil {
		log.Errorf("failed to suggest alias: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to suggest alias"})
		return
	}
	c.JSON(http.StatusOK, suggestion)
}
