package aliases

import (
	"errors"
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"github.com/DanZai233/LPH/api/types"
	"github.com/DanZai233/LPH/internal/store"
)

type handler struct {
	store *store.AliasStore
}

type createRequest struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Description string `json:"description"`
}

type updateRequest struct {
	Name        *string `json:"name"`
	Command     *string `json:"command"`
	Description *string `json:"description"`
}

func (h *handler) list(c *gin.Context) {
	aliases, err := h.store.List()
	if err != nil {
		log.Errorf("failed to list aliases: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to get aliases"})
		return
	}
	if aliases == nil {
		aliases = []types.Alias{}
	}
	c.JSON(http.StatusOK, aliases)
}

func (h *handler) get(c *gin.Context) {
	alias, err := h.store.GetByID(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Alias not found"})
		return
	}
	if err != nil {
		log.Errorf("failed to get alias: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to get alias"})
		return
	}
	c.JSON(http.StatusOK, alias)
}

func (h *handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Command == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Name and command are required"})
		return
	}

	alias, err := h.store.Create(req.Name, req.Command, req.Description)
	if errors.Is(err, store.ErrDuplicateName) {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Alias with this name already exists"})
		return
	}
	if err != nil {
		log.Errorf("failed to create alias: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create alias"})
		return
	}
	c.JSON(http.StatusCreated, alias)
}

func (h *handler) update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	alias, err := h.store.Update(c.Param("id"), store.AliasUpdate{
		Name:        req.Name,
		Command:     req.Command,
		Description: req.Description,
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Alias not found"})
	case errors.Is(err, store.ErrDuplicateName):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Alias with this name already exists"})
	case err != nil:
		log.Errorf("failed to update alias: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to update alias"})
	default:
		c.JSON(http.StatusOK, alias)
	}
}

func (h *handler) remove(c *gin.Context) {
	err := h.store.Delete(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Alias not found"})
		return
	}
	if err != nil {
		log.Errorf("failed to delete alias: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete alias"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alias deleted successfully"})
}
