package aiconfig

import (
	"errors"
	"net/http"
	"strings"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"github.com/DanZai233/LPH/api/types"
	"github.com/DanZai233/LPH/internal/ai"
	"github.com/DanZai233/LPH/internal/store"
)

type handler struct {
	store *store.ConfigStore
}

// sanitize is the single point where AIConfig records leave the API;
// the stored key never crosses it.
func sanitize(cfg types.AIConfig) types.AIConfig {
	cfg.APIKey = maskKey(cfg.APIKey)
	return cfg
}

func maskKey(key string) string {
	if len(key) > 4 {
		return "***" + key[len(key)-4:]
	}
	return "***"
}

type createRequest struct {
	Provider types.AIProvider `json:"provider"`
	Name     string           `json:"name"`
	APIKey   string           `json:"apiKey"`
	BaseURL  string           `json:"baseUrl"`
	Model    string           `json:"model"`
	IsActive bool             `json:"isActive"`
	Enabled  *bool            `json:"enabled"`
	Config   string           `json:"config"`
}

type updateRequest struct {
	Provider *types.AIProvider `json:"provider"`
	Name     *string           `json:"name"`
	APIKey   *string           `json:"apiKey"`
	BaseURL  *string           `json:"baseUrl"`
	Model    *string           `json:"model"`
	IsActive *bool             `json:"isActive"`
	Enabled  *bool             `json:"enabled"`
	Config   *string           `json:"config"`
}

func (h *handler) list(c *gin.Context) {
	configs, err := h.store.List()
	if err != nil {
		log.Errorf("failed to list AI configs: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to get AI configurations"})
		return
	}
	safe := make([]types.AIConfig, 0, len(configs))
	for _, cfg := range configs {
		safe = append(safe, sanitize(cfg))
	}
	c.JSON(http.StatusOK, safe)
}

func (h *handler) get(c *gin.Context) {
	cfg, err := h.store.GetByID(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Configuration not found"})
		return
	}
	if err != nil {
		log.Errorf("failed to get AI config: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to get AI configuration"})
		return
	}
	c.JSON(http.StatusOK, sanitize(*cfg))
}

func (h *handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Provider == "" || req.Name == "" || req.APIKey == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Provider, name, and API key are required"})
		return
	}
	if !req.Provider.Valid() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid provider"})
		return
	}

	cfg, err := h.store.Create(types.AIConfig{
		Provider: req.Provider,
		Name:     req.Name,
		APIKey:   req.APIKey,
		BaseURL:  req.BaseURL,
		Model:    req.Model,
		IsActive: req.IsActive,
		Enabled:  req.Enabled == nil || *req.Enabled,
		Config:   req.Config,
	})
	if err != nil {
		log.Errorf("failed to create AI config: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create AI configuration"})
		return
	}
	c.JSON(http.StatusCreated, sanitize(*cfg))
}

func (h *handler) update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Provider != nil && !req.Provider.Valid() {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid provider"})
		return
	}
	// a masked key is the placeholder echoed back by the frontend, not a
	// new secret
	if req.APIKey != nil && strings.HasPrefix(*req.APIKey, "***") {
		req.APIKey = nil
	}

	cfg, err := h.store.Update(c.Param("id"), store.ConfigUpdate{
		Provider: req.Provider,
		Name:     req.Name,
		APIKey:   req.APIKey,
		BaseURL:  req.BaseURL,
		Model:    req.Model,
		IsActive: req.IsActive,
		Enabled:  req.Enabled,
		Config:   req.Config,
	})
	if errors.Is(err, store.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Configuration not found"})
		return
	}
	if err != nil {
		log.Errorf("failed to update AI config: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to update AI configuration"})
		return
	}
	c.JSON(http.StatusOK, sanitize(*cfg))
}

func (h *handler) remove(c *gin.Context) {
	err := h.store.Delete(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Configuration not found"})
		return
	}
	if err != nil {
		log.Errorf("failed to delete AI config: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete AI configuration"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Configuration deleted successfully"})
}

func (h *handler) activate(c *gin.Context) {
	cfg, err := h.store.SetActive(c.Param("id"))
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrDisabled) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Configuration not found or disabled"})
		return
	}
	if err != nil {
		log.Errorf("failed to activate AI config: %v", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate AI configuration"})
		return
	}
	c.JSON(http.StatusOK, sanitize(*cfg))
}

func (h *handler) providers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"providers": ai.Providers()})
}
