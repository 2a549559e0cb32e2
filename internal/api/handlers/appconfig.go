package handlers

import (
	"log"

	"slotb/internal/appconfig"

	"github.com/gin-gonic/gin"
)

type AppConfigHandler struct {
	configStore *appconfig.Store
}

func NewAppConfigHandler(configStore *appconfig.Store) *AppConfigHandler {
	return &AppConfigHandler{configStore: configStore}
}

// Get returns the branding and theme configuration. Public: the login page
// needs it before any authentication.
func (h *AppConfigHandler) Get(c *gin.Context) {
	cfg, err := h.configStore.Get()
	if err != nil {
		log.Printf("load app config failed: %v", err)
		c.JSON(500, gin.H{"error": "Failed to load configuration"})
		return
	}

	c.JSON(200, cfg)
}

// Update merges a partial configuration change. Admin only.
func (h *AppConfigHandler) Update(c *gin.Context) {
	var patch appconfig.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(400, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	cfg, err := h.configStore.Update(patch)
	if err != nil {
		log.Printf("update app config failed: %v", err)
		c.JSON(500, gin.H{"error": "Failed to update configuration"})
		return
	}

	c.JSON(200, gin.H{
		"message": "Configuration updated",
		"config":  cfg,
	})
}
