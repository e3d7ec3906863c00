package handlers

import (
	"ClinicDesk/models"
	"ClinicDesk/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PreferencesHandler struct {
	store *services.ClinicStore
}

func NewPreferencesHandler(store *services.ClinicStore) *PreferencesHandler {
	return &PreferencesHandler{store: store}
}

func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Preferences())
}

// UpdatePreferences replaces the flags; a missing language keeps the current one.
func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	var prefs models.Preferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	if prefs.Language == "" {
		prefs.Language = h.store.Preferences().Language
	}
	if err := h.store.SetPreferences(c.Request.Context(), prefs); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.store.Preferences())
}
