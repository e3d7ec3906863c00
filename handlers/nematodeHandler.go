package handlers

import (
	"ClinicDesk/models"
	"ClinicDesk/queries"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NematodeHandler serves the static species reference.
type NematodeHandler struct{}

func NewNematodeHandler() *NematodeHandler {
	return &NematodeHandler{}
}

func (h *NematodeHandler) GetAllNematodes(c *gin.Context) {
	c.JSON(http.StatusOK, queries.SearchNematodes(models.NematodeSpeciesList, c.Query("q")))
}

func (h *NematodeHandler) GetNematodeByID(c *gin.Context) {
	species, ok := queries.NematodeByID(models.NematodeSpeciesList, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Species not found"})
		return
	}
	c.JSON(http.StatusOK, species)
}
