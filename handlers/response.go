package handlers

import (
	"ClinicDesk/middlewares"
	"ClinicDesk/models"
	"ClinicDesk/services"
	"errors"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
)

// writeError maps store errors onto HTTP statuses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		middlewares.HttpError(c, err.Error(), http.StatusBadRequest, err)
	case errors.Is(err, services.ErrNotFound):
		middlewares.HttpError(c, err.Error(), http.StatusNotFound, err)
	default:
		middlewares.HttpError(c, "internal server error", http.StatusInternalServerError, err)
	}
}

func badRequest(c *gin.Context, message string, err error) {
	middlewares.HttpError(c, message, http.StatusBadRequest, err)
}

// confirmed gates destructive operations on confirm=true and answers 409
// otherwise.
func confirmed(c *gin.Context) bool {
	if c.Query("confirm") == "true" {
		return true
	}
	middlewares.HttpError(c, "confirmation required: repeat the request with confirm=true", http.StatusConflict, nil)
	return false
}

// requestLanguage picks the lang query parameter, then the session language,
// then the stored preference.
func requestLanguage(c *gin.Context, store *services.ClinicStore) models.Language {
	if lang, err := models.ParseLanguage(c.Query("lang")); err == nil {
		return lang
	}
	if raw, err := middlewares.ExtractLanguageFromContext(c.Request.Context()); err == nil {
		if lang, err := models.ParseLanguage(raw); err == nil {
			return lang
		}
	}
	return store.Preferences().Language
}

// chartScope reads the patient_id query parameter.
func chartScope(c *gin.Context) services.ChartScope {
	return services.PatientChart(c.Query("patient_id"))
}

func attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	c.Data(http.StatusOK, contentType, data)
}
