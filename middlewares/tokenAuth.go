package middlewares

import (
	"ClinicDesk/utils"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// contextKey defines a custom context key type to store session details in the context.
type contextKey string

const (
	doctorNameKey contextKey = "doctorName"
	languageKey   contextKey = "language"
)

// TokenAuthMiddleware validates the session token and adds the doctor name and
// display language to the request context.
func TokenAuthMiddleware(issuer *utils.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
			return
		}

		claims, err := issuer.Validate(token)
		if err != nil {
			RequestLogger(c).Debug("rejected session token", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), doctorNameKey, claims.DoctorName)
		ctx = context.WithValue(ctx, languageKey, claims.Language)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// ExtractDoctorNameFromContext retrieves the doctor name from the context.
func ExtractDoctorNameFromContext(ctx context.Context) (string, error) {
	name, ok := ctx.Value(doctorNameKey).(string)
	if !ok {
		return "", errors.New("doctor name not found in context")
	}
	return name, nil
}

// ExtractLanguageFromContext retrieves the session language from the context.
func ExtractLanguageFromContext(ctx context.Context) (string, error) {
	lang, ok := ctx.Value(languageKey).(string)
	if !ok {
		return "", errors.New("language not found in context")
	}
	return lang, nil
}
