package handlers

import (
	"ClinicDesk/middlewares"
	"ClinicDesk/services"
	"ClinicDesk/utils"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthHandler backs the login and register screens. Both always succeed and
// start a session for the clinic's doctor.
type AuthHandler struct {
	store  *services.ClinicStore
	issuer *utils.TokenIssuer
}

func NewAuthHandler(store *services.ClinicStore, issuer *utils.TokenIssuer) *AuthHandler {
	return &AuthHandler{store: store, issuer: issuer}
}

func (h *AuthHandler) Login(c *gin.Context) {
	h.startSession(c, http.StatusOK, "تم تسجيل الدخول بنجاح", "Login successful")
}

func (h *AuthHandler) Register(c *gin.Context) {
	h.startSession(c, http.StatusCreated, "تم إنشاء الحساب بنجاح", "Account created successfully")
}

// Logout clears the session cookie. Tokens held elsewhere stay valid until
// they expire.
func (h *AuthHandler) Logout(c *gin.Context) {
	lang := requestLanguage(c, h.store)
	doctorName, err := middlewares.ExtractDoctorNameFromContext(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	utils.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{
		"doctorName": doctorName,
		"message":    lang.Pick("تم تسجيل الخروج بنجاح", "Logout successful"),
	})
}

func (h *AuthHandler) startSession(c *gin.Context, status int, arabic, english string) {
	lang := requestLanguage(c, h.store)
	doctorName := lang.Pick("د. أحمد محمد", "Dr. Ahmed Mohammed")

	token, err := h.issuer.Issue(doctorName, string(lang))
	if err != nil {
		writeError(c, fmt.Errorf("failed to start session: %w", err))
		return
	}
	utils.SetSessionCookie(c, token)
	c.JSON(status, gin.H{
		"accessToken": token,
		"doctorName":  doctorName,
		"message":     lang.Pick(arabic, english),
	})
}
