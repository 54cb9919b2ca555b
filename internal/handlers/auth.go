// internal/handlers/auth.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/inventra/inventory-backend/internal/i18n"
	"github.com/inventra/inventory-backend/internal/metrics"
	"github.com/inventra/inventory-backend/internal/middleware"
	"github.com/inventra/inventory-backend/internal/services"
	"github.com/inventra/inventory-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
	sessions    *middleware.SessionManager
	metrics     *metrics.Metrics
}

func NewAuthHandler(authService *services.AuthService, sessions *middleware.SessionManager, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		metrics:     m,
	}
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req)
	h.metrics.RecordLogin(err)
	if err != nil {
		respondError(c, err, i18n.KeyAuthErrorLogin)
		return
	}

	if err := h.sessions.Login(c.Writer, c.Request, resp.ID); err != nil {
		respondError(c, err, i18n.KeyAuthErrorLogin)
		return
	}

	logrus.WithField("user_id", resp.ID).Info("User logged in")
	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyAuthLoginSuccess), resp)
}

// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if err := h.sessions.Logout(c.Writer, c.Request); err != nil {
		respondError(c, err, i18n.KeyAuthErrorLogout)
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyAuthLogoutSuccess), nil)
}

// GET /auth/check
func (h *AuthHandler) Check(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	principal := middleware.CurrentPrincipal(c)
	if principal == nil {
		utils.UnauthorizedResponse(c, "")
		return
	}

	utils.SuccessResponse(c, i18n.T(lang, i18n.KeyAuthCheckSuccess), services.UserView{
		ID:    principal.UserID,
		Name:  principal.Name,
		Login: principal.Login,
		Role:  principal.Role,
	})
}
