package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/facgure/launchpad/internal/api/middleware"
	"github.com/facgure/launchpad/internal/domain/session"
	"github.com/facgure/launchpad/internal/shared/i18n"
)

// Login authenticates email/password credentials and opens a session
func (h *Handlers) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "email and password are required",
		})
		return
	}

	sess, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.authFailure(c, err)
		return
	}

	h.logger.Info("Login succeeded",
		zap.String("user", sess.User.ID),
		zap.String("role", string(sess.User.Role)),
	)
	h.sessionResponse(c, sess)
}

// LoginWithGoogle runs the simulated Google identity flow
func (h *Handlers) LoginWithGoogle(c *gin.Context) {
	h.providerLogin(c, session.ProviderGoogle)
}

// LoginWithMicrosoft runs the simulated Microsoft identity flow
func (h *Handlers) LoginWithMicrosoft(c *gin.Context) {
	h.providerLogin(c, session.ProviderMicrosoft)
}

func (h *Handlers) providerLogin(c *gin.Context, provider session.Provider) {
	sess, err := h.sessions.LoginWithProvider(c.Request.Context(), provider)
	if err != nil {
		h.authFailure(c, err)
		return
	}
	h.sessionResponse(c, sess)
}

// Logout tears down the caller's session and clears the cookie
func (h *Handlers) Logout(c *gin.Context) {
	if sess, ok := middleware.CurrentSession(c); ok {
		h.sessions.Logout(sess.Token)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the authenticated user and its derived permissions
func (h *Handlers) Me(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "authentication required",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"user":        sess.User,
		"permissions": sess.Permissions(),
		"expires_at":  sess.ExpiresAt.Unix(),
	})
}

// ForgotPassword starts the recovery flow
func (h *Handlers) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "email is required",
		})
		return
	}

	if err := h.sessions.ForgotPassword(req.Email); err != nil {
		h.authFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// VerifyOTP checks the second recovery step
func (h *Handlers) VerifyOTP(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
		OTP   string `json:"otp" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "email and otp are required",
		})
		return
	}

	if err := h.sessions.VerifyOTP(req.Email, req.OTP); err != nil {
		h.authFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ResetPassword completes the recovery flow
func (h *Handlers) ResetPassword(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required"`
		OTP         string `json:"otp" binding:"required"`
		NewPassword string `json:"new_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "email, otp, and new_password are required",
		})
		return
	}

	if err := h.sessions.ResetPassword(req.Email, req.OTP, req.NewPassword); err != nil {
		h.authFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// sessionResponse writes the opened session, setting the cookie the
// browser shell relies on alongside the bearer token
func (h *Handlers) sessionResponse(c *gin.Context, sess *session.Session) {
	maxAge := int(sess.ExpiresAt.Sub(sess.CreatedAt).Seconds())
	c.SetCookie(middleware.SessionCookie, sess.Token, maxAge, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"token":       sess.Token,
		"user":        sess.User,
		"permissions": sess.Permissions(),
		"expires_at":  sess.ExpiresAt.Unix(),
	})
}

// authFailure maps an auth error to a response. Credential and OTP
// failures collapse to a generic localized message; validation problems
// keep their shape so forms can report inline.
func (h *Handlers) authFailure(c *gin.Context, err error) {
	ae, ok := err.(*session.AuthError)
	if !ok {
		h.logger.Error("Auth operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal error",
		})
		return
	}

	locale := requestLocale(c)
	switch ae.Code {
	case session.CodeInvalidEmail, session.CodePasswordTooShort:
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   ae.Message,
			"code":    string(ae.Code),
		})
	case session.CodeOTPInvalid, session.CodeOTPExpired, session.CodeUserNotFound:
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   ae.Message,
			"code":    string(ae.Code),
		})
	default:
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   i18n.T(locale, "invalidCredential"),
			"code":    string(session.CodeInvalidCredentials),
		})
	}
}
