package handlers

import (
	"errors"
	"net/http"

	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/auth"
	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/dtos"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Auth *auth.Manager
}

func NewAdminHandler(a *auth.Manager) *AdminHandler {
	return &AdminHandler{Auth: a}
}

// Login is the POST /admin/login endpoint. On success the session token is
// set as an HTTP-only cookie.
func (h *AdminHandler) Login(c *gin.Context) {
	var req dtos.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON format: " + err.Error()})
		return
	}

	token, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
			return
		}
		fail(c, err)
		return
	}

	c.SetCookie(auth.CookieName, token, int(12*60*60), "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged in"})
}

// Logout clears the session cookie.
func (h *AdminHandler) Logout(c *gin.Context) {
	c.SetCookie(auth.CookieName, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged out"})
}
