package handlers

import (
	"net/http"

	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/dtos"
	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/services"
	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	Contacts *services.ContactService
}

func NewContactHandler(s *services.ContactService) *ContactHandler {
	return &ContactHandler{Contacts: s}
}

// Submit is the public POST /contact endpoint
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dtos.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON format: " + err.Error()})
		return
	}

	msg, err := h.Contacts.Submit(&req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Message received, we will get back to you soon",
		"data":    msg,
	})
}

// List is the admin GET /admin/contacts endpoint
func (h *ContactHandler) List(c *gin.Context) {
	msgs, err := h.Contacts.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": msgs})
}

// MarkRead is the admin PATCH /admin/contacts/:id/read endpoint
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid message id"})
		return
	}

	msg, err := h.Contacts.MarkRead(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": msg})
}
