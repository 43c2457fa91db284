package handlers

import (
	"errors"
	"net/http"

	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/dtos"
	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/services"
	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
	Status       *services.StatusService
	Notify       *services.NotifyService
}

func NewApplicationHandler(a *services.ApplicationService, s *services.StatusService, n *services.NotifyService) *ApplicationHandler {
	return &ApplicationHandler{
		Applications: a,
		Status:       s,
		Notify:       n,
	}
}

// Submit is the public POST /applications endpoint
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON format: " + err.Error()})
		return
	}

	app, err := h.Applications.Submit(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Application submitted successfully",
		"data":    app,
	})
}

// ListAll is the admin GET /admin/applications endpoint
func (h *ApplicationHandler) ListAll(c *gin.Context) {
	apps, err := h.Applications.ListAll()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": apps})
}

// UpdateStatus is the admin PATCH /admin/applications/:id/status endpoint.
// A failed requested email yields success:false, but the envelope still
// carries the result so the caller can see the status itself persisted.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid application id"})
		return
	}

	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON format: " + err.Error()})
		return
	}

	result, err := h.Status.Update(c.Request.Context(), id, req.Status, req.SendEmail)
	if err != nil {
		var nerr *services.NotificationError
		if errors.As(err, &nerr) && result != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   nerr.Error(),
				"data":    result,
			})
			return
		}
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": result.Message, "data": result})
}

// ResendAll is the admin POST /admin/notify/resend-all endpoint
func (h *ApplicationHandler) ResendAll(c *gin.Context) {
	summary, err := h.Notify.ResendAll(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}
