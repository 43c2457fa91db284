package handlers

import (
	"net/http"
	"strconv"

	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/video"
	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	Videos *video.Service
}

func NewVideoHandler(v *video.Service) *VideoHandler {
	return &VideoHandler{Videos: v}
}

// List is the public GET /youtube endpoint
func (h *VideoHandler) List(c *gin.Context) {
	if h.Videos == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "video service not configured"})
		return
	}

	maxResults, _ := strconv.ParseInt(c.DefaultQuery("max", "25"), 10, 64)
	items, err := h.Videos.ListChannelVideos(c.Request.Context(), maxResults)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}

// Get is the public GET /youtube/:id endpoint
func (h *VideoHandler) Get(c *gin.Context) {
	if h.Videos == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "video service not configured"})
		return
	}

	v, err := h.Videos.GetVideo(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	if v == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "video not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": v})
}
