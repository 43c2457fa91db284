package handlers

import (
	"net/http"
	"strconv"

	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/dtos"
	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/services"
	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	JobService *services.JobService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(j *services.JobService) *JobHandler {
	return &JobHandler{
		JobService: j,
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListJobs is the public GET /jobs endpoint
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.JobService.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": jobs})
}

// GetJob is the public GET /jobs/:id endpoint
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid job id"})
		return
	}

	job, err := h.JobService.GetByID(id)
	if err != nil {
		fail(c, err)
		return
	}
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "job not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": job})
}

// CreateJob is the admin POST /admin/jobs endpoint
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.JobService.Create(&req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": job})
}

// UpdateJob is the admin PUT /admin/jobs/:id endpoint
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid job id"})
		return
	}

	var req dtos.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.JobService.Update(id, &req)
	if err != nil {
		fail(c, err)
		return
	}
	if job == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "job not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": job})
}

// DeleteJob is the admin DELETE /admin/jobs/:id endpoint
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid job id"})
		return
	}

	if err := h.JobService.Delete(id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
