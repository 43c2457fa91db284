package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Ligawa2547/CARRIBBEAN-CRUISES--sub001/internal/services"
	"github.com/gin-gonic/gin"
)

// fail maps a service error onto the JSON envelope. Validation problems are
// the caller's fault and carry per-field detail; store failures are logged
// with full detail but surfaced generically.
func fail(c *gin.Context, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "validation failed",
			"fields":  verr.Fields,
		})
		return
	}

	if errors.Is(err, services.ErrApplicationNotFound) || errors.Is(err, services.ErrContactNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		return
	}

	var dberr *services.DatabaseError
	if errors.As(err, &dberr) {
		log.Printf("❌ Database error: %v", dberr)
		msg := "a storage error occurred"
		if dberr.Code != "" {
			msg += " (code " + dberr.Code + ")"
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": msg})
		return
	}

	log.Printf("❌ Unexpected error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
}
