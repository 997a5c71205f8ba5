package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

// parseQueryID reads a positive integer query parameter
func parseQueryID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

// parseQueryDate reads a YYYY-MM-DD query parameter
func parseQueryDate(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, false
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}

// currentUserID reads the authenticated user ID set by the auth middleware
func currentUserID(c *gin.Context) uint {
	if id, exists := c.Get("userID"); exists {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}
