package handlers

import (
	"strconv"

	"admin-backoffice/models"

	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func currentUserID(c *gin.Context) uint {
	v, _ := c.Get("user_id")
	id, _ := v.(uint)
	return id
}

// listFailure answers a list request with the bare failure shape the
// dashboard fetch contract expects.
func listFailure(c *gin.Context, status int, err error) {
	c.JSON(status, models.FailureResponse{Message: err.Error()})
}
