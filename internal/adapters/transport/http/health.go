package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (r *Router) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
}
