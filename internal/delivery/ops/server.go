// Package ops exposes a small operational HTTP surface next to the bot's
// polling loop: liveness plus table counts for quick inspection.
package ops

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

func NewRouter(db *sql.DB) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/stats", func(c *gin.Context) {
		stats := gin.H{}
		for name, query := range map[string]string{
			"users":    `SELECT COUNT(*) FROM users`,
			"clients":  `SELECT COUNT(*) FROM clients`,
			"trainers": `SELECT COUNT(*) FROM trainers`,
			"pending":  `SELECT COUNT(*) FROM trainers WHERE status = 'pending'`,
			"likes":    `SELECT COUNT(*) FROM likes`,
		} {
			var total int64
			if err := db.QueryRowContext(c.Request.Context(), query).Scan(&total); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			stats[name] = total
		}
		c.JSON(http.StatusOK, stats)
	})

	return r
}
