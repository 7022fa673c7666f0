package handlers

import (
	"context"
	"net/http"
	"time"

	"appointments/config"
	"appointments/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StatusHandler serves the diagnostic endpoints. Client may be nil
// when the server started without a storage connection.
type StatusHandler struct {
	Client *mongo.Client
	DBName string
}

func NewStatusHandler(client *mongo.Client, dbName string) *StatusHandler {
	return &StatusHandler{Client: client, DBName: dbName}
}

// Root handles GET /.
func (h *StatusHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Appointments API running"})
}

// Test handles GET /test: a storage-connectivity diagnostic, not part
// of the core contract.
func (h *StatusHandler) Test(c *gin.Context) {
	response := gin.H{
		"backend":       "running",
		"database":      "not available",
		"database_url":  config.AppConfig.DatabaseURL != "",
		"database_name": config.AppConfig.DatabaseName != "",
		"collections":   []string{},
	}

	if h.Client != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.Client.Ping(ctx, nil); err != nil {
			response["database"] = "connected but error: " + err.Error()
		} else {
			response["database"] = "connected"
			if names, err := h.Client.Database(h.DBName).ListCollectionNames(ctx, bson.M{}); err == nil {
				if len(names) > 10 {
					names = names[:10]
				}
				response["collections"] = names
			}
		}
	}

	c.JSON(http.StatusOK, response)
}

// Health handles GET /health with the latest monitor snapshot.
func (h *StatusHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"health": utils.GetHealthStatus(),
	})
}
