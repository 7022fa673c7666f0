package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     *bool     `json:"redis,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates
// in-memory state. Either client may be nil (not configured).
func StartHealthMonitor(mongoClient *mongo.Client, redisClient *redis.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			status := HealthStatus{CheckedAt: time.Now()}

			if mongoClient != nil {
				status.Mongo = mongoClient.Ping(ctx, nil) == nil
			}
			if redisClient != nil {
				healthy := redisClient.Ping(ctx).Err() == nil
				status.Redis = &healthy
			}

			mu.Lock()
			currentHealth = status
			mu.Unlock()
		}
	}()
}
