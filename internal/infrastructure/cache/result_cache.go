package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gcaponi/S4all-BOT/internal/domain/entity"
)

// resultTTL bounds staleness after a vocabulary reload; the engine itself
// is deterministic, so cached entries are otherwise valid forever
const resultTTL = time.Hour

// ResultCache caches classification results keyed by message text.
// Classification is deterministic per vocabulary generation, which makes
// the cache sound; the generation is part of the key so a reload
// invalidates prior entries.
type ResultCache struct {
	client *redis.Client
}

// NewResultCache creates a classification result cache
func NewResultCache(client *redis.Client) *ResultCache {
	return &ResultCache{client: client}
}

// Get returns the cached result for a message, or false on miss or error
func (c *ResultCache) Get(ctx context.Context, generation int64, text string) (entity.ClassificationResult, bool) {
	var result entity.ClassificationResult
	data, err := c.client.Get(ctx, key(generation, text)).Bytes()
	if err != nil {
		return result, false
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, false
	}
	return result, true
}

// Set stores a result; failures are deliberately dropped, the cache is an
// optimization and never a dependency
func (c *ResultCache) Set(ctx context.Context, generation int64, text string, result entity.ClassificationResult) {
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	c.client.Set(ctx, key(generation, text), data, resultTTL)
}

func key(generation int64, text string) string {
	sum := sha256.Sum256([]byte(text))
	return "intent:result:" + strconv.FormatInt(generation, 10) + ":" + hex.EncodeToString(sum[:16])
}
