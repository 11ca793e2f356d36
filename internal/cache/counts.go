package cache

import (
	"encoding/json"
	"time"
)

const CountsCacheTTL = 2 * time.Minute

// Counts : badges panier / wishlist affichés dans le header
type Counts struct {
	Cart     int `json:"cart"`
	Wishlist int `json:"wishlist"`
}

func countsKey(clientID string) string {
	return "counts:" + clientID
}

func countsChannel(clientID string) string {
	return "counts_updated:" + clientID
}

// GetCounts lit les compteurs en cache ; (zéro, false) si absent ou Redis down
func GetCounts(clientID string) (Counts, bool) {
	var counts Counts
	if !Enabled() {
		return counts, false
	}
	data, err := RedisClient.Get(ctx, countsKey(clientID)).Result()
	if err != nil {
		return counts, false
	}
	if json.Unmarshal([]byte(data), &counts) != nil {
		return counts, false
	}
	return counts, true
}

func SetCounts(clientID string, counts Counts) {
	if !Enabled() {
		return
	}
	data, err := json.Marshal(counts)
	if err != nil {
		return
	}
	RedisClient.Set(ctx, countsKey(clientID), data, CountsCacheTTL)
}

// InvalidateCounts purge le cache et notifie le websocket du navigateur
func InvalidateCounts(clientID string) {
	if !Enabled() {
		return
	}
	RedisClient.Del(ctx, countsKey(clientID))
	RedisClient.Publish(ctx, countsChannel(clientID), "updated")
}

// CountsChannel expose le nom du canal pub/sub pour l'abonnement websocket
func CountsChannel(clientID string) string {
	return countsChannel(clientID)
}
