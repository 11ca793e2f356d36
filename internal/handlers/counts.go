package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"koovappally_front_end/internal/cache"
	"koovappally_front_end/internal/cart"
	"koovappally_front_end/internal/clientstore"
	"koovappally_front_end/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

//
// 🟢 GET /counts — badges panier / wishlist du header
//
func GetCounts(c *gin.Context) {
	state := middleware.AuthFromContext(c)
	cs := clientstore.FromContext(c)
	counts := cart.Counts(api, cs, state)
	saveSession(cs)
	c.JSON(http.StatusOK, counts)
}

// CountsWebSocket pousse les compteurs du header en temps réel : abonnement
// au canal Redis du navigateur, recalcul et envoi à chaque invalidation
func CountsWebSocket(c *gin.Context) {
	state := middleware.AuthFromContext(c)
	cs := clientstore.FromContext(c)
	clientID := cart.ClientID(state, cs)
	saveSession(cs)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Synchronisation des compteurs activée",
	})

	if !cache.Enabled() {
		// Pas de Redis : connexion maintenue en vie, sans push
		keepAlive(conn)
		return
	}

	ctx := context.Background()
	pubsub := cache.RedisClient.Subscribe(ctx, cache.CountsChannel(clientID))
	defer pubsub.Close()

	ch := pubsub.Channel()

	for {
		select {
		case msg := <-ch:
			if msg.Payload != "updated" {
				continue
			}
			counts := cart.Counts(api, cs, state)
			response := map[string]interface{}{
				"type":     "counts_updated",
				"cart":     counts.Cart,
				"wishlist": counts.Wishlist,
			}
			if err := conn.WriteJSON(response); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func keepAlive(conn *websocket.Conn) {
	for {
		time.Sleep(30 * time.Second)
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			return
		}
	}
}
