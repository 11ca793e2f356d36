package main

import (
	"errors"
	"log"
	"net/http"
	"os"

	"koovappally_front_end/internal/backend"
	"koovappally_front_end/internal/cache"
	"koovappally_front_end/internal/clientstore"
	"koovappally_front_end/internal/config"
	"koovappally_front_end/internal/handlers"
	"koovappally_front_end/internal/handlers/admin"
	"koovappally_front_end/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
)

func main() {
	config.Load()

	if err := clientstore.Init(); err != nil {
		log.Fatal("❌ Impossible d'initialiser le store client :", err)
	}

	// Redis absent = front dégradé (pas de cache de compteurs, pas de
	// push temps réel), mais fonctionnel
	if err := cache.InitRedis(); err != nil {
		log.Println("⚠️ Redis indisponible, cache désactivé :", err)
	}
	defer cache.CloseRedis()

	initOAuthProviders()

	api := backend.New(config.APIBase())
	handlers.Init(api)
	admin.Init(api)
	log.Println("✅ Client API configuré sur", config.APIBase())

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(r)

	port := config.Port()
	log.Println("🚀 Front Koovappally lancé sur le port", port)
	r.Run(":" + port)
}

func initOAuthProviders() {
	// gothic partage le cookie store du client
	gothic.Store = clientstore.Store

	// Extraire le provider depuis le contexte (posé par le handler) ou l'URL
	gothic.GetProviderName = func(req *http.Request) (string, error) {
		if provider, ok := req.Context().Value(handlers.ProviderKey).(string); ok && provider != "" {
			return provider, nil
		}
		if provider := req.URL.Query().Get("provider"); provider != "" {
			return provider, nil
		}
		if provider := req.FormValue("provider"); provider != "" {
			return provider, nil
		}
		return "", errors.New("provider not found")
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		log.Println("⚠️ Google OAuth non configuré")
		return
	}

	goth.UseProviders(google.New(clientID, clientSecret, baseURL+"/auth/google/callback"))
	log.Println("✅ Google OAuth activé")
}
