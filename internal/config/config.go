package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// APIBase retourne l'URL racine de l'API marketplace (collaborateur externe)
func APIBase() string {
	base := os.Getenv("API_BASE")
	if base == "" {
		base = "http://localhost:5001/api"
	}
	return strings.TrimRight(base, "/")
}

// Port retourne le port d'écoute du front-end
func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}
