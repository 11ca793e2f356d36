package handlers

import (
	"net/http"

	"koovappally_front_end/internal/backend"
)

// Les handlers partagent un client API unique, injecté au démarrage

var api *backend.Client

func Init(client *backend.Client) {
	api = client
}

// apiStatus : statut HTTP à renvoyer pour une erreur d'appel API.
// Erreur réseau (pas de statut) ⇒ 502.
func apiStatus(err error) int {
	if s := backend.StatusOf(err); s != 0 {
		return s
	}
	return http.StatusBadGateway
}

// apiMessage : message utilisateur pour une erreur d'appel API
func apiMessage(err error, fallback string) string {
	if apiErr, ok := err.(*backend.APIError); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
