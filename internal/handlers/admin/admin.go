package admin

import (
	"net/http"

	"koovappally_front_end/internal/backend"
)

// Handlers du back-office. Toutes les routes sont derrière RequireRole
// ("admin") : ici on ne revérifie que ce que le backend ne couvre pas.

var api *backend.Client

func Init(client *backend.Client) {
	api = client
}

func apiStatus(err error) int {
	if s := backend.StatusOf(err); s != 0 {
		return s
	}
	return http.StatusBadGateway
}

func apiMessage(err error, fallback string) string {
	if apiErr, ok := err.(*backend.APIError); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
