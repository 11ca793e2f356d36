package cart

import (
	"koovappally_front_end/internal/backend"
	"koovappally_front_end/internal/cache"
	"koovappally_front_end/internal/clientstore"
	"koovappally_front_end/internal/session"
)

// Agrégation des badges du header : somme des quantités pour le panier,
// nombre d'entrées pour la wishlist. Toute erreur de fetch retombe
// silencieusement à 0 — pas de bannière d'erreur pour ce chemin-là.

// ClientID identifie le navigateur pour le cache et le pub/sub :
// l'id utilisateur en mode connecté, un id invité stable sinon
func ClientID(state session.AuthState, cs *clientstore.Client) string {
	if state.Authenticated && state.User != nil {
		return state.User.ID
	}
	return cs.GuestID()
}

// Counts calcule les deux compteurs selon le mode (serveur ou invité)
func Counts(api *backend.Client, cs *clientstore.Client, state session.AuthState) cache.Counts {
	if !state.Authenticated {
		return guestCounts(cs)
	}

	clientID := ClientID(state, cs)
	if counts, ok := cache.GetCounts(clientID); ok {
		return counts
	}

	var counts cache.Counts

	if serverCart, err := api.GetCart(state.Token); err == nil {
		for _, item := range serverCart.Items {
			counts.Cart += item.Quantity
		}
	}
	if serverWishlist, err := api.GetWishlist(state.Token); err == nil {
		counts.Wishlist = len(serverWishlist.Items)
	}

	cache.SetCounts(clientID, counts)
	return counts
}

func guestCounts(cs *clientstore.Client) cache.Counts {
	var counts cache.Counts
	for _, item := range GetGuestCart(cs).Items {
		counts.Cart += item.Quantity
	}
	counts.Wishlist = len(GetGuestWishlist(cs).Items)
	return counts
}
