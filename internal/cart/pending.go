package cart

import (
	"log"
	"time"

	"koovappally_front_end/internal/backend"
	"koovappally_front_end/internal/clientstore"
	"koovappally_front_end/internal/models"
)

// Machine à trois états du passage invité → connecté :
// navigation invité → capture d'intention à la redirection /login →
// rejeu après connexion si l'intention a moins de 5 minutes.

const PendingWindow = 5 * time.Minute

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// CapturePendingCart enregistre l'intention d'ajout au panier et la
// destination post-login
func CapturePendingCart(cs *clientstore.Client, productID, productName string, quantity int) {
	cs.SetJSON(clientstore.KeyPendingCartItem, models.PendingItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		Timestamp:   nowMillis(),
	})
	cs.SetString(clientstore.KeyLoginRedirect, "/cart")
}

func CapturePendingWishlist(cs *clientstore.Client, productID, productName string) {
	cs.SetJSON(clientstore.KeyPendingWishlistItem, models.PendingItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    1,
		Timestamp:   nowMillis(),
	})
	cs.SetString(clientstore.KeyLoginRedirect, "/wishlist")
}

// ReplayResult : issue du rejeu d'une intention capturée
type ReplayResult struct {
	Replayed    bool
	ProductName string
	Err         error
}

// ReplayPendingCart rejoue l'ajout panier capturé avant la connexion.
// Intention absente ou illisible : rien. Plus vieille que 5 minutes :
// supprimée sans appel réseau. Échec du rejeu : l'intention est supprimée
// quand même pour ne pas rejouer en boucle à chaque chargement.
func ReplayPendingCart(cs *clientstore.Client, api *backend.Client, token string) ReplayResult {
	item, ok := readPending(cs, clientstore.KeyPendingCartItem)
	if !ok {
		return ReplayResult{}
	}

	cs.Delete(clientstore.KeyPendingCartItem)
	err := api.AddToCart(token, item.ProductID, item.Quantity)
	if err != nil {
		log.Printf("❌ Rejeu de l'ajout panier échoué pour %s: %v", item.ProductID, err)
		return ReplayResult{Replayed: true, ProductName: item.ProductName, Err: err}
	}
	return ReplayResult{Replayed: true, ProductName: item.ProductName}
}

func ReplayPendingWishlist(cs *clientstore.Client, api *backend.Client, token string) ReplayResult {
	item, ok := readPending(cs, clientstore.KeyPendingWishlistItem)
	if !ok {
		return ReplayResult{}
	}

	cs.Delete(clientstore.KeyPendingWishlistItem)
	err := api.AddToWishlist(token, item.ProductID)
	if err != nil {
		log.Printf("❌ Rejeu de l'ajout wishlist échoué pour %s: %v", item.ProductID, err)
		return ReplayResult{Replayed: true, ProductName: item.ProductName, Err: err}
	}
	return ReplayResult{Replayed: true, ProductName: item.ProductName}
}

// readPending lit et filtre une intention : données corrompues ou fenêtre
// de fraîcheur dépassée ⇒ clé supprimée, pas de rejeu
func readPending(cs *clientstore.Client, key string) (models.PendingItem, bool) {
	var item models.PendingItem
	if !cs.GetJSON(key, &item) {
		return item, false
	}
	age := time.Duration(nowMillis()-item.Timestamp) * time.Millisecond
	if age >= PendingWindow {
		cs.Delete(key)
		return item, false
	}
	return item, true
}
