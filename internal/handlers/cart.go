package handlers

import (
	"log"
	"net/http"

	"koovappally_front_end/internal/cache"
	"koovappally_front_end/internal/cart"
	"koovappally_front_end/internal/clientstore"
	"koovappally_front_end/internal/middleware"
	"koovappally_front_end/internal/models"

	"github.com/gin-gonic/gin"
)

//
// 🟢 GET /cart — vue panier. En mode connecté, rejoue d'abord une
// éventuelle intention capturée avant le login, puis refetch.
//
func GetCart(c *gin.Context) {
	state := middleware.AuthFromContext(c)
	cs := clientstore.FromContext(c)

	if !state.Authenticated {
		guestCart := cart.GetGuestCart(cs)
		saveSession(cs)
		c.JSON(http.StatusOK, gin.H{"cart": guestCart, "guest": true})
		return
	}

	replay := cart.ReplayPendingCart(cs, api, state.Token)
	if replay.Replayed {
		cache.InvalidateCounts(cart.ClientID(state, cs))
	}
	saveSession(cs)

	serverCart, err := api.GetCart(state.Token)
	if err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to load cart")})
		return
	}

	resp := gin.H{"cart": serverCart, "guest": false}
	if replay.Replayed {
		if replay.Err != nil {
			resp["replayError"] = "Could not add " + replay.ProductName + " to your cart"
		} else {
			resp["replayed"] = replay.ProductName + " added to your cart"
		}
	}
	c.JSON(http.StatusOK, resp)
}

//
// 🟢 POST /cart/add — ajout au panier.
// Connecté : écriture serveur puis refetch par l'appelant.
// Invité : capture d'intention + redirection /login, sauf guest=1 qui
// écrit dans le panier invité local (flux wishlist → panier).
//
func AddToCart(c *gin.Context) {
	var input struct {
		Product  models.Product `json:"product"`
		Quantity int            `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Quantity < 1 {
		input.Quantity = 1
	}

	state := middleware.AuthFromContext(c)
	cs := clientstore.FromContext(c)

	if !state.Authenticated {
		if c.Query("guest") == "1" {
			guestCart := cart.AddGuestItem(cs, input.Product, input.Quantity)
			saveSession(cs)
			c.JSON(http.StatusOK, gin.H{"cart": guestCart, "message": input.Product.Name + " added to cart"})
			return
		}
		cart.CapturePendingCart(cs, input.Product.ID, input.Product.Name, input.Quantity)
		saveSession(cs)
		c.JSON(http.StatusUnauthorized, gin.H{"redirect": "/login", "message": "Please log in to add items to your cart"})
		return
	}

	if err := api.AddToCart(state.Token, input.Product.ID, input.Quantity); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to add to cart")})
		return
	}

	cache.InvalidateCounts(cart.ClientID(state, cs))
	saveSession(cs)
	c.JSON(http.StatusOK, gin.H{"message": input.Product.Name + " added to cart"})
}

//
// 🟢 PATCH /cart/quantity — stepper de quantité, borné à [1, stock]
//
func UpdateCartQuantity(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	state := middleware.AuthFromContext(c)
	cs := clientstore.FromContext(c)

	if !state.Authenticated {
		guestCart := cart.UpdateGuestQuantity(cs, input.ProductID, input.Quantity)
		saveSession(cs)
		c.JSON(http.StatusOK, gin.H{"cart": guestCart})
		return
	}

	if input.Quantity < 1 {
		// Descendre sous 1 est un no-op, l'UI garde la ligne
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	if err := api.UpdateCartQuantity(state.Token, input.ProductID, input.Quantity); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to update quantity")})
		return
	}

	cache.InvalidateCounts(cart.ClientID(state, cs))
	saveSession(cs)
	c.JSON(http.StatusOK, gin.H{})
}

//
// 🟢 DELETE /cart/:productId
//
func RemoveFromCart(c *gin.Context) {
	productID := c.Param("productId")
	state := middleware.AuthFromContext(c)
	cs := clientstore.FromContext(c)

	if !state.Authenticated {
		guestCart := cart.RemoveGuestItem(cs, productID)
		saveSession(cs)
		c.JSON(http.StatusOK, gin.H{"cart": guestCart})
		return
	}

	if err := api.RemoveFromCart(state.Token, productID); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to remove item")})
		return
	}

	cache.InvalidateCounts(cart.ClientID(state, cs))
	saveSession(cs)
	c.JSON(http.StatusOK, gin.H{})
}

//
// 🟢 DELETE /cart — vider le panier
//
func ClearCart(c *gin.Context) {
	state := middleware.AuthFromContext(c)
	cs := clientstore.FromContext(c)

	if !state.Authenticated {
		cs.Delete(clientstore.KeyGuestCart)
		saveSession(cs)
		c.JSON(http.StatusOK, gin.H{"cart": models.Cart{Items: []models.CartItem{}}})
		return
	}

	if err := api.ClearCart(state.Token); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to clear cart")})
		return
	}

	cache.InvalidateCounts(cart.ClientID(state, cs))
	saveSession(cs)
	c.JSON(http.StatusOK, gin.H{})
}

//
// 🟢 POST /checkout/selection — lignes cochées pour le checkout
//
func SaveCheckoutSelection(c *gin.Context) {
	var input struct {
		ProductIDs []string `json:"productIds"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	cs := clientstore.FromContext(c)
	if err := cs.SetJSON(clientstore.KeyCheckoutSelected, input.ProductIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde session"})
		return
	}
	saveSession(cs)
	c.JSON(http.StatusOK, gin.H{})
}

//
// 🟢 GET /checkout/selection
//
func GetCheckoutSelection(c *gin.Context) {
	cs := clientstore.FromContext(c)
	var ids []string
	cs.GetJSON(clientstore.KeyCheckoutSelected, &ids)
	saveSession(cs)
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"productIds": ids})
}

func saveSession(cs *clientstore.Client) {
	if err := cs.Save(); err != nil {
		log.Printf("⚠️ Erreur sauvegarde session: %v", err)
	}
}
