package handlers

import (
	"net/http"

	"koovappally_front_end/internal/cache"
	"koovappally_front_end/internal/cart"
	"koovappally_front_end/internal/clientstore"
	"koovappally_front_end/internal/middleware"
	"koovappally_front_end/internal/models"

	"github.com/gin-gonic/gin"
)

//
// 🟢 GET /wishlist — même logique de rejeu post-login que le panier
//
func GetWishlist(c *gin.Context) {
	state := middleware.AuthFromContext(c)
	cs := clientstore.FromContext(c)

	if !state.Authenticated {
		guestWishlist := cart.GetGuestWishlist(cs)
		saveSession(cs)
		c.JSON(http.StatusOK, gin.H{"wishlist": guestWishlist, "guest": true})
		return
	}

	replay := cart.ReplayPendingWishlist(cs, api, state.Token)
	if replay.Replayed {
		cache.InvalidateCounts(cart.ClientID(state, cs))
	}
	saveSession(cs)

	serverWishlist, err := api.GetWishlist(state.Token)
	if err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to load wishlist")})
		return
	}

	resp := gin.H{"wishlist": serverWishlist, "guest": false}
	if replay.Replayed {
		if replay.Err != nil {
			resp["replayError"] = "Could not add " + replay.ProductName + " to your wishlist"
		} else {
			resp["replayed"] = replay.ProductName + " added to your wishlist"
		}
	}
	c.JSON(http.StatusOK, resp)
}

//
// 🟢 POST /wishlist/add
//
func AddToWishlist(c *gin.Context) {
	var input struct {
		Product models.Product `json:"product"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	state := middleware.AuthFromContext(c)
	cs := clientstore.FromContext(c)

	if !state.Authenticated {
		if c.Query("guest") == "1" {
			guestWishlist := cart.AddGuestWishlistItem(cs, input.Product)
			saveSession(cs)
			c.JSON(http.StatusOK, gin.H{"wishlist": guestWishlist, "message": input.Product.Name + " added to wishlist"})
			return
		}
		cart.CapturePendingWishlist(cs, input.Product.ID, input.Product.Name)
		saveSession(cs)
		c.JSON(http.StatusUnauthorized, gin.H{"redirect": "/login", "message": "Please log in to save items to your wishlist"})
		return
	}

	if err := api.AddToWishlist(state.Token, input.Product.ID); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to add to wishlist")})
		return
	}

	cache.InvalidateCounts(cart.ClientID(state, cs))
	saveSession(cs)
	c.JSON(http.StatusOK, gin.H{"message": input.Product.Name + " added to wishlist"})
}

//
// 🟢 DELETE /wishlist/:productId
//
func RemoveFromWishlist(c *gin.Context) {
	productID := c.Param("productId")
	state := middleware.AuthFromContext(c)
	cs := clientstore.FromContext(c)

	if !state.Authenticated {
		guestWishlist := cart.RemoveGuestWishlistItem(cs, productID)
		saveSession(cs)
		c.JSON(http.StatusOK, gin.H{"wishlist": guestWishlist})
		return
	}

	if err := api.RemoveFromWishlist(state.Token, productID); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to remove item")})
		return
	}

	cache.InvalidateCounts(cart.ClientID(state, cs))
	saveSession(cs)
	c.JSON(http.StatusOK, gin.H{})
}
