package handlers

import (
	"net/http"

	"koovappally_front_end/internal/clientstore"
	"koovappally_front_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Préférence de localisation de l'acheteur, mémorisée par email pour
// survivre aux déconnexions

//
// 🟢 GET /preferences/location
//
func GetBuyerLocation(c *gin.Context) {
	state := middleware.AuthFromContext(c)
	cs := clientstore.FromContext(c)
	location := cs.GetString(clientstore.BuyerLocationKey(state.User.Email))
	saveSession(cs)
	c.JSON(http.StatusOK, gin.H{"location": location})
}

//
// 🟢 PUT /preferences/location
//
func SetBuyerLocation(c *gin.Context) {
	var input struct {
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	state := middleware.AuthFromContext(c)
	cs := clientstore.FromContext(c)
	cs.SetString(clientstore.BuyerLocationKey(state.User.Email), input.Location)
	saveSession(cs)
	c.JSON(http.StatusOK, gin.H{"location": input.Location})
}
