package handlers

import (
	"net/http"

	"koovappally_front_end/internal/middleware"
	"koovappally_front_end/internal/models"
	"koovappally_front_end/internal/validation"

	"github.com/gin-gonic/gin"
)

func addressForm(addr models.Address) map[string]string {
	return map[string]string{
		"fullName":     addr.FullName,
		"mobileNumber": addr.MobileNumber,
		"pincode":      addr.Pincode,
		"state":        addr.State,
		"address":      addr.Address,
		"city":         addr.City,
	}
}

//
// 🟢 GET /addresses
//
func ListAddresses(c *gin.Context) {
	state := middleware.AuthFromContext(c)
	addresses, err := api.ListAddresses(state.Token)
	if err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to load addresses")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

//
// 🟢 POST /addresses
//
func CreateAddress(c *gin.Context) {
	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if errors := validation.AddressSchema().Validate(addressForm(addr)); len(errors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errors})
		return
	}

	state := middleware.AuthFromContext(c)
	if err := api.CreateAddress(state.Token, addr); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to save address")})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Address saved"})
}

//
// 🟢 PUT /addresses/:id
//
func UpdateAddress(c *gin.Context) {
	var addr models.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if errors := validation.AddressSchema().Validate(addressForm(addr)); len(errors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errors})
		return
	}

	state := middleware.AuthFromContext(c)
	if err := api.UpdateAddress(state.Token, c.Param("id"), addr); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to update address")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address updated"})
}

//
// 🟢 DELETE /addresses/:id
//
func DeleteAddress(c *gin.Context) {
	state := middleware.AuthFromContext(c)
	if err := api.DeleteAddress(state.Token, c.Param("id")); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to delete address")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
}

//
// 🟢 PATCH /addresses/:id/default — le backend garantit l'unicité de
// l'adresse par défaut, on refetch pour l'affichage
//
func SetDefaultAddress(c *gin.Context) {
	state := middleware.AuthFromContext(c)
	if err := api.SetDefaultAddress(state.Token, c.Param("id")); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to set default address")})
		return
	}

	addresses, err := api.ListAddresses(state.Token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"message": "Default address updated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Default address updated", "addresses": addresses})
}
