package admin

import (
	"net/http"

	"koovappally_front_end/internal/middleware"
	"koovappally_front_end/internal/models"

	"github.com/gin-gonic/gin"
)

//
// 🟢 GET /admin/users
//
func GetUsers(c *gin.Context) {
	state := middleware.AuthFromContext(c)
	users, err := api.ListUsers(state.Token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"users": []models.User{},
			"error": apiMessage(err, "Failed to load users"),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "total": len(users)})
}

//
// 🟢 GET /admin/users/:id
//
func GetUser(c *gin.Context) {
	state := middleware.AuthFromContext(c)
	user, err := api.GetUser(state.Token, c.Param("id"))
	if err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to load user")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
