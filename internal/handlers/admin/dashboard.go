package admin

import (
	"net/http"

	"koovappally_front_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

//
// 🟢 GET /admin/overview — chiffres clés du tableau de bord.
// Contrairement aux listes, un échec ici est bloquant : pas de données de
// repli à afficher.
//
func GetOverview(c *gin.Context) {
	state := middleware.AuthFromContext(c)
	overview, err := api.AdminOverview(state.Token)
	if err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to load dashboard data")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"overview": overview})
}
