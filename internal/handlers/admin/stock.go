package admin

import (
	"net/http"

	"koovappally_front_end/internal/middleware"
	"koovappally_front_end/internal/models"

	"github.com/gin-gonic/gin"
)

//
// 🟢 GET /admin/stock
//
func GetStock(c *gin.Context) {
	state := middleware.AuthFromContext(c)
	stock, err := api.ListStock(state.Token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"stockItems": []models.StockItem{},
			"error":      apiMessage(err, "Failed to load stock"),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"stockItems": stock.StockItems,
		"total":      stock.Total,
		"stats":      stock.Stats,
	})
}

//
// 🟢 POST /admin/stock — les attributs dépendent de la catégorie
// (timber / furniture / construction), on vérifie leur forme avant envoi
//
func CreateStock(c *gin.Context) {
	var item models.StockItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if item.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item name is required"})
		return
	}
	if item.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity cannot be negative"})
		return
	}
	if msg := validateAttributes(item); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	state := middleware.AuthFromContext(c)
	if err := api.CreateStock(state.Token, item); err != nil {
		c.JSON(apiStatus(err), gin.H{"error": apiMessage(err, "Failed to add stock item")})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Stock item added successfully"})
}

// validateAttributes décode les attributs selon la catégorie : union
// taguée, pas de map libre. Attributs absents acceptés.
func validateAttributes(item models.StockItem) string {
	ok := false
	switch item.Category {
	case "timber":
		_, ok = item.TimberAttributes()
	case "furniture":
		_, ok = item.FurnitureAttributes()
	case "construction":
		_, ok = item.ConstructionAttributes()
	default:
		return "Select a valid category"
	}
	if len(item.Attributes) > 0 && !ok {
		return "Invalid attributes for category " + item.Category
	}
	return ""
}
