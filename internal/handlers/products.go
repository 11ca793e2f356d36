package handlers

import (
	"net/http"
	"strconv"

	"koovappally_front_end/internal/catalog"

	"github.com/gin-gonic/gin"
)

// Limite demandée au backend par page catalogue — le tri/filtre/recherche
// se fait ensuite en mémoire, sans pagination supplémentaire
const catalogLimit = 100

//
// 🟢 GET /products?category=&search=&sortBy=&order=
//
func ListProducts(c *gin.Context) {
	limit := catalogLimit
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}

	products, err := api.ListProducts(limit)
	if err != nil {
		// Dégradation : liste vide + bannière, la page reste utilisable
		c.JSON(http.StatusOK, gin.H{
			"products": []any{},
			"error":    apiMessage(err, "Failed to load products"),
		})
		return
	}

	if category := c.Query("category"); category != "" {
		products = catalog.FilterByCategory(products, category)
	}
	if search := c.Query("search"); search != "" {
		products = catalog.Search(products, search)
	}

	sortBy := c.Query("sortBy")
	ascending := c.Query("order") != "desc"
	products = catalog.Sort(products, sortBy, ascending)

	c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
}
