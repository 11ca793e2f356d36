package backend

import (
	"fmt"
	"net/http"

	"koovappally_front_end/internal/models"
)

// ListProducts récupère le catalogue. La pagination se limite au paramètre
// limit : le tri/filtre se fait ensuite en mémoire (internal/catalog).
func (c *Client) ListProducts(limit int) ([]models.Product, error) {
	var out struct {
		Products []models.Product `json:"products"`
	}
	path := fmt.Sprintf("/products?limit=%d", limit)
	if err := c.doJSON(http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return out.Products, nil
}
