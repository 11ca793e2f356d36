package backend

import (
	"net/http"

	"koovappally_front_end/internal/models"
)

type StockStats struct {
	TotalItems    int `json:"totalItems"`
	TotalQuantity int `json:"totalQuantity"`
	LowStockCount int `json:"lowStockCount"`
}

type StockList struct {
	StockItems []models.StockItem `json:"stockItems"`
	Total      int                `json:"total"`
	Stats      StockStats         `json:"stats"`
}

func (c *Client) ListStock(token string) (*StockList, error) {
	var out StockList
	if err := c.doJSON(http.MethodGet, "/stock", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateStock(token string, item models.StockItem) error {
	return c.doJSON(http.MethodPost, "/stock", token, item, nil)
}
