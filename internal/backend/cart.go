package backend

import (
	"net/http"
	"net/url"

	"koovappally_front_end/internal/models"
)

func (c *Client) GetCart(token string) (*models.Cart, error) {
	var out models.Cart
	if err := c.doJSON(http.MethodGet, "/cart", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddToCart(token, productID string, quantity int) error {
	return c.doJSON(http.MethodPost, "/cart", token, map[string]interface{}{
		"productId": productID,
		"quantity":  quantity,
	}, nil)
}

func (c *Client) UpdateCartQuantity(token, productID string, quantity int) error {
	return c.doJSON(http.MethodPatch, "/cart", token, map[string]interface{}{
		"productId": productID,
		"quantity":  quantity,
	}, nil)
}

func (c *Client) RemoveFromCart(token, productID string) error {
	return c.doJSON(http.MethodDelete, "/cart/"+url.PathEscape(productID), token, nil, nil)
}

func (c *Client) ClearCart(token string) error {
	return c.doJSON(http.MethodDelete, "/cart", token, nil, nil)
}
