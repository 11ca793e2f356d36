package backend

import (
	"net/http"
	"net/url"

	"koovappally_front_end/internal/models"
)

func (c *Client) GetWishlist(token string) (*models.Wishlist, error) {
	var out models.Wishlist
	if err := c.doJSON(http.MethodGet, "/wishlist", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddToWishlist(token, productID string) error {
	return c.doJSON(http.MethodPost, "/wishlist", token, map[string]string{
		"productId": productID,
	}, nil)
}

func (c *Client) RemoveFromWishlist(token, productID string) error {
	return c.doJSON(http.MethodDelete, "/wishlist/"+url.PathEscape(productID), token, nil, nil)
}
