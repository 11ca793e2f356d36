package backend

import (
	"net/http"
	"net/url"

	"koovappally_front_end/internal/models"
)

func (c *Client) ListAddresses(token string) ([]models.Address, error) {
	var out struct {
		Addresses []models.Address `json:"addresses"`
	}
	if err := c.doJSON(http.MethodGet, "/addresses", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Addresses, nil
}

func (c *Client) CreateAddress(token string, addr models.Address) error {
	return c.doJSON(http.MethodPost, "/addresses", token, addr, nil)
}

func (c *Client) UpdateAddress(token, id string, addr models.Address) error {
	return c.doJSON(http.MethodPut, "/addresses/"+url.PathEscape(id), token, addr, nil)
}

func (c *Client) DeleteAddress(token, id string) error {
	return c.doJSON(http.MethodDelete, "/addresses/"+url.PathEscape(id), token, nil, nil)
}

// SetDefaultAddress : mutation dédiée — le backend garantit l'invariant
// "exactement une adresse par défaut", jamais géré localement
func (c *Client) SetDefaultAddress(token, id string) error {
	return c.doJSON(http.MethodPatch, "/addresses/"+url.PathEscape(id)+"/default", token, nil, nil)
}
