package backend

import (
	"net/http"
	"net/url"

	"koovappally_front_end/internal/models"
)

func (c *Client) ListUsers(token string) ([]models.User, error) {
	var out struct {
		Users []models.User `json:"users"`
	}
	if err := c.doJSON(http.MethodGet, "/users", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) GetUser(token, id string) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.doJSON(http.MethodGet, "/users/"+url.PathEscape(id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) AdminOverview(token string) (*models.Overview, error) {
	var out models.Overview
	if err := c.doJSON(http.MethodGet, "/admin/overview", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
