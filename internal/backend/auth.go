package backend

import (
	"net/http"

	"koovappally_front_end/internal/models"
)

type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func (c *Client) Login(email, password string) (*LoginResponse, error) {
	var out LoginResponse
	err := c.doJSON(http.MethodPost, "/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Register(name, email, password, phone string) error {
	return c.doJSON(http.MethodPost, "/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"phone":    phone,
	}, nil)
}

// GoogleSignIn échange le profil Google (fourni par le provider fédéré)
// contre un token de l'API marketplace
func (c *Client) GoogleSignIn(email, name, googleID string) (*LoginResponse, error) {
	var out LoginResponse
	err := c.doJSON(http.MethodPost, "/auth/google", "", map[string]string{
		"email":    email,
		"name":     name,
		"googleId": googleID,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(token string, name, email, phone string) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	err := c.doJSON(http.MethodPut, "/auth/profile", token, map[string]string{
		"name":  name,
		"email": email,
		"phone": phone,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) ChangePassword(token, currentPassword, newPassword string) error {
	return c.doJSON(http.MethodPut, "/auth/change-password", token, map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}, nil)
}
