package backend

import (
	"net/http"
	"net/url"

	"koovappally_front_end/internal/models"
)

func (c *Client) ListVendors(token string) ([]models.Vendor, error) {
	var out struct {
		Vendors []models.Vendor `json:"vendors"`
	}
	if err := c.doJSON(http.MethodGet, "/vendors", token, nil, &out); err != nil {
		return nil, err
	}
	return out.Vendors, nil
}

func (c *Client) CreateVendor(token string, vendor models.Vendor) error {
	return c.doJSON(http.MethodPost, "/vendors", token, vendor, nil)
}

func (c *Client) UpdateVendor(token, id string, vendor models.Vendor) error {
	return c.doJSON(http.MethodPut, "/vendors/"+url.PathEscape(id), token, vendor, nil)
}

func (c *Client) VendorStats(token string) (*models.VendorStats, error) {
	var out models.VendorStats
	if err := c.doJSON(http.MethodGet, "/vendors/stats", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListWoodIntakes(token string) ([]models.WoodIntake, error) {
	var out struct {
		WoodIntakes []models.WoodIntake `json:"woodIntakes"`
	}
	if err := c.doJSON(http.MethodGet, "/vendors/intake/all", token, nil, &out); err != nil {
		return nil, err
	}
	return out.WoodIntakes, nil
}

func (c *Client) CreateWoodIntake(token string, intake models.WoodIntake) error {
	return c.doJSON(http.MethodPost, "/vendors/intake", token, intake, nil)
}

func (c *Client) UpdateIntakeStatus(token, id, status string) error {
	return c.doJSON(http.MethodPut, "/vendors/intake/"+url.PathEscape(id)+"/status", token, map[string]string{
		"status": status,
	}, nil)
}
