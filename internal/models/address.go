package models

type Address struct {
	ID           string `json:"_id,omitempty"`
	FullName     string `json:"fullName"`
	MobileNumber string `json:"mobileNumber"`
	Pincode      string `json:"pincode"`
	State        string `json:"state"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Landmark     string `json:"landmark,omitempty"`
	AddressType  string `json:"addressType"` // home | office | other
	IsDefault    bool   `json:"isDefault"`
}
