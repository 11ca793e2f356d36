package models

type VendorAddress struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Pincode string `json:"pincode,omitempty"`
	Country string `json:"country,omitempty"`
}

type VendorContact struct {
	Email   string        `json:"email,omitempty"`
	Phone   string        `json:"phone"`
	Address VendorAddress `json:"address"`
}

type BusinessDetails struct {
	GSTNumber    string `json:"gstNumber,omitempty"`
	PANNumber    string `json:"panNumber,omitempty"`
	BusinessType string `json:"businessType"` // individual | company | partnership
}

type IntakeTotals struct {
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

type Vendor struct {
	ID              string          `json:"_id"`
	Name            string          `json:"name"`
	Contact         VendorContact   `json:"contact"`
	BusinessDetails BusinessDetails `json:"businessDetails"`
	Status          string          `json:"status"` // active | inactive | suspended
	TotalIntake     IntakeTotals    `json:"totalIntake"`
}

type VendorStats struct {
	TotalVendors   int      `json:"totalVendors"`
	ActiveVendors  int      `json:"activeVendors"`
	TotalIntakes   int      `json:"totalIntakes"`
	PendingIntakes int      `json:"pendingIntakes"`
	TotalValue     float64  `json:"totalValue"`
	TopVendors     []Vendor `json:"topVendors,omitempty"`
}
