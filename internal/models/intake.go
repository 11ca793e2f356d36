package models

type WoodDimensions struct {
	Length    float64 `json:"length"` // pieds
	Width     float64 `json:"width"`  // pouces
	Thickness float64 `json:"thickness"`
	Quantity  int     `json:"quantity"` // nombre de pièces
}

type WoodDetails struct {
	Type       string         `json:"type"` // teak | rosewood | pine | oak | cedar | mahogany | bamboo | plywood | other
	Subtype    string         `json:"subtype,omitempty"`
	Dimensions WoodDimensions `json:"dimensions"`
	Quality    string         `json:"quality"`   // premium | grade_a | grade_b | standard
	Condition  string         `json:"condition"` // excellent | good | fair | poor
}

type CostDetails struct {
	UnitPrice     float64 `json:"unitPrice"`
	Currency      string  `json:"currency"`
	TotalCost     float64 `json:"totalCost"`
	PaymentStatus string  `json:"paymentStatus"` // pending | partial | paid
	PaymentMethod string  `json:"paymentMethod"` // cash | bank_transfer | cheque | upi
}

type IntakeLocation struct {
	Warehouse string `json:"warehouse,omitempty"`
	Section   string `json:"section,omitempty"`
	Rack      string `json:"rack,omitempty"`
}

type Logistics struct {
	DeliveryDate   string         `json:"deliveryDate"`
	DeliveryMethod string         `json:"deliveryMethod"` // pickup | delivery
	Location       IntakeLocation `json:"location"`
}

type WoodIntake struct {
	ID          string      `json:"_id,omitempty"`
	VendorID    string      `json:"vendorId"`
	WoodDetails WoodDetails `json:"woodDetails"`
	CostDetails CostDetails `json:"costDetails"`
	Logistics   Logistics   `json:"logistics"`
	Status      string      `json:"status,omitempty"` // pending | received | verified | rejected
	Notes       string      `json:"notes,omitempty"`
}
