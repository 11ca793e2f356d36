package models

// WoodQualityInput : caractéristiques envoyées au classifieur ML
type WoodQualityInput struct {
	VendorID  string  `json:"vendorId,omitempty"`
	WoodType  string  `json:"woodType"`
	Density   float64 `json:"density,omitempty"`
	Moisture  float64 `json:"moisture,omitempty"`
	Hardness  float64 `json:"hardness,omitempty"`
	GrainType string  `json:"grainType,omitempty"`
}

// WoodQualityPrediction : vote d'un des modèles entraînés
type WoodQualityPrediction struct {
	Prediction string  `json:"prediction"`
	Confidence float64 `json:"confidence,omitempty"`
}
