package models

import "encoding/json"

// Les attributs d'un article de stock dépendent de sa catégorie.
// On les modélise en union taguée sur Category plutôt qu'en map libre,
// pour garder des formes exhaustives côté Go.

type TimberAttributes struct {
	WoodType  string `json:"woodType,omitempty"`
	Dimension string `json:"dimension,omitempty"`
	Grade     string `json:"grade,omitempty"`
}

type FurnitureAttributes struct {
	FurnitureType string `json:"furnitureType,omitempty"`
	Material      string `json:"material,omitempty"`
	Polish        string `json:"polish,omitempty"`
}

type ConstructionAttributes struct {
	ProductType string `json:"productType,omitempty"`
	Size        string `json:"size,omitempty"`
}

type StockItem struct {
	ID       string          `json:"_id,omitempty"`
	Name     string          `json:"name"`
	Category string          `json:"category"` // timber | furniture | construction
	Quantity int             `json:"quantity"`
	Unit     string          `json:"unit"`
	// Forme brute telle que renvoyée par l'API ; décoder avec les helpers ci-dessous
	Attributes json.RawMessage `json:"attributes,omitempty"`
}

func (s StockItem) TimberAttributes() (TimberAttributes, bool) {
	var a TimberAttributes
	if s.Category != "timber" || len(s.Attributes) == 0 {
		return a, false
	}
	return a, json.Unmarshal(s.Attributes, &a) == nil
}

func (s StockItem) FurnitureAttributes() (FurnitureAttributes, bool) {
	var a FurnitureAttributes
	if s.Category != "furniture" || len(s.Attributes) == 0 {
		return a, false
	}
	return a, json.Unmarshal(s.Attributes, &a) == nil
}

func (s StockItem) ConstructionAttributes() (ConstructionAttributes, bool) {
	var a ConstructionAttributes
	if s.Category != "construction" || len(s.Attributes) == 0 {
		return a, false
	}
	return a, json.Unmarshal(s.Attributes, &a) == nil
}
