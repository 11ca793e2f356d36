package models

type WishlistItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Category  string  `json:"category,omitempty"`
	Image     string  `json:"image,omitempty"`
}

type Wishlist struct {
	Items []WishlistItem `json:"items"`
}
