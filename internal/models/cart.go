package models

type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
	Available int     `json:"available"` // snapshot du stock au moment du fetch
	Image     string  `json:"image,omitempty"`
}

type Cart struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

// PendingItem : intention d'achat capturée au moment de la redirection vers
// /login (mode invité). Rejouée après connexion si elle a moins de 5 minutes.
type PendingItem struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Timestamp   int64  `json:"timestamp"` // millisecondes Unix
}
