package models

// ImageSearchResult : un voisin renvoyé par le service de similarité.
// product_id et product_name sont des indices, pas des références sûres —
// le rapprochement avec le catalogue se fait côté front (internal/imagesearch).
type ImageSearchResult struct {
	ProductID   string  `json:"product_id,omitempty"`
	ProductName string  `json:"product_name,omitempty"`
	Filename    string  `json:"filename,omitempty"`
	Score       float64 `json:"score"`
}

type ImageSearchResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Results []ImageSearchResult `json:"results"`
	} `json:"data"`
	Message string `json:"message,omitempty"`
}

// MatchedProduct : produit du catalogue rapproché d'un résultat de recherche
type MatchedProduct struct {
	Product
	SimilarityScore float64           `json:"similarityScore"`
	SearchResult    ImageSearchResult `json:"searchResult"`
}
