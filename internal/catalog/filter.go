package catalog

import (
	"sort"
	"strings"

	"koovappally_front_end/internal/models"
)

// Recherche / tri / filtre côté client, en mémoire, sur le catalogue déjà
// chargé. Pas de pagination au-delà du limit demandé au backend.

// FilterByCategory garde les produits d'une catégorie de page
func FilterByCategory(products []models.Product, category string) []models.Product {
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Search : sous-chaîne insensible à la casse sur nom, description,
// matériau et marque
func Search(products []models.Product, term string) []models.Product {
	if term == "" {
		return products
	}
	needle := strings.ToLower(term)
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) ||
			strings.Contains(strings.ToLower(p.Material), needle) ||
			strings.Contains(strings.ToLower(p.Brand), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Sort trie par name | price | material | brand, asc ou desc.
// Comparaison lexicographique pour les chaînes, numérique pour le prix.
// Clé inconnue : retombe sur le nom.
func Sort(products []models.Product, sortBy string, ascending bool) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	less := func(a, b models.Product) bool {
		switch sortBy {
		case "price":
			return a.Price < b.Price
		case "material":
			return strings.ToLower(a.Material) < strings.ToLower(b.Material)
		case "brand":
			return strings.ToLower(a.Brand) < strings.ToLower(b.Brand)
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return less(sorted[i], sorted[j])
		}
		return less(sorted[j], sorted[i])
	})
	return sorted
}
