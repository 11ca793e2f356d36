package imagesearch

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"koovappally_front_end/internal/models"
)

// Rapprochement des voisins renvoyés par le service de similarité avec le
// catalogue déjà chargé. Heuristique volontairement conservée à l'identique
// (ordre des stratégies, seuils, table de synonymes) : l'objectif est la
// parité de comportement, pas la précision.

const (
	TopK               = 15
	MinSimilarityScore = 0.70
	MaxUploadBytes     = 5 * 1024 * 1024
)

// Table des types de meubles : mot-clé du nom de fichier → termes
// équivalents possibles dans le nom du produit
var furnitureTypes = map[string][]string{
	"bed":       {"bed", "mattress", "bunk"},
	"chair":     {"chair", "seat", "stool"},
	"table":     {"table", "desk"},
	"sofa":      {"sofa", "couch", "settee"},
	"wardrobe":  {"wardrobe", "closet", "cabinet"},
	"bookshelf": {"bookshelf", "shelf", "bookcase"},
	"dining":    {"dining", "dinner"},
	"study":     {"study", "office", "work"},
}

// Outcome distingue les trois échecs possibles pour des messages précis
type Outcome int

const (
	OutcomeMatched Outcome = iota
	OutcomeNoResults
	OutcomeBelowThreshold
	OutcomeNoneMapped
)

type MatchResult struct {
	Outcome  Outcome
	Products []models.MatchedProduct
	TopScore float64
}

// ValidateUpload rejette avant tout appel réseau : fichier vide, trop gros,
// ou pas une image
func ValidateUpload(size int64, contentType string) error {
	if size <= 0 {
		return fmt.Errorf("no image file selected")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("please select a valid image file")
	}
	if size > MaxUploadBytes {
		return fmt.Errorf("image size must be less than 5MB")
	}
	return nil
}

// Match applique la cascade : filtre au seuil 0.70, puis par score
// décroissant (a) id exact, (b) nom exact, (c) repli flou sur le nom de
// fichier. Un produit du catalogue n'est apparié qu'une seule fois.
func Match(results []models.ImageSearchResult, catalog []models.Product) MatchResult {
	if len(results) == 0 {
		return MatchResult{Outcome: OutcomeNoResults}
	}

	surviving := make([]models.ImageSearchResult, 0, len(results))
	for _, r := range results {
		if r.Score >= MinSimilarityScore {
			surviving = append(surviving, r)
		}
	}
	if len(surviving) == 0 {
		return MatchResult{Outcome: OutcomeBelowThreshold}
	}

	sort.SliceStable(surviving, func(i, j int) bool {
		return surviving[i].Score > surviving[j].Score
	})

	byID := make(map[string]int, len(catalog))
	byName := make(map[string]int, len(catalog))
	for i, p := range catalog {
		byID[normalizeID(p.ID)] = i
		byName[strings.ToLower(p.Name)] = i
	}

	used := make(map[string]bool, len(catalog))
	matched := make([]models.MatchedProduct, 0, len(surviving))

	for _, result := range surviving {
		idx, ok := resolve(result, catalog, byID, byName, used)
		if !ok {
			continue
		}
		product := catalog[idx]
		used[product.ID] = true
		matched = append(matched, models.MatchedProduct{
			Product:         product,
			SimilarityScore: result.Score,
			SearchResult:    result,
		})
	}

	if len(matched) == 0 {
		return MatchResult{Outcome: OutcomeNoneMapped}
	}

	// Déjà construit par score décroissant, le tri reste stable
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].SimilarityScore > matched[j].SimilarityScore
	})

	return MatchResult{
		Outcome:  OutcomeMatched,
		Products: matched,
		TopScore: matched[0].SimilarityScore,
	}
}

// resolve tente les trois stratégies dans l'ordre, premier succès gagnant
func resolve(result models.ImageSearchResult, catalog []models.Product, byID, byName map[string]int, used map[string]bool) (int, bool) {
	// (a) id produit exact, insensible à la casse
	if result.ProductID != "" {
		if idx, ok := byID[normalizeID(result.ProductID)]; ok && !used[catalog[idx].ID] {
			return idx, true
		}
	}

	// (b) nom produit exact en minuscules
	if result.ProductName != "" {
		if idx, ok := byName[strings.ToLower(result.ProductName)]; ok && !used[catalog[idx].ID] {
			return idx, true
		}
	}

	// (c) repli flou sur les mots du nom de fichier
	keywords := filenameKeywords(result.Filename)
	if len(keywords) == 0 {
		return 0, false
	}
	for idx, product := range catalog {
		if used[product.ID] {
			continue
		}
		if fuzzyMatch(keywords, strings.ToLower(product.Name)) {
			return idx, true
		}
	}
	return 0, false
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// filenameKeywords : extension retirée, découpe sur -/_/espaces, mots de
// 2 caractères ou moins écartés
func filenameKeywords(filename string) []string {
	name := strings.ToLower(filename)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	keywords := fields[:0]
	for _, f := range fields {
		if len(f) > 2 {
			keywords = append(keywords, f)
		}
	}
	return keywords
}

func fuzzyMatch(keywords []string, productName string) bool {
	firstWord := productName
	if i := strings.IndexByte(productName, ' '); i >= 0 {
		firstWord = productName[:i]
	}

	// Un mot du fichier apparaît dans le nom du produit, ou l'inverse
	for _, keyword := range keywords {
		if strings.Contains(productName, keyword) || strings.Contains(keyword, firstWord) {
			return true
		}
	}

	// Correspondance par type de meuble via la table de synonymes
	for _, variations := range furnitureTypes {
		keywordHit := false
		for _, keyword := range keywords {
			for _, v := range variations {
				if keyword == v {
					keywordHit = true
					break
				}
			}
			if keywordHit {
				break
			}
		}
		if !keywordHit {
			continue
		}
		for _, v := range variations {
			if strings.Contains(productName, v) {
				return true
			}
		}
	}
	return false
}

// SuccessMessage : message de succès avec le meilleur score en pourcentage
func SuccessMessage(r MatchResult) string {
	return fmt.Sprintf("Found %d similar products! (Similarity: %.0f%%+)", len(r.Products), r.TopScore*100)
}

// FailureMessage distingue les trois cas d'échec
func FailureMessage(o Outcome) string {
	switch o {
	case OutcomeNoResults:
		return "No similar products found"
	case OutcomeBelowThreshold:
		return "No similar products found with high confidence. Try a different image or check if similar products exist in catalog."
	case OutcomeNoneMapped:
		return "Similar images were found but none could be mapped to catalog products."
	}
	return ""
}
