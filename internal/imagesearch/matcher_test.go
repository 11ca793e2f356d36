package imagesearch

import (
	"testing"

	"koovappally_front_end/internal/models"
)

func product(id, name string) models.Product {
	return models.Product{ID: id, Name: name}
}

func result(id, name, filename string, score float64) models.ImageSearchResult {
	return models.ImageSearchResult{ProductID: id, ProductName: name, Filename: filename, Score: score}
}

func TestMatchThresholdFilter(t *testing.T) {
	catalog := []models.Product{
		product("p1", "Teak Chair"),
		product("p2", "Oak Table"),
		product("p3", "Pine Bed"),
		product("p4", "Rosewood Sofa"),
	}
	results := []models.ImageSearchResult{
		result("p1", "Teak Chair", "chair.jpg", 0.9),
		result("p2", "Oak Table", "table.jpg", 0.75),
		result("p3", "Pine Bed", "bed.jpg", 0.5),
		result("p4", "Rosewood Sofa", "sofa.jpg", 0.3),
	}

	match := Match(results, catalog)
	if match.Outcome != OutcomeMatched {
		t.Fatalf("outcome = %v, attendu OutcomeMatched", match.Outcome)
	}
	if len(match.Products) != 2 {
		t.Fatalf("survivants au seuil 0.70 = %d, attendu 2", len(match.Products))
	}
	if match.Products[0].Product.ID != "p1" || match.Products[1].Product.ID != "p2" {
		t.Errorf("ordre par score décroissant attendu, obtenu %s puis %s",
			match.Products[0].Product.ID, match.Products[1].Product.ID)
	}
	if match.TopScore != 0.9 {
		t.Errorf("TopScore = %v, attendu 0.9", match.TopScore)
	}
}

func TestMatchNoResults(t *testing.T) {
	match := Match(nil, []models.Product{product("p1", "Teak Chair")})
	if match.Outcome != OutcomeNoResults {
		t.Errorf("outcome = %v, attendu OutcomeNoResults", match.Outcome)
	}
}

func TestMatchAllBelowThreshold(t *testing.T) {
	catalog := []models.Product{product("p1", "Teak Chair")}
	results := []models.ImageSearchResult{
		result("p1", "Teak Chair", "chair.jpg", 0.4),
		result("p1", "Teak Chair", "chair2.jpg", 0.69),
	}
	match := Match(results, catalog)
	if match.Outcome != OutcomeBelowThreshold {
		t.Errorf("outcome = %v, attendu OutcomeBelowThreshold", match.Outcome)
	}
}

func TestMatchNoneMapped(t *testing.T) {
	catalog := []models.Product{product("p1", "Teak Chair")}
	results := []models.ImageSearchResult{
		result("zz", "Unknown Thing", "xyz.bin", 0.95),
	}
	match := Match(results, catalog)
	if match.Outcome != OutcomeNoneMapped {
		t.Errorf("outcome = %v, attendu OutcomeNoneMapped", match.Outcome)
	}
}

func TestMatchDeduplicatesTarget(t *testing.T) {
	// Deux résultats qui résolvent vers le même produit : seul le mieux
	// noté est gardé, le produit n'apparaît pas deux fois
	catalog := []models.Product{
		product("p1", "Teak Chair"),
		product("p2", "Oak Table"),
	}
	results := []models.ImageSearchResult{
		result("p1", "Teak Chair", "chair-a.jpg", 0.92),
		result("p1", "Teak Chair", "chair-b.jpg", 0.85),
		result("p2", "Oak Table", "table.jpg", 0.80),
	}

	match := Match(results, catalog)
	if len(match.Products) != 2 {
		t.Fatalf("produits appariés = %d, attendu 2", len(match.Products))
	}
	if match.Products[0].Product.ID != "p1" || match.Products[0].SimilarityScore != 0.92 {
		t.Errorf("le doublon doit garder le meilleur score, obtenu %v", match.Products[0].SimilarityScore)
	}
	for i, p := range match.Products {
		for j, q := range match.Products {
			if i != j && p.Product.ID == q.Product.ID {
				t.Fatalf("produit %s dupliqué dans la sortie", p.Product.ID)
			}
		}
	}
}

func TestMatchStrategyIDIgnoresName(t *testing.T) {
	// L'id exact (insensible à la casse) résout même si le nom est absent
	// ou ne correspond pas
	catalog := []models.Product{product("ABC123", "Teak Chair")}
	results := []models.ImageSearchResult{
		result("abc123", "Completely Wrong Name", "whatever.jpg", 0.8),
	}
	match := Match(results, catalog)
	if match.Outcome != OutcomeMatched {
		t.Fatalf("outcome = %v, attendu OutcomeMatched", match.Outcome)
	}
	if match.Products[0].Product.ID != "ABC123" {
		t.Errorf("produit = %s, attendu ABC123", match.Products[0].Product.ID)
	}
}

func TestMatchStrategyExactName(t *testing.T) {
	catalog := []models.Product{product("p1", "Teak Chair")}
	results := []models.ImageSearchResult{
		result("other-id", "teak chair", "img.jpg", 0.8),
	}
	match := Match(results, catalog)
	if match.Outcome != OutcomeMatched {
		t.Fatalf("le nom exact en minuscules doit résoudre")
	}
}

func TestMatchStrategyFilenameFuzzy(t *testing.T) {
	catalog := []models.Product{
		product("p1", "Premium Study Desk"),
		product("p2", "Royal Couch Set"),
	}
	results := []models.ImageSearchResult{
		// "table" → synonymes {table, desk} → "Premium Study Desk"
		result("", "", "wooden-table-photo.jpg", 0.85),
		// "sofa" → synonymes {sofa, couch, settee} → "Royal Couch Set"
		result("", "", "sofa_image.png", 0.75),
	}
	match := Match(results, catalog)
	if match.Outcome != OutcomeMatched {
		t.Fatalf("outcome = %v, attendu OutcomeMatched", match.Outcome)
	}
	if len(match.Products) != 2 {
		t.Fatalf("produits appariés = %d, attendu 2", len(match.Products))
	}
	if match.Products[0].Product.ID != "p1" {
		t.Errorf("table → desk devait résoudre vers p1, obtenu %s", match.Products[0].Product.ID)
	}
	if match.Products[1].Product.ID != "p2" {
		t.Errorf("sofa → couch devait résoudre vers p2, obtenu %s", match.Products[1].Product.ID)
	}
}

func TestFilenameKeywords(t *testing.T) {
	keywords := filenameKeywords("my-teak_chair photo.jpg")
	want := []string{"teak", "chair", "photo"}
	if len(keywords) != len(want) {
		t.Fatalf("keywords = %v, attendu %v", keywords, want)
	}
	for i := range want {
		if keywords[i] != want[i] {
			t.Errorf("keywords[%d] = %q, attendu %q", i, keywords[i], want[i])
		}
	}
}

func TestValidateUpload(t *testing.T) {
	if err := ValidateUpload(0, "image/png"); err == nil {
		t.Error("fichier vide accepté")
	}
	if err := ValidateUpload(1024, "application/pdf"); err == nil {
		t.Error("type non-image accepté")
	}
	if err := ValidateUpload(MaxUploadBytes+1, "image/jpeg"); err == nil {
		t.Error("fichier > 5MB accepté")
	}
	if err := ValidateUpload(1024, "image/jpeg"); err != nil {
		t.Errorf("image valide refusée: %v", err)
	}
}

func TestFailureMessagesDistinct(t *testing.T) {
	msgs := map[string]bool{}
	for _, o := range []Outcome{OutcomeNoResults, OutcomeBelowThreshold, OutcomeNoneMapped} {
		msg := FailureMessage(o)
		if msg == "" {
			t.Fatalf("message vide pour %v", o)
		}
		if msgs[msg] {
			t.Fatalf("message dupliqué: %q", msg)
		}
		msgs[msg] = true
	}
}
