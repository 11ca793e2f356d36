package validation

import (
	"fmt"
	"strings"
)

// Validation déclarative des formulaires : chaque schéma est une table
// champ → règles ordonnées. La même table sert à la validation d'un seul
// champ (au blur) et à la validation complète (au submit), pour que les
// deux chemins ne divergent jamais.

// Rule : prédicat + message affiché quand il échoue
type Rule struct {
	Valid   func(value string) bool
	Message string
}

// Schema garde l'ordre de déclaration des champs pour que les erreurs
// sortent dans l'ordre du formulaire
type Schema struct {
	order []string
	rules map[string][]Rule
}

func NewSchema() *Schema {
	return &Schema{rules: map[string][]Rule{}}
}

// Field déclare les règles d'un champ, identifié par son chemin en
// notation pointée (ex: "contact.phone")
func (s *Schema) Field(path string, rules ...Rule) *Schema {
	if _, exists := s.rules[path]; !exists {
		s.order = append(s.order, path)
	}
	s.rules[path] = append(s.rules[path], rules...)
	return s
}

// ValidateField valide un seul champ, première règle en échec gagnante.
// Chaîne vide = champ valide ou inconnu du schéma.
func (s *Schema) ValidateField(path, value string) string {
	for _, rule := range s.rules[path] {
		if !rule.Valid(value) {
			return rule.Message
		}
	}
	return ""
}

// Validate valide le formulaire entier : une erreur au plus par champ
func (s *Schema) Validate(form map[string]string) map[string]string {
	errors := map[string]string{}
	for _, path := range s.order {
		if msg := s.ValidateField(path, form[path]); msg != "" {
			errors[path] = msg
		}
	}
	return errors
}

// Valid : raccourci pour les handlers qui n'affichent pas le détail
func (s *Schema) Valid(form map[string]string) bool {
	for _, path := range s.order {
		if s.ValidateField(path, form[path]) != "" {
			return false
		}
	}
	return true
}

// SetPath écrit une valeur dans une structure imbriquée en suivant un
// chemin pointé, en créant les maps intermédiaires au besoin. Sert à
// reconstruire le payload JSON du backend depuis les champs plats du
// formulaire.
func SetPath(target map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := target
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = map[string]any{}
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// GetPath lit une valeur par chemin pointé, "" si absente
func GetPath(source map[string]any, path string) string {
	parts := strings.Split(path, ".")
	current := source
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			return ""
		}
		current = next
	}
	value, ok := current[parts[len(parts)-1]]
	if !ok || value == nil {
		return ""
	}
	return fmt.Sprintf("%v", value)
}
