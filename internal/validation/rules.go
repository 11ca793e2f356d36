package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Briques de règles réutilisées par les schémas. Les regex reprennent les
// formats indiens officiels (mobile, pincode, GST, PAN).

var (
	mobileRegex  = regexp.MustCompile(`^[6-9]\d{9}$`)
	pincodeRegex = regexp.MustCompile(`^\d{6}$`)
	gstRegex     = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	panRegex     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
	emailRegex   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nameRegex    = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

func Required(message string) Rule {
	return Rule{
		Valid:   func(v string) bool { return strings.TrimSpace(v) != "" },
		Message: message,
	}
}

// Optional enveloppe une règle : champ vide accepté, champ rempli validé
func Optional(rule Rule) Rule {
	return Rule{
		Valid: func(v string) bool {
			if strings.TrimSpace(v) == "" {
				return true
			}
			return rule.Valid(v)
		},
		Message: rule.Message,
	}
}

func Matches(re *regexp.Regexp, message string) Rule {
	return Rule{
		Valid:   func(v string) bool { return re.MatchString(strings.TrimSpace(v)) },
		Message: message,
	}
}

func MobileNumber(message string) Rule { return Matches(mobileRegex, message) }
func Pincode(message string) Rule      { return Matches(pincodeRegex, message) }
func GSTNumber(message string) Rule    { return Matches(gstRegex, message) }
func PANNumber(message string) Rule    { return Matches(panRegex, message) }
func Email(message string) Rule        { return Matches(emailRegex, message) }
func LettersOnly(message string) Rule  { return Matches(nameRegex, message) }

func MaxLength(max int, message string) Rule {
	return Rule{
		Valid:   func(v string) bool { return len(v) <= max },
		Message: message,
	}
}

// NumberRange : valeur numérique dans [min, max]. Non-numérique = échec.
func NumberRange(min, max float64, message string) Rule {
	return Rule{
		Valid: func(v string) bool {
			n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil {
				return false
			}
			return n >= min && n <= max
		},
		Message: message,
	}
}

func OneOf(allowed []string, message string) Rule {
	return Rule{
		Valid: func(v string) bool {
			for _, a := range allowed {
				if v == a {
					return true
				}
			}
			return false
		},
		Message: message,
	}
}

// DateWithinDays : date au format 2006-01-02, entre aujourd'hui et
// aujourd'hui + days inclus
func DateWithinDays(days int, message string) Rule {
	return Rule{
		Valid: func(v string) bool {
			d, err := time.Parse("2006-01-02", strings.TrimSpace(v))
			if err != nil {
				return false
			}
			today := time.Now().Truncate(24 * time.Hour)
			today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
			limit := today.AddDate(0, 0, days)
			return !d.Before(today) && !d.After(limit)
		},
		Message: message,
	}
}

func MinLength(min int, message string) Rule {
	return Rule{
		Valid:   func(v string) bool { return len(v) >= min },
		Message: message,
	}
}

func ContainsClass(re *regexp.Regexp, message string) Rule {
	return Rule{
		Valid:   func(v string) bool { return re.MatchString(v) },
		Message: message,
	}
}
