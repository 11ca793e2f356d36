package session

import (
	"log"
	"time"

	"koovappally_front_end/internal/clientstore"
	"koovappally_front_end/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// État d'authentification côté client : copie en session des trois clés
// token / user / role. Aucun refresh de token — une expiration se découvre
// ici au chargement, ou au prochain appel API en 401.

type AuthState struct {
	Authenticated bool
	Token         string
	User          *models.User
	Role          string
}

func (s AuthState) HasRole(role string) bool {
	return s.Role == role
}

func (s AuthState) HasAnyRole(roles ...string) bool {
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}

// Login persiste token + user + role d'un seul tenant
func Login(cs *clientstore.Client, token string, user models.User, role string) error {
	cs.SetString(clientstore.KeyToken, token)
	if err := cs.SetJSON(clientstore.KeyUser, user); err != nil {
		return err
	}
	cs.SetString(clientstore.KeyRole, role)
	return nil
}

// Logout efface les trois clés
func Logout(cs *clientstore.Client) {
	clearAuth(cs)
}

func clearAuth(cs *clientstore.Client) {
	cs.Delete(clientstore.KeyToken)
	cs.Delete(clientstore.KeyUser)
	cs.Delete(clientstore.KeyRole)
}

// CheckAuthStatus relit l'état persisté. Toute donnée illisible ou token
// expiré ⇒ purge des trois clés et état non authentifié (fail-closed).
func CheckAuthStatus(cs *clientstore.Client) AuthState {
	token := cs.GetString(clientstore.KeyToken)
	role := cs.GetString(clientstore.KeyRole)
	hasUser := cs.Has(clientstore.KeyUser)

	if token == "" || role == "" || !hasUser {
		return AuthState{}
	}

	// Décodage non vérifié : on ne contrôle que l'expiration, la signature
	// reste l'affaire du backend
	if expired, bad := tokenExpired(token); bad || expired {
		if bad {
			log.Println("⚠️ Format de token invalide, purge de la session")
		} else {
			log.Println("⚠️ Token expiré, purge de la session")
		}
		clearAuth(cs)
		return AuthState{}
	}

	var user models.User
	if !cs.GetJSON(clientstore.KeyUser, &user) {
		clearAuth(cs)
		return AuthState{}
	}

	return AuthState{
		Authenticated: true,
		Token:         token,
		User:          &user,
		Role:          role,
	}
}

func tokenExpired(token string) (expired bool, malformed bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false, true
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return false, true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return false, true
	}
	if exp == nil {
		return false, false // pas de claim exp : on laisse passer
	}
	return time.Now().After(exp.Time), false
}
